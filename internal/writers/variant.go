// internal/writers/variant.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"varseq/internal/engine"
	"varseq/internal/jsonlutil"
	"varseq/internal/output"
	"varseq/internal/protein"
)

// StartVariantWriter spins up a writer goroutine for engine.Variant items.
// Close the returned channel when done, then read the error channel once.
func StartVariantWriter(out io.Writer, format string, header bool, ref protein.Sequence, bufSize int) (chan<- engine.Variant, <-chan error) {
	if format == output.FormatJSONL {
		return jsonlutil.Start[engine.Variant](out, bufSize,
			func(enc *json.Encoder, v engine.Variant) error {
				return enc.Encode(output.ToAPIVariant(v, ref))
			},
			IsBrokenPipe,
		)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Variant, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatJSON:
			var buf []engine.Variant
			for v := range in {
				buf = append(buf, v)
			}
			err = output.WriteJSON(out, buf, ref)
		case output.FormatFASTA:
			err = output.StreamFASTA(out, in)
		case output.FormatText:
			err = output.StreamText(out, in, header)
		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		if err != nil {
			// keep draining so senders never block on a dead writer
			for range in {
			}
		}
		errCh <- err
	}()

	return in, errCh
}
