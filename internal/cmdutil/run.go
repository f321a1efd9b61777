package cmdutil

import (
	"context"

	"varseq/internal/engine"
	"varseq/internal/pipeline"
	"varseq/internal/profiles"
)

// RunStream runs the shared pipeline, applies a visitor, and streams results via send.
// It returns the number of kept outputs and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	d pipeline.Deriver,
	srcs []profiles.Source,
	visit func(engine.Variant) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	err := pipeline.ForEachVariant(ctx, cfg, d, srcs, func(v engine.Variant) error {
		keep, out, vErr := visit(v)
		if vErr != nil {
			return vErr
		}
		if !keep {
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		total++
		return nil
	})
	return total, err
}
