package appcore

import (
	"io"

	"varseq/internal/engine"
	"varseq/internal/protein"
	"varseq/internal/writers"
)

// VariantWriterFactory starts the stdout writer for one run.
type VariantWriterFactory struct {
	Format string
	Header bool
	Ref    protein.Sequence // for HGVS notation in JSON outputs
}

func NewVariantWriterFactory(format string, header bool, ref protein.Sequence) VariantWriterFactory {
	return VariantWriterFactory{Format: format, Header: header, Ref: ref}
}

func (w VariantWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Variant, <-chan error) {
	return writers.StartVariantWriter(out, w.Format, w.Header, w.Ref, bufSize)
}
