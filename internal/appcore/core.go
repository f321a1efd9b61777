// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"varseq/internal/cmdutil"
	"varseq/internal/engine"
	"varseq/internal/output"
	"varseq/internal/pipeline"
	"varseq/internal/profiles"
	"varseq/internal/protein"
	"varseq/internal/report"
	"varseq/internal/writers"
)

type Options struct {
	Threads        int
	SkipMismatched bool

	OutDir   string
	PlotPath string
	Summary  bool

	Quiet        bool
	FailExitCode int
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Variant, <-chan error)
}

// Run derives every profile against ref, streams the variants through wf
// and returns the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	ref protein.Sequence,
	srcs []profiles.Source,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	if o.OutDir != "" {
		if err := output.PrepareDir(o.OutDir, ref); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	eng := engine.New(ref, engine.Config{SkipMismatched: o.SkipMismatched})
	hot := report.NewHotspots(ref.Len())
	var sum report.Collector
	failed := 0

	visit := func(v engine.Variant) (bool, engine.Variant, error) {
		hot.Add(v)
		sum.Add(v)
		if !v.OK() {
			failed++
			cmdutil.Warnf(stderr, o.Quiet, "%s: %v", v.Name, v.Err)
			return true, v, nil
		}
		for _, m := range v.Mismatches {
			if m.Applied {
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s", v.Name, m)
			} else {
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s (left unchanged)", v.Name, m)
			}
		}
		if o.OutDir != "" {
			if _, err := output.WriteSequenceFile(o.OutDir, profiles.OutputName(v.Name), v.Sequence); err != nil {
				return false, v, err
			}
		}
		return true, v, nil
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	_, perr := cmdutil.RunStream[engine.Variant](
		ctx,
		pipeline.Config{Threads: thr},
		eng,
		srcs,
		visit,
		func(v engine.Variant) error {
			select {
			case inCh <- v:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}

	if o.PlotPath != "" {
		if err := report.SavePlot(o.PlotPath, hot, "Mutation hotspots"); err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if o.Summary {
		_ = sum.Summary().Write(stderr)
	}

	if failed > 0 {
		return o.FailExitCode
	}
	return 0
}
