// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"varseq/internal/appcore"
	"varseq/internal/cli"
	"varseq/internal/cmdutil"
	"varseq/internal/profiles"
	"varseq/internal/translate"
	"varseq/internal/version"
	"varseq/internal/writers"
)

const name = "varseq"

// flushOr flushes w and maps the result to an exit code.
func flushOr(w *bufio.Writer, stderr io.Writer, code int) int {
	if e := w.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushOr(outw, stderr, 0)
		case errors.Is(err, cli.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flushOr(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushOr(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushOr(outw, stderr, 0)
	}

	ref, err := translate.LoadReference(parent, opts.Reference)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		var ife *translate.InputFormatError
		if errors.As(err, &ife) {
			_, _ = fmt.Fprintf(stderr, "error: invalid reference: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 2
	}
	if ref.Protein.Len() == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "%s: reference translates to an empty protein", ref.ID)
	} else if !ref.Stopped {
		cmdutil.Warnf(stderr, opts.Quiet, "%s: no stop codon; translated %d codons to the end", ref.ID, ref.Codons)
	}

	srcs, err := profiles.Load(opts.ProfileFiles)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	for i, text := range opts.Inline {
		srcs = append(srcs, profiles.Inline(i, text))
	}
	if opts.OutDir != "" {
		if err := profiles.CheckOutputNames(srcs); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: --out-dir: %v\n", err)
			return 2
		}
	}

	coreOpts := appcore.Options{
		Threads:        opts.Threads,
		SkipMismatched: opts.SkipMismatched,
		OutDir:         opts.OutDir,
		PlotPath:       opts.Plot,
		Summary:        opts.Summary,
		Quiet:          opts.Quiet,
		FailExitCode:   opts.FailExitCode,
	}
	writer := appcore.NewVariantWriterFactory(opts.Output, opts.Header, ref.Protein)
	return appcore.Run(parent, stdout, stderr, coreOpts, ref.Protein, srcs, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
