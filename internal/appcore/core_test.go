package appcore

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"varseq/internal/output"
	"varseq/internal/profiles"
	"varseq/internal/protein"
)

var ref = protein.MustNew("MFVFLVLLPLVSSQ")

func run(t *testing.T, o Options, texts ...string) (int, string, string) {
	t.Helper()
	var srcs []profiles.Source
	for i, s := range texts {
		srcs = append(srcs, profiles.Inline(i, s))
	}
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, o, ref, srcs, NewVariantWriterFactory("text", true, ref))
	return code, out.String(), errb.String()
}

func TestRunOK(t *testing.T) {
	code, out, errs := run(t, Options{Threads: 2, FailExitCode: 1}, "F2S del5/6")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errs)
	}
	want := output.TSVHeader + "\ninline_1\tok\t12\t1\t2\t0\tMSVFLLPLVSSQ\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
	if errs != "" {
		t.Fatalf("unexpected stderr %q", errs)
	}
}

func TestRunFailedProfileExitCode(t *testing.T) {
	code, out, errs := run(t, Options{FailExitCode: 4}, "F2S", "Q99R")
	if code != 4 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out, "inline_2\terror\t") {
		t.Fatalf("failed row missing: %q", out)
	}
	if !strings.HasPrefix(errs, "WARN: inline_2: ") {
		t.Fatalf("warning missing: %q", errs)
	}
}

func TestRunMismatchWarnings(t *testing.T) {
	code, _, errs := run(t, Options{FailExitCode: 1}, "N3Y")
	if code != 0 || !strings.Contains(errs, "WARN: inline_1: N3Y: expected N at position 3, found V") {
		t.Fatalf("code=%d stderr=%q", code, errs)
	}
	_, _, errs = run(t, Options{FailExitCode: 1, SkipMismatched: true}, "N3Y")
	if !strings.Contains(errs, "(left unchanged)") {
		t.Fatalf("skip note missing: %q", errs)
	}
	_, _, errs = run(t, Options{FailExitCode: 1, Quiet: true}, "N3Y")
	if errs != "" {
		t.Fatalf("quiet leaked %q", errs)
	}
}

func TestRunOutDirPlotSummary(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "derived")
	plot := filepath.Join(dir, "hot.svg")
	code, _, errs := run(t, Options{OutDir: outDir, PlotPath: plot, Summary: true, FailExitCode: 1}, "F2S del5/6", "del1/1")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errs)
	}
	b, err := os.ReadFile(filepath.Join(outDir, output.ReferenceFile))
	if err != nil || string(b) != ref.String() {
		t.Fatalf("reference file: %q %v", b, err)
	}
	b, err = os.ReadFile(filepath.Join(outDir, "inline_1_AA-seq.txt"))
	if err != nil || string(b) != "MSVFLLPLVSSQ" {
		t.Fatalf("variant file: %q %v", b, err)
	}
	if fi, err := os.Stat(plot); err != nil || fi.Size() == 0 {
		t.Fatalf("plot not written: %v", err)
	}
	if !strings.Contains(errs, "profiles=2 ok=2 failed=0") {
		t.Fatalf("summary missing: %q", errs)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	srcs := []profiles.Source{profiles.Inline(0, "F2S")}
	code := Run(ctx, &out, &errb, Options{Threads: 1}, ref, srcs, NewVariantWriterFactory("text", false, ref))
	if code != 130 {
		t.Fatalf("exit %d", code)
	}
}
