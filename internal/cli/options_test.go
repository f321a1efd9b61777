// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-r", "ref.fa", "--profile", "N501Y")
	if o.Output != OutputText || !o.Header || o.FailExitCode != 1 || o.Threads != 0 || o.SkipMismatched {
		t.Fatalf("unexpected defaults %+v", o)
	}
	if len(o.Inline) != 1 || o.Inline[0] != "N501Y" {
		t.Fatalf("inline: %v", o.Inline)
	}
}

func TestProfilesFlagsAndPositionals(t *testing.T) {
	o := mustParse(t,
		"--reference", "ref.fa",
		"-p", "a.txt", "--profiles", "dir",
		"--no-header", "-o", "jsonl",
		"b.txt",
	)
	want := []string{"a.txt", "dir", "b.txt"}
	if strings.Join(o.ProfileFiles, ",") != strings.Join(want, ",") {
		t.Fatalf("profiles %v want %v", o.ProfileFiles, want)
	}
	if o.Header || o.Output != OutputJSONL {
		t.Fatalf("bad parse %+v", o)
	}
}

func TestPositionalGlob(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.txt", "b.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("F2S"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	o := mustParse(t, "-r", "ref.fa", filepath.Join(dir, "*.txt"))
	if len(o.ProfileFiles) != 2 {
		t.Fatalf("glob not expanded: %v", o.ProfileFiles)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"no reference":    {"--profile", "N501Y"},
		"no profiles":     {"-r", "ref.fa"},
		"bad output":      {"-r", "ref.fa", "--profile", "N501Y", "-o", "xml"},
		"neg threads":     {"-r", "ref.fa", "--profile", "N501Y", "-t", "-1"},
		"bad exit code":   {"-r", "ref.fa", "--profile", "N501Y", "--fail-exit-code", "300"},
		"stdin twice":     {"-r", "-", "-p", "-"},
		"unknown flag":    {"-r", "ref.fa", "--profile", "N501Y", "--nope"},
		"glob no matches": {"-r", "ref.fa", filepath.Join(t.TempDir(), "*.txt")},
	}
	for name, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestHelpVersionExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h: %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, ErrPrintedAndExitOK) {
		t.Fatalf("--examples: %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("--version: %v %+v", err, o)
	}
}

func TestUsageMentionsEveryFlag(t *testing.T) {
	fs := newFS()
	var buf bytes.Buffer
	_, _ = ParseArgs(fs, []string{"-h"})
	fs.SetOutput(&buf)
	fs.Usage()
	usage := buf.String()
	fs.VisitAll(func(f *flag.Flag) {
		if len(f.Name) == 1 {
			return
		}
		if !strings.Contains(usage, "--"+f.Name) {
			t.Errorf("usage is missing --%s", f.Name)
		}
	})
}
