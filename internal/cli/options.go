// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"varseq/internal/cliutil"
)

// Output formats accepted by --output.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
	OutputFASTA = "fasta"
)

// ErrPrintedAndExitOK is returned by ParseArgs when examples were requested.
// Apps should print them and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Reference    string
	ProfileFiles []string // files, directories or '-'
	Inline       []string // --profile "F2S del5/6"

	// Mutation
	SkipMismatched bool

	// Performance
	Threads int

	// Output
	Output       string
	OutDir       string
	Header       bool // true unless --no-header
	FailExitCode int
	Plot         string
	Summary      bool

	// Misc
	Quiet    bool
	Version  bool
	Examples bool
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }

// register wires every flag onto fs and returns the pointers that need
// post-processing after Parse.
func register(fs *flag.FlagSet, o *Options) (noHeader, help *bool) {
	// Input
	fs.StringVar(&o.Reference, "reference", "", "reference nucleotide FASTA (single record) or '-' [*]")
	fs.StringVar(&o.Reference, "r", "", "alias of --reference")
	pf := (*stringSlice)(&o.ProfileFiles)
	fs.Var(pf, "profiles", "profile file or directory of *.txt (repeatable) or '-'")
	fs.Var(pf, "p", "alias of --profiles")
	fs.Var((*stringSlice)(&o.Inline), "profile", "inline mutation profile (repeatable)")

	// Mutation
	fs.BoolVar(&o.SkipMismatched, "skip-mismatched", false, "leave substitutions whose expected residue differs untouched [false]")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&o.Output, "output", OutputText, "output: text | json | jsonl | fasta [text]")
	fs.StringVar(&o.Output, "o", OutputText, "alias of --output")
	fs.StringVar(&o.OutDir, "out-dir", "", "also write one sequence file per profile into DIR")
	noHeader = new(bool)
	fs.BoolVar(noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&o.FailExitCode, "fail-exit-code", 1, "exit code when any profile failed [1]")
	fs.StringVar(&o.Plot, "plot", "", "write a mutation hotspot chart (svg|png|pdf by extension)")
	fs.BoolVar(&o.Summary, "summary", false, "print a batch summary to stderr [false]")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Examples, "examples", false, "print quickstart examples and exit [false]")
	help = new(bool)
	fs.BoolVar(help, "h", false, "show help and exit")
	fs.BoolVar(help, "help", false, "show help and exit")
	return noHeader, help
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals are profile inputs; globs among them are expanded.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	noHeader, help := register(fs, &opt)
	installUsage(fs)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if *help {
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.ProfileFiles = append(opt.ProfileFiles, exp...)
	}
	return opt, Validate(opt)
}

// Validate applies the CLI invariants.
func Validate(o Options) error {
	if o.Reference == "" {
		return errors.New("--reference is required")
	}
	if len(o.ProfileFiles) == 0 && len(o.Inline) == 0 {
		return errors.New("provide --profiles, --profile or profile paths")
	}
	stdin := 0
	if o.Reference == "-" {
		stdin++
	}
	for _, p := range o.ProfileFiles {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (stdin) may be used only once")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case OutputText, OutputJSON, OutputJSONL, OutputFASTA:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.FailExitCode < 0 || o.FailExitCode > 255 {
		return errors.New("--fail-exit-code must be between 0 and 255")
	}
	return nil
}
