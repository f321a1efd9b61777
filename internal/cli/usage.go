// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"varseq/internal/version"
)

func installUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(name string) string {
			if f := fs.Lookup(name); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – derive mutant protein sequences from a reference\n\n", fs.Name())
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s -r ref.fa [flags] PROFILE...\n", fs.Name())

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -r, --reference file        Reference nucleotide FASTA, one record, or '-' [*]")
		fmt.Fprintln(out, "  -p, --profiles path         Profile file or directory of *.txt (repeatable) or '-'")
		fmt.Fprintln(out, "      --profile string        Inline profile, e.g. \"N501Y del69/70\" (repeatable)")

		fmt.Fprintln(out, "\nMutation:")
		fmt.Fprintf(out, "      --skip-mismatched       Leave mismatched substitutions untouched [%s]\n", def("skip-mismatched"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl | fasta [%s]\n", def("output"))
		fmt.Fprintln(out, "      --out-dir dir           Also write reference and per-profile sequence files")
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --fail-exit-code int    Exit code when any profile failed [%s]\n", def("fail-exit-code"))
		fmt.Fprintln(out, "      --plot file             Mutation hotspot chart (.svg, .png, .pdf)")
		fmt.Fprintf(out, "      --summary               Batch summary on stderr [%s]\n", def("summary"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// PrintExamples prints a short quickstart followed by a tip.
func PrintExamples(out io.Writer, name string) {
	fmt.Fprintf(out, "%s — quickstart\n\n", name)
	fmt.Fprintln(out, "  # one inline profile")
	fmt.Fprintf(out, "  %s -r spike.fa --profile \"N501Y del69/70\"\n\n", name)
	fmt.Fprintln(out, "  # every *.txt profile in a directory, JSON out")
	fmt.Fprintf(out, "  %s -r spike.fa -o json profiles/\n\n", name)
	fmt.Fprintln(out, "  # write sequence files plus a hotspot chart")
	fmt.Fprintf(out, "  %s -r spike.fa --out-dir derived --plot hotspots.svg profiles/*.txt\n", name)
	fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
