// internal/profiles/profiles.go
package profiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the extension picked up when a directory is given.
const Ext = ".txt"

// Source is one mutation profile and where it came from.
type Source struct {
	Name string // display / output stem
	Path string // "" for inline profiles, "-" for stdin
	Text string // whitespace-trimmed profile text
}

// Inline wraps a profile given on the command line.
func Inline(i int, text string) Source {
	return Source{Name: fmt.Sprintf("inline_%d", i+1), Text: strings.TrimSpace(text)}
}

// Load reads every input: regular files as-is, directories as all *.txt
// entries (sorted by name, not recursive), "-" as one profile from stdin.
func Load(inputs []string) ([]Source, error) {
	var out []Source
	for _, in := range inputs {
		if in == "-" {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			out = append(out, Source{Name: "stdin", Path: "-", Text: strings.TrimSpace(string(b))})
			continue
		}
		fi, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			src, err := loadFile(in)
			if err != nil {
				return nil, err
			}
			out = append(out, src)
			continue
		}
		files, err := listDir(in)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%s: no *%s profiles", in, Ext)
		}
		for _, fn := range files {
			src, err := loadFile(fn)
			if err != nil {
				return nil, err
			}
			out = append(out, src)
		}
	}
	return out, nil
}

func listDir(dir string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func loadFile(path string) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	return Source{
		Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
		Text: strings.TrimSpace(string(b)),
	}, nil
}

// OutputName maps a profile name to the file its derived sequence is written
// to: "mutation_JN.1__stripped" becomes "mutation_JN.1_AA-seq.txt".
func OutputName(name string) string {
	if strings.Contains(name, "__stripped") {
		return strings.Replace(name, "__stripped", "_AA-seq", 1) + Ext
	}
	return name + "_AA-seq" + Ext
}

// Origin names where a source came from, for error messages.
func (s Source) Origin() string {
	switch s.Path {
	case "":
		return "--profile " + s.Name
	case "-":
		return "stdin"
	}
	return s.Path
}

// CheckOutputNames reports the first pair of sources whose OutputName
// collide. Names are compared case-insensitively so a batch behaves the same
// on case-insensitive filesystems.
func CheckOutputNames(srcs []Source) error {
	seen := make(map[string]Source, len(srcs))
	for _, s := range srcs {
		out := OutputName(s.Name)
		key := strings.ToLower(out)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%s and %s both write %s", prev.Origin(), s.Origin(), out)
		}
		seen[key] = s
	}
	return nil
}
