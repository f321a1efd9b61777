// internal/output/dir.go
package output

import (
	"os"
	"path/filepath"

	"varseq/internal/protein"
)

// WriteSequenceFile writes seq as a bare residue string to dir/name.
func WriteSequenceFile(dir, name string, seq protein.Sequence) (string, error) {
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(seq.String()), 0o644); err != nil {
		return "", err
	}
	return fn, nil
}

// PrepareDir creates dir (and parents) and writes the reference file into it.
func PrepareDir(dir string, ref protein.Sequence) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	_, err := WriteSequenceFile(dir, ReferenceFile, ref)
	return err
}
