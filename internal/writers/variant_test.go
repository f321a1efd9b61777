package writers

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"varseq/internal/engine"
	"varseq/internal/output"
	"varseq/internal/profiles"
	"varseq/internal/protein"
	"varseq/pkg/api"
)

var ref = protein.MustNew("MFVFLVLLPLVSSQ")

func variants() []engine.Variant {
	e := engine.New(ref, engine.Config{})
	return []engine.Variant{
		e.Derive(0, profiles.Inline(0, "F2S del5/6")),
		e.Derive(1, profiles.Inline(1, "B2S")),
	}
}

func drive(t *testing.T, format string, header bool) string {
	t.Helper()
	var buf bytes.Buffer
	in, done := StartVariantWriter(&buf, format, header, ref, 1)
	for _, v := range variants() {
		in <- v
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("%s writer: %v", format, err)
	}
	return buf.String()
}

func TestTextWriter(t *testing.T) {
	out := drive(t, output.FormatText, true)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("text: %q", out)
	}
	if lines[1] != "inline_1\tok\t12\t1\t2\t0\tMSVFLLPLVSSQ" {
		t.Fatalf("row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "inline_2\terror\t0\t") {
		t.Fatalf("error row: %q", lines[2])
	}
	if out := drive(t, output.FormatText, false); strings.HasPrefix(out, "name\t") {
		t.Fatalf("header not suppressed")
	}
}

func TestJSONAndJSONLAgree(t *testing.T) {
	var arr []api.VariantV1
	if err := json.Unmarshal([]byte(drive(t, output.FormatJSON, true)), &arr); err != nil {
		t.Fatalf("json: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(drive(t, output.FormatJSONL, true)), "\n")
	if len(arr) != 2 || len(lines) != 2 {
		t.Fatalf("json=%d jsonl=%d", len(arr), len(lines))
	}
	for i, l := range lines {
		var v api.VariantV1
		if err := json.Unmarshal([]byte(l), &v); err != nil {
			t.Fatalf("jsonl line %d: %v", i, err)
		}
		if v.Name != arr[i].Name || v.Status != arr[i].Status || v.Sequence != arr[i].Sequence {
			t.Fatalf("line %d differs: %+v vs %+v", i, v, arr[i])
		}
	}
}

func TestFASTAWriter(t *testing.T) {
	out := drive(t, output.FormatFASTA, true)
	if strings.Count(out, ">") != 1 || !strings.Contains(out, "MSVFLLPLVSSQ") {
		t.Fatalf("fasta: %q", out)
	}
}

func TestUnknownFormatDrains(t *testing.T) {
	in, done := StartVariantWriter(io.Discard, "xml", false, ref, 1)
	for _, v := range variants() {
		in <- v
	}
	close(in)
	if err := <-done; err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatalf("IsBrokenPipe misclassified")
	}
}
