package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"varseq/internal/engine"
	"varseq/internal/profiles"
	"varseq/internal/protein"
)

const ref = "MFVFLVLLPLVSSQ"

func derive(t *testing.T, cfg engine.Config, texts ...string) []engine.Variant {
	t.Helper()
	e := engine.New(protein.MustNew(ref), cfg)
	var out []engine.Variant
	for i, s := range texts {
		out = append(out, e.Derive(i, profiles.Inline(i, s)))
	}
	return out
}

func TestHotspotsCountsAppliedEdits(t *testing.T) {
	h := NewHotspots(len(ref))
	for _, v := range derive(t, engine.Config{}, "F2S del5/6", "F2A", "Q99R") {
		h.Add(v)
	}
	if got := h.At(2); got.Substituted != 2 || got.Deleted != 0 {
		t.Fatalf("pos 2: %+v", got)
	}
	if h.At(5).Deleted != 1 || h.At(6).Deleted != 1 || h.At(7).Total() != 0 {
		t.Fatalf("deletion tally wrong: %+v %+v %+v", h.At(5), h.At(6), h.At(7))
	}
	top := h.Top(0)
	if len(top) != 3 || top[0].Position != 2 || top[1].Position != 5 || top[2].Position != 6 {
		t.Fatalf("top: %+v", top)
	}
	if got := h.Top(1); len(got) != 1 || got[0].Position != 2 {
		t.Fatalf("top(1): %+v", got)
	}
}

func TestHotspotsIgnoreSkippedMismatch(t *testing.T) {
	h := NewHotspots(len(ref))
	for _, v := range derive(t, engine.Config{SkipMismatched: true}, "N3Y F4A") {
		h.Add(v)
	}
	if h.At(3).Total() != 0 {
		t.Fatalf("skipped site counted: %+v", h.At(3))
	}
	if h.At(4).Substituted != 1 {
		t.Fatalf("applied site missing: %+v", h.At(4))
	}
}

func TestSummary(t *testing.T) {
	var c Collector
	for _, v := range derive(t, engine.Config{}, "F2S del5/6", "N3Y", "Q99R") {
		c.Add(v)
	}
	s := c.Summary()
	if s.Profiles != 3 || s.OK != 2 || s.Failed != 1 || s.Mismatched != 1 {
		t.Fatalf("counts: %+v", s)
	}
	if s.Length.Mean != 13 || s.Length.Min != 12 || s.Length.Max != 14 {
		t.Fatalf("length stats: %+v", s.Length)
	}
	if math.Abs(s.Length.StdDev-math.Sqrt2) > 1e-9 {
		t.Fatalf("length sd: %v", s.Length.StdDev)
	}

	var buf bytes.Buffer
	if err := s.Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "profiles=3 ok=2 failed=1 mismatched=1\n") {
		t.Fatalf("summary head: %q", out)
	}
	if !strings.Contains(out, "length\t13.00\t1.41\t12\t14\n") {
		t.Fatalf("length row missing: %q", out)
	}
}

func TestSummaryEmptyAndSingle(t *testing.T) {
	var c Collector
	if s := c.Summary(); s.Profiles != 0 || s.Length.N != 0 {
		t.Fatalf("empty: %+v", s)
	}
	c.Add(derive(t, engine.Config{}, "")[0])
	s := c.Summary()
	if s.Length.N != 1 || s.Length.StdDev != 0 || s.Length.Mean != float64(len(ref)) {
		t.Fatalf("single: %+v", s.Length)
	}
}

func TestPlotFormat(t *testing.T) {
	cases := map[string]string{
		"hot.svg": "svg", "hot.PNG": "png", "hot.pdf": "pdf", "hot": "svg", "hot.txt": "svg",
	}
	for in, want := range cases {
		if got := PlotFormat(in); got != want {
			t.Errorf("PlotFormat(%q)=%q want %q", in, got, want)
		}
	}
}

func TestWritePlotSVG(t *testing.T) {
	h := NewHotspots(len(ref))
	for _, v := range derive(t, engine.Config{}, "F2S del5/6") {
		h.Add(v)
	}
	var buf bytes.Buffer
	if err := WritePlot(&buf, h, "hotspots", "svg"); err != nil {
		t.Fatalf("plot: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Fatalf("not an SVG document")
	}
}
