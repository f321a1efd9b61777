// internal/report/summary.go
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"varseq/internal/engine"
)

// Stats describes one metric across the successful profiles of a batch.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func describe(x []float64) Stats {
	if len(x) == 0 {
		return Stats{}
	}
	s := Stats{
		N:    len(x),
		Mean: stat.Mean(x, nil),
		Min:  floats.Min(x),
		Max:  floats.Max(x),
	}
	if len(x) > 1 {
		s.StdDev = stat.StdDev(x, nil)
	}
	return s
}

// Summary aggregates a batch of variants.
type Summary struct {
	Profiles   int
	OK         int
	Failed     int
	Mismatched int // successful profiles with at least one mismatch warning

	Length        Stats
	Substitutions Stats
	Deleted       Stats
	Mismatches    Stats
}

// Collector accumulates variants for a Summary. Not safe for concurrent use.
type Collector struct {
	profiles, failed, mismatched int

	length, subs, deleted, mism []float64
}

func (c *Collector) Add(v engine.Variant) {
	c.profiles++
	if !v.OK() {
		c.failed++
		return
	}
	if len(v.Mismatches) > 0 {
		c.mismatched++
	}
	c.length = append(c.length, float64(v.Sequence.Len()))
	c.subs = append(c.subs, float64(v.Substitutions))
	c.deleted = append(c.deleted, float64(v.Deleted))
	c.mism = append(c.mism, float64(len(v.Mismatches)))
}

func (c *Collector) Summary() Summary {
	return Summary{
		Profiles:      c.profiles,
		OK:            c.profiles - c.failed,
		Failed:        c.failed,
		Mismatched:    c.mismatched,
		Length:        describe(c.length),
		Substitutions: describe(c.subs),
		Deleted:       describe(c.deleted),
		Mismatches:    describe(c.mism),
	}
}

// Write prints the summary as a small TSV table preceded by a counts line.
func (s Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "profiles=%d ok=%d failed=%d mismatched=%d\n",
		s.Profiles, s.OK, s.Failed, s.Mismatched); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "metric\tmean\tsd\tmin\tmax"); err != nil {
		return err
	}
	rows := []struct {
		name string
		st   Stats
	}{
		{"length", s.Length},
		{"substitutions", s.Substitutions},
		{"deleted", s.Deleted},
		{"mismatches", s.Mismatches},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.0f\t%.0f\n",
			r.name, r.st.Mean, r.st.StdDev, r.st.Min, r.st.Max); err != nil {
			return err
		}
	}
	return nil
}
