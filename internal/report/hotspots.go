// internal/report/hotspots.go
package report

import (
	"sort"

	"varseq/internal/engine"
)

// Site is the edit tally of one reference position.
type Site struct {
	Position    int
	Substituted int
	Deleted     int
}

// Total is the number of profiles that touched the site.
func (s Site) Total() int { return s.Substituted + s.Deleted }

// Hotspots counts, per reference position, how many successful profiles
// substituted or deleted it. Not safe for concurrent use; feed it from the
// pipeline's visit callback.
type Hotspots struct {
	sub []int // index 0 is position 1
	del []int
}

func NewHotspots(refLen int) *Hotspots {
	return &Hotspots{sub: make([]int, refLen), del: make([]int, refLen)}
}

// Len is the reference length the tally was built for.
func (h *Hotspots) Len() int { return len(h.sub) }

// Add records the applied edits of v. Failed variants are ignored, as are
// mismatched substitutions that were left untouched.
func (h *Hotspots) Add(v engine.Variant) {
	if !v.OK() {
		return
	}
	skipped := map[int]bool{}
	for _, m := range v.Mismatches {
		if !m.Applied {
			skipped[m.Op.Index] = true
		}
	}
	for _, op := range v.Profile.Substitutions {
		if skipped[op.Index] || !h.in(op.Position) {
			continue
		}
		h.sub[op.Position-1]++
	}
	for _, op := range v.Profile.Deletions {
		for p := op.Start; p <= op.End; p++ {
			if h.in(p) {
				h.del[p-1]++
			}
		}
	}
}

func (h *Hotspots) in(pos int) bool { return pos >= 1 && pos <= len(h.sub) }

// At returns the tally for a 1-based position.
func (h *Hotspots) At(pos int) Site {
	if !h.in(pos) {
		return Site{Position: pos}
	}
	return Site{Position: pos, Substituted: h.sub[pos-1], Deleted: h.del[pos-1]}
}

// Top returns up to n touched sites, most edited first, ties by position.
func (h *Hotspots) Top(n int) []Site {
	var out []Site
	for i := range h.sub {
		if s := h.At(i + 1); s.Total() > 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total() > out[j].Total() })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
