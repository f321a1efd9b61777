// Package report aggregates a batch of derived variants: per-position
// mutation hotspots (charted with gonum/plot) and a numeric summary
// (gonum/stat).
package report
