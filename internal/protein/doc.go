// Package protein holds the immutable residue Sequence shared by the
// translator and the mutation engine. It never imports fasta, mutation,
// pipeline, writers, or app; keep it a leaf.
package protein
