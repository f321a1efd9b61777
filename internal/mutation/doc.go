// Package mutation parses mutation profiles and applies them to a reference
// protein. It never imports fasta, pipeline, writers, cli, or app; keep it
// domain-only.
//
// Every position in a profile uses original numbering: it refers to the
// untouched reference, whatever edits come before it. Apply therefore runs
// all substitutions before any deletion, and deletions are cut out of the
// substituted copy by original position in a single pass.
//
// Policies:
//   - a malformed token aborts the whole profile (Parse fails);
//   - an out-of-range position or overlapping deletion ranges abort the
//     whole profile (Apply fails, no partial sequence is returned);
//   - an expected-residue mismatch is a warning carried in Result.
package mutation
