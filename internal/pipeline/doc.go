// Package pipeline fans mutation profiles out to a pool of workers that all
// share one immutable reference, and hands the resulting variants to a visit
// callback in input order.
//
// The only contract to implement is Deriver (engine.Engine satisfies it).
// This keeps the pipeline swappable and testable.
package pipeline
