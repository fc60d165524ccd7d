// Package box contains the Box aggregate: a physical dispatch container
// bound to exactly one delivery group. Box status is a projection of the
// orders packed into it; the packing ledger recomputes it transactionally
// on every relevant write, and the status machine forbids regressions.
package box
