// Package order contains the Order aggregate: a single lens order placed
// through a store, tracked from creation through packing into a box.
// Returned is a terminal side-exit reachable from Pending or Packed; a
// returned order is removed from its box's completeness accounting but
// never regresses an already-Packed box.
package order
