// Package kernel holds the primitives every aggregate in the dispatch domain
// builds on: the UUID value object, the NormalizedAddress that collapses
// equivalent street addresses into one deduplication fingerprint, and the
// ConstructorGuard that keeps aggregates and commands from being built
// outside their constructors.
//
// Everything here is an immutable value type, safe to copy and to share
// between goroutines.
package kernel
