// Package deliverygroup contains the DeliveryGroup aggregate: a deduplicated
// physical destination keyed by an address fingerprint. Multiple stores at
// the same normalized address share one group, and boxes are packed per
// group rather than per store.
//
// Group creation is lazy and find-or-create: the registry (application
// layer) resolves a fingerprint to an existing group or creates one, with
// storage-level uniqueness on the fingerprint guaranteeing at most one group
// per destination even under concurrent resolution.
package deliverygroup
