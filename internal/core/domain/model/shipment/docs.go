// Package shipment contains the Shipment aggregate: a courier-level grouping
// of packed boxes identified by a unique docket number, together with its
// append-only delivery confirmation log. The shipment's current status is a
// projection of the latest confirmation's effect, constrained by the
// lifecycle state machine: a shipment never regresses to an earlier state
// and cannot be confirmed before it has been dispatched.
package shipment
