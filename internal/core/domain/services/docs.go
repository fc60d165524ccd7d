// Package services contains stateless domain services coordinating rules
// that span multiple aggregates. The packing ledger owns the cross-group
// assignment rule between orders and boxes and the projection that derives
// a box's status from the orders packed into it.
package services
