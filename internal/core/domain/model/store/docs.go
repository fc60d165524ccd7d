// Package store contains the Store aggregate: master records of destination
// stores in the dispatch network. A store's delivery group id is a derived
// attribute; the directory re-resolves it whenever the address or postal
// code changes, inside the same transaction that persists the store.
package store
