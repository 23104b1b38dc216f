// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated input from the handler, enforces the item lifecycle
// semantics, and calls repository methods to interact with the store.
package service
