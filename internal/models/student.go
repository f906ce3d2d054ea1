// Package models holds the domain entities shared across the
// repository, service, and handler layers.
//
// Keeping them in a single leaf package prevents import cycles:
// every layer imports models, none of them import each other for
// their data shapes.
package models

// Student is the single entity of this service.
//
// The same shape is stored in the students table and serialized at the
// HTTP boundary; there is no separate transfer type. Field tags use the
// camelCase names the API contract expects.
//
// ID is assigned by the students_seq sequence (starts at 100, step 1)
// and is immutable after creation. Email must be unique across all
// stored students; that invariant is enforced by the service's
// pre-insert check and, authoritatively, by the students_email_key
// constraint.
type Student struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
