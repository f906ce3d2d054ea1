// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handler, applies the one business rule this
// system has (email uniqueness on create), and calls repository
// methods to touch storage. It knows nothing about HTTP status codes.
package service
