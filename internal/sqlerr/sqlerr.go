// Package sqlerr translates database driver errors into application
// errors.
//
// It maps Postgres SQLSTATE codes (unique violation, not-null
// violation, ...) and pgx's no-rows sentinel into *errs.HTTPError
// values with client-safe messages. A unique violation on
// students_email_key surfaces as the same 400 the service's pre-insert
// check produces, which closes the read-then-write race on the email
// uniqueness rule.
package sqlerr
