// Package repository handles all interactions with the database.
//
// It contains the SQL for the students table and the methods to fetch,
// persist, or delete rows, abstracting storage access away from the
// service layer. An in-memory implementation of the same interface
// backs the service and handler tests.
package repository
