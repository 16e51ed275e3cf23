// Package repository handles all interactions with stored data.
//
// The only store in this service is a fixed, immutable in-memory registry
// of person identifiers. The package keeps the data-access shape anyway,
// abstracting lookups away from the service layer.
package repository
