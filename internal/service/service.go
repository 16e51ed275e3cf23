// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// data from the handlers, performs the operation, and shapes the result
// through the response schemas. There is no hidden state; every operation
// is a pure transformation apart from reads of the fixed person registry.
package service
