// Package shell provides the infrastructure collaborators of the library inventory manager
// for the example: Book circulation in a public library
//
// This package implements the "imperative shell" side of the manager: an in-memory
// directory of active readers (the user activity provider) and a notification sink
// which writes one JSON document per notification to an io.Writer.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'infrastructure' layer.
package shell
