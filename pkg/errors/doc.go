// Package errors defines the error types and exit codes shared by the
// toolcatalog commands.
//
// Library packages (catalog, filtering, config) return plain wrapped errors;
// commands convert them into ExitError values so the process exits with a
// code scripts can rely on:
//
//	0 - success, including "no tools match"
//	2 - unexpected failure (I/O, output encoding)
//	3 - configuration or catalog error
package errors
