package domain

import "errors"

var (
	// ErrNotFound signals a missing form.
	ErrNotFound = errors.New("form not found")
	// ErrIDExists signals a create request that already carries an identifier.
	ErrIDExists = errors.New("a new form cannot already have an id")
	// ErrIDMissing signals an update request without an identifier.
	ErrIDMissing = errors.New("an update requires an id")
	// ErrInvalidForm signals a form that fails payload validation.
	ErrInvalidForm = errors.New("invalid form")
)
