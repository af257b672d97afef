package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available,
	// typically because a store was not wired.
	ErrNotImplemented = errors.New("not implemented")

	// Panel Errors.

	// ErrNoSelection indicates a panel action needs a selected field
	// and an active record but one of them is missing.
	ErrNoSelection = errors.New("no field or record selected")

	// ErrNotEditing indicates an edit-only action was invoked in view mode.
	ErrNotEditing = errors.New("panel is not in edit mode")

	// ErrUnknownAction indicates a dispatched action has no handler.
	ErrUnknownAction = errors.New("unknown panel action")

	// ErrUnknownPanel indicates no panel is registered under a name.
	ErrUnknownPanel = errors.New("unknown panel")

	// Field Errors.

	// ErrFieldNotString indicates a write targeted a field whose declared
	// type is not string.
	ErrFieldNotString = errors.New("field is not a string field")
)
