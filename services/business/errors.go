package business

import "errors"

var (
	// ErrNotFound signals the requested business or desk does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotOwner signals the caller does not own the business being modified.
	ErrNotOwner = errors.New("caller does not own this business")
	// ErrAlreadyExists signals the owner already has a business listed.
	ErrAlreadyExists = errors.New("owner already has a business")
	// ErrInvalidHours signals an ill-formed hours window (bad date, bad time,
	// or close not after open).
	ErrInvalidHours = errors.New("invalid hours window")
)
