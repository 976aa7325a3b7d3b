package table

import "errors"

var (
	// ErrUnknownColumn is returned when no leaf column has the requested prop.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrNoRowKey is returned by key-based operations on tables configured
	// without a row key, or for rows whose key is empty.
	ErrNoRowKey = errors.New("row has no key")

	// ErrUnknownRow is returned when no row has the requested key.
	ErrUnknownRow = errors.New("unknown row")
)
