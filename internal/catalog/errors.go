package catalog

import "errors"

var (
	ErrUnknownEntity   = errors.New("unknown entity")
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrDuplicateMethod = errors.New("duplicate method name")
	ErrMethodNotFound  = errors.New("method not found")
)
