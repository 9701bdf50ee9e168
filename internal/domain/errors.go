package domain

import "errors"

// Domain errors.
var (
	ErrUsage             = errors.New("wrong number of arguments")
	ErrNotPositive       = errors.New("seconds must be a positive integer")
	ErrIncompleteCatalog = errors.New("message catalog is incomplete")
)
