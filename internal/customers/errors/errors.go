package errors

import "errors"

var (
	ErrNotFound = errors.New("customer not found")

	ErrNoData = errors.New("no customer data loaded")
)
