package dataset

import "errors"

var (
	// ErrUnsupportedFormat means the source path has an extension the loader
	// cannot read. Only .xlsx and .csv exports are supported.
	ErrUnsupportedFormat = errors.New("unsupported table format")

	// ErrMissingColumn means a required header is absent. Headers are matched
	// byte for byte against the export layout.
	ErrMissingColumn = errors.New("required column missing")

	// ErrEmptyTable means the source file has no header row at all.
	ErrEmptyTable = errors.New("table has no header row")
)
