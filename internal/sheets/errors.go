package sheets

import "errors"

var (
	// ErrTabNotFound means the workbook has no tab for the target month.
	ErrTabNotFound = errors.New("sheets: month tab not found")
	// ErrUserNotFound means no member row matched the display name.
	ErrUserNotFound = errors.New("sheets: no row matches user")
	// ErrDateColumnNotFound means no header cell spells the target date.
	ErrDateColumnNotFound = errors.New("sheets: no column matches date")
	// ErrWriteFailed wraps a backend failure while writing an order flag.
	ErrWriteFailed = errors.New("sheets: cell write failed")
)
