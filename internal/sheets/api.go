// Package sheets records lunch orders in a shared spreadsheet. The
// sheet is laid out one tab per calendar month: row 1 holds date
// labels, column 1 holds member names, and each (member, date) cell
// holds a literal TRUE or FALSE order flag.
package sheets

import "context"

// Tab is an open handle to one month's worksheet. Coordinates are
// 1-based, matching how the sheet is displayed.
type Tab interface {
	// Title returns the tab name the handle was opened with.
	Title() string
	// HeaderRow returns the values of row 1, left to right.
	HeaderRow(ctx context.Context) ([]string, error)
	// NameColumn returns the values of column 1, top to bottom,
	// including the header cell.
	NameColumn(ctx context.Context) ([]string, error)
	// Cell returns the displayed value of a single cell.
	Cell(ctx context.Context, row, col int) (string, error)
	// SetCell writes value into a single cell.
	SetCell(ctx context.Context, row, col int, value string) error
}

// Workbook opens month tabs by name.
type Workbook interface {
	// OpenTab returns a handle to the named tab, or an error wrapping
	// ErrTabNotFound when the workbook has no such tab.
	OpenTab(ctx context.Context, name string) (Tab, error)
}
