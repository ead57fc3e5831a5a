package sheets

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelWorkbook keeps the order sheet in a local .xlsx file with the
// same tab layout the Google spreadsheet uses. It serves development
// and offline runs.
type ExcelWorkbook struct {
	file *excelize.File
	path string
}

var _ Workbook = (*ExcelWorkbook)(nil)

// OpenExcelWorkbook opens the workbook at path.
func OpenExcelWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheets: open workbook %s: %w", path, err)
	}
	return &ExcelWorkbook{file: f, path: path}, nil
}

// Close releases the underlying file.
func (w *ExcelWorkbook) Close() error {
	return w.file.Close()
}

func (w *ExcelWorkbook) OpenTab(ctx context.Context, name string) (Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	idx, err := w.file.GetSheetIndex(name)
	if err != nil {
		return nil, fmt.Errorf("sheets: look up tab %q: %w", name, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrTabNotFound, name)
	}
	return &excelTab{wb: w, title: name}, nil
}

type excelTab struct {
	wb    *ExcelWorkbook
	title string
}

var _ Tab = (*excelTab)(nil)

func (t *excelTab) Title() string { return t.title }

func (t *excelTab) HeaderRow(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := t.wb.file.GetRows(t.title)
	if err != nil {
		return nil, fmt.Errorf("sheets: read rows of %q: %w", t.title, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (t *excelTab) NameColumn(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cols, err := t.wb.file.GetCols(t.title)
	if err != nil {
		return nil, fmt.Errorf("sheets: read columns of %q: %w", t.title, err)
	}
	if len(cols) == 0 {
		return nil, nil
	}
	return cols[0], nil
}

func (t *excelTab) Cell(ctx context.Context, row, col int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("sheets: cell reference (%d,%d): %w", row, col, err)
	}
	value, err := t.wb.file.GetCellValue(t.title, ref)
	if err != nil {
		return "", fmt.Errorf("sheets: read cell %s: %w", ref, err)
	}
	return value, nil
}

func (t *excelTab) SetCell(ctx context.Context, row, col int, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("sheets: cell reference (%d,%d): %w", row, col, err)
	}
	if err := t.wb.file.SetCellValue(t.title, ref, value); err != nil {
		return fmt.Errorf("sheets: set cell %s: %w", ref, err)
	}
	if err := t.wb.file.Save(); err != nil {
		return fmt.Errorf("sheets: save workbook: %w", err)
	}
	return nil
}
