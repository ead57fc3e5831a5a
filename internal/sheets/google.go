package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// GoogleWorkbook reads and writes one Google spreadsheet through the
// Sheets API with service-account credentials.
type GoogleWorkbook struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

var _ Workbook = (*GoogleWorkbook)(nil)

// NewGoogleWorkbook opens the spreadsheet identified by spreadsheetID
// using the service-account key at credentialsFile.
func NewGoogleWorkbook(ctx context.Context, credentialsFile, spreadsheetID string) (*GoogleWorkbook, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id is required")
	}
	svc, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("sheets: create sheets client: %w", err)
	}
	return &GoogleWorkbook{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// OpenTab verifies the named sheet exists before handing out a handle,
// so a missing month tab fails here rather than on first read.
func (w *GoogleWorkbook) OpenTab(ctx context.Context, name string) (Tab, error) {
	meta, err := w.svc.Spreadsheets.Get(w.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch spreadsheet metadata: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return &googleTab{svc: w.svc, spreadsheetID: w.spreadsheetID, title: name}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTabNotFound, name)
}

type googleTab struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	title         string
}

var _ Tab = (*googleTab)(nil)

func (t *googleTab) Title() string { return t.title }

func (t *googleTab) HeaderRow(ctx context.Context) ([]string, error) {
	return t.rangeValues(ctx, "1:1", "ROWS")
}

func (t *googleTab) NameColumn(ctx context.Context) ([]string, error) {
	return t.rangeValues(ctx, "A:A", "COLUMNS")
}

func (t *googleTab) rangeValues(ctx context.Context, span, major string) ([]string, error) {
	rng := fmt.Sprintf("'%s'!%s", t.title, span)
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, rng).
		MajorDimension(major).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read range %s: %w", rng, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(resp.Values[0]))
	for _, v := range resp.Values[0] {
		out = append(out, fmt.Sprint(v))
	}
	return out, nil
}

func (t *googleTab) Cell(ctx context.Context, row, col int) (string, error) {
	rng := fmt.Sprintf("'%s'!%s", t.title, cellRef(row, col))
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("sheets: read cell %s: %w", rng, err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return fmt.Sprint(resp.Values[0][0]), nil
}

func (t *googleTab) SetCell(ctx context.Context, row, col int, value string) error {
	rng := fmt.Sprintf("'%s'!%s", t.title, cellRef(row, col))
	body := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}
	_, err := t.svc.Spreadsheets.Values.Update(t.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: update cell %s: %w", rng, err)
	}
	return nil
}

// cellRef converts 1-based coordinates into A1 notation.
func cellRef(row, col int) string {
	var letters []byte
	for col > 0 {
		col--
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col /= 26
	}
	return fmt.Sprintf("%s%d", letters, row)
}
