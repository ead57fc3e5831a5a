package sheets

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/nduythai/lunchbot/pkg/logging"
)

// Order flags are stored as these literal strings and read back
// case-insensitively.
const (
	markTrue  = "TRUE"
	markFalse = "FALSE"
)

// TabNameForDate returns the name of the month tab a date lives in,
// "Month 1" through "Month 12".
func TabNameForDate(date time.Time) string {
	return fmt.Sprintf("Month %d", int(date.Month()))
}

// Entry is one member's order flag in a day summary.
type Entry struct {
	Name     string `json:"name"`
	HasOrder bool   `json:"has_order"`
}

// Service records lunch orders in a Workbook. It holds at most one
// open tab handle, replaced whole when the month changes, and
// serializes all sheet access so the bot loop and the ops surface
// never interleave a read-modify-write.
type Service struct {
	wb     Workbook
	logger *logging.Logger
	tracer trace.Tracer

	mu         sync.Mutex
	cachedTab  Tab
	cachedName string
}

// NewService wires a recorder over the given workbook backend. A nil
// tracer falls back to the global provider.
func NewService(wb Workbook, logger *logging.Logger, tracer trace.Tracer) *Service {
	if wb == nil {
		panic("sheets: workbook is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	if tracer == nil {
		tracer = otel.Tracer("lunchbot.internal.sheets")
	}
	return &Service{wb: wb, logger: logger, tracer: tracer}
}

// ensureTab returns the tab for date's month, reusing the cached
// handle while the month is unchanged. Callers hold s.mu.
func (s *Service) ensureTab(ctx context.Context, date time.Time) (Tab, error) {
	name := TabNameForDate(date)
	if s.cachedTab != nil && s.cachedName == name {
		return s.cachedTab, nil
	}
	tab, err := s.wb.OpenTab(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cachedTab = tab
	s.cachedName = name
	s.logger.Info("opened month tab", "tab", name)
	return tab, nil
}

// locate resolves the member row and date column inside tab. Row
// lookup runs first, so an unknown user is reported even when the
// date column is also missing.
func (s *Service) locate(ctx context.Context, tab Tab, displayName string, date time.Time) (row, col int, err error) {
	column, err := tab.NameColumn(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("sheets: read name column: %w", err)
	}
	row, ok := FindUserRow(column, displayName)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q in tab %q", ErrUserNotFound, displayName, tab.Title())
	}
	header, err := tab.HeaderRow(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("sheets: read header row: %w", err)
	}
	col, ok = FindDateColumn(header, date)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s in tab %q", ErrDateColumnNotFound, date.Format("2006-01-02"), tab.Title())
	}
	return row, col, nil
}

// Mark records whether the named member has an order for date. On
// success exactly one cell is written; every failure path leaves the
// sheet untouched.
func (s *Service) Mark(ctx context.Context, displayName string, hasOrder bool, date time.Time) error {
	ctx, span := s.tracer.Start(ctx, "sheets.mark")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	tab, err := s.ensureTab(ctx, date)
	if err != nil {
		span.RecordError(err)
		return err
	}
	row, col, err := s.locate(ctx, tab, displayName, date)
	if err != nil {
		span.RecordError(err)
		return err
	}
	value := markFalse
	if hasOrder {
		value = markTrue
	}
	if err := tab.SetCell(ctx, row, col, value); err != nil {
		err = fmt.Errorf("%w: %v", ErrWriteFailed, err)
		span.RecordError(err)
		return err
	}
	s.logger.Info("order marked",
		"user", displayName,
		"tab", tab.Title(),
		"row", row,
		"col", col,
		"value", value,
	)
	return nil
}

// OrderStatus reports whether the member has an order recorded for
// date. ok is false when the cell is blank or holds anything other
// than TRUE or FALSE.
func (s *Service) OrderStatus(ctx context.Context, displayName string, date time.Time) (has, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab, err := s.ensureTab(ctx, date)
	if err != nil {
		return false, false, err
	}
	row, col, err := s.locate(ctx, tab, displayName, date)
	if err != nil {
		return false, false, err
	}
	value, err := tab.Cell(ctx, row, col)
	if err != nil {
		return false, false, fmt.Errorf("sheets: read cell (%d,%d): %w", row, col, err)
	}
	has, ok = parseMark(value)
	return has, ok, nil
}

// DaySummary lists every member's order flag for date in sheet row
// order. Blank name cells are skipped; blank or unreadable flags count
// as no order.
func (s *Service) DaySummary(ctx context.Context, date time.Time) ([]Entry, error) {
	ctx, span := s.tracer.Start(ctx, "sheets.day_summary")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	tab, err := s.ensureTab(ctx, date)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	header, err := tab.HeaderRow(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets: read header row: %w", err)
	}
	col, ok := FindDateColumn(header, date)
	if !ok {
		return nil, fmt.Errorf("%w: %s in tab %q", ErrDateColumnNotFound, date.Format("2006-01-02"), tab.Title())
	}
	column, err := tab.NameColumn(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets: read name column: %w", err)
	}

	var entries []Entry
	for i, name := range column {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		value, err := tab.Cell(ctx, i+1, col)
		if err != nil {
			return nil, fmt.Errorf("sheets: read cell (%d,%d): %w", i+1, col, err)
		}
		has, _ := parseMark(value)
		entries = append(entries, Entry{Name: trimmed, HasOrder: has})
	}
	return entries, nil
}

// parseMark interprets a cell's order flag.
func parseMark(value string) (has, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case markTrue:
		return true, true
	case markFalse:
		return false, true
	default:
		return false, false
	}
}
