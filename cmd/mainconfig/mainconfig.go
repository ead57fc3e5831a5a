package mainconfig

import (
	"context"
	"fmt"

	appconfig "github.com/nduythai/lunchbot/internal/config"
	"github.com/nduythai/lunchbot/internal/sheets"
)

// OpenWorkbook centralizes sheet backend selection so all binaries share
// the same wiring. The returned close function is a no-op for backends
// without local state.
func OpenWorkbook(ctx context.Context, cfg *appconfig.Config) (sheets.Workbook, func(), error) {
	switch cfg.SheetBackend {
	case "google":
		if cfg.GoogleSheetID == "" {
			return nil, nil, fmt.Errorf("GOOGLE_SHEET_ID not found in environment variables")
		}
		wb, err := sheets.NewGoogleWorkbook(ctx, cfg.GoogleCredentialsFile, cfg.GoogleSheetID)
		if err != nil {
			return nil, nil, err
		}
		return wb, func() {}, nil
	case "excel":
		wb, err := sheets.OpenExcelWorkbook(cfg.ExcelFile)
		if err != nil {
			return nil, nil, err
		}
		return wb, func() { _ = wb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown sheet backend %q", cfg.SheetBackend)
	}
}
