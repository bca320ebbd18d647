package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/focustime/internal/config"
	"github.com/akyairhashvil/focustime/internal/database"
	"github.com/akyairhashvil/focustime/internal/util"
)

// GeneratePDFReport writes today's sessions to a PDF in the reports
// directory and returns the file path.
func GeneratePDFReport(ctx context.Context, db *database.Database) (string, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sessions, err := db.GetSessionsSince(ctx, midnight.UnixMilli())
	if err != nil {
		return "", err
	}
	workMinutes, workCount, err := db.GetTotals(ctx, midnight.UnixMilli())
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Report: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No sessions recorded today.")
		pdf.Ln(8)
	}
	for _, s := range sessions {
		kind := "Break"
		if s.IsWork {
			kind = "Focus"
		}
		line := fmt.Sprintf("[%s] %s  %dm  (%s)",
			time.UnixMilli(s.Timestamp).Format("15:04"), kind, s.DurationMinutes, s.Label)
		if s.InterruptionsMinutes > 0 {
			line += fmt.Sprintf("  interruptions: %dm", s.InterruptionsMinutes)
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
		if s.Notes != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 6, "    "+s.Notes, "", "", false)
			pdf.SetFont("Arial", "", 12)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total focus: %s across %d sessions",
		FormatDuration(time.Duration(workMinutes)*time.Minute), workCount))

	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("report_%s.pdf", now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
