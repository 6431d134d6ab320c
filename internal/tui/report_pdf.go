package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/countdown"
	"github.com/akyairhashvil/flashtimer/internal/models"
	"github.com/go-pdf/fpdf"
)

// GeneratePresetSheet writes a printable list of presets into dir and
// returns the file path.
func GeneratePresetSheet(dir string, presets []models.Preset, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Timer Presets: %s", now.Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(presets) == 0 {
		pdf.Cell(0, 8, "No presets saved.")
		pdf.Ln(8)
	}

	total := 0
	for _, p := range presets {
		total += p.Seconds
		pdf.Cell(12, 8, fmt.Sprintf("%d.", p.Index+1))
		pdf.Cell(70, 8, p.Label)
		pdf.Cell(0, 8, countdown.FormatClock(p.Seconds))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("%d presets, %s in total", len(presets), countdown.FormatNatural(total)))

	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.pdf", config.ReportsPrefix, now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write preset sheet: %w", err)
	}
	return filename, nil
}
