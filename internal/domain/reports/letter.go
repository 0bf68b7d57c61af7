package reports

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"ams/internal/domain/appraisal"
	"ams/internal/domain/directory"
)

var ErrNotFinalized = errors.New("appraisal letter requires a finalized cycle")

// AppraisalLetter renders the finalization outcome of one cycle as a PDF
// document for the employee's records.
func AppraisalLetter(record appraisal.Appraisal, employee directory.User) ([]byte, error) {
	if record.Status != appraisal.StatusFinalized {
		return nil, ErrNotFinalized
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Appraisal Outcome")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", employee.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Department: %s", employee.Department))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Cycle: %s %d", record.Month, record.Year))
	pdf.Ln(7)
	if record.AverageRating != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Average Rating: %.1f / 10", *record.AverageRating))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Increment Slab: %s", record.IncrementSlab))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Minutes of Meeting")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, record.FinalMOM, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
