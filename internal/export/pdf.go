package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/teamplan/backend/internal/reports"
	"github.com/teamplan/backend/internal/types"
)

// OccupancyPDF renders the occupancy report of the inclusive range as a
// printable A4 table with a summary block. Rows above 100% occupancy are
// marked as overloaded.
func OccupancyPDF(from, until types.Date) (*bytes.Buffer, error) {
	rows, err := reports.OccupancyReport(from, until)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	translator := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, translator("Occupancy report"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s - %s", from, until))
	pdf.Ln(12)

	widths := []float64{55, 40, 20, 25, 25, 25}
	headers := []string{"Name", "Role", "Days", "Available", "Allocated", "Occupancy"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, translator(header), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	hundred := decimal.NewFromInt(100)
	totalAvailable := decimal.Zero
	totalAllocated := decimal.Zero

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		totalAvailable = totalAvailable.Add(row.Available)
		totalAllocated = totalAllocated.Add(row.Allocated)

		occupancy := row.Occupancy.String() + " %"
		if row.Occupancy.GreaterThan(hundred) {
			occupancy += " (!)"
			pdf.SetTextColor(200, 0, 0)
		}

		pdf.CellFormat(widths[0], 6, translator(row.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, translator(row.Role), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, strconv.Itoa(row.WorkingDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, row.Available.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, row.Allocated.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, occupancy, "1", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(-1)
	}

	mean := decimal.Zero
	if totalAvailable.IsPositive() {
		mean = totalAllocated.Mul(hundred).Div(totalAvailable).Round(1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 7, translator("Summary"))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Persons: %d", len(rows)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Available hours: %s", totalAvailable))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Allocated hours: %s", totalAllocated))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Mean occupancy: %s %%", mean))

	buffer := &bytes.Buffer{}
	err = pdf.Output(buffer)
	if err != nil {
		return nil, err
	}

	return buffer, nil
}
