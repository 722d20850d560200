// Package export renders a document projection to a PDF artifact. It is the
// capture/export collaborator: it consumes read-only projections and, for
// captures, records the artifact in the gallery through the engine.
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hobfurniture/orderdesk-backend/internal/views"
)

// Renderer draws projections onto A4 pages.
type Renderer struct{}

// NewRenderer builds a PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF bytes for a projection.
func (r *Renderer) Render(doc views.Projection) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(120, 10, doc.Company.Name)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, doc.Title, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range doc.Company.Address {
		pdf.CellFormat(0, 4, line, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 4, fmt.Sprintf("Reg No: %s", doc.Company.RegNo), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, doc.Company.Email, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("%s No: %s", doc.Title, doc.DocumentNumber), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Date: %s", doc.DocumentDate), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Due: %s", doc.DueDate), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(200, 30, 30)
	pdf.CellFormat(0, 8, string(doc.StatusStamp), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 5, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, doc.Customer.Name, "", 1, "L", false, 0, "")
	for _, line := range doc.Customer.Address {
		pdf.CellFormat(0, 4, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	r.itemsTable(pdf, doc)
	r.totalsBlock(pdf, doc)

	if doc.Company.PaymentInstructions != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 4, doc.Company.PaymentInstructions, "", "L", false)
	}
	if bank := doc.Company.Bank; bank != nil {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 4, fmt.Sprintf("%s  Sort Code: %s  Account: %s", bank.BankName, bank.SortCode, bank.AccountNo), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 4, fmt.Sprintf("SWIFT: %s  IBAN: %s", bank.SWIFT, bank.IBAN), "", 1, "L", false, 0, "")
	}
	if doc.Company.Terms != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(0, 4, doc.Company.Terms, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s pdf: %w", doc.Kind, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) itemsTable(pdf *gofpdf.Fpdf, doc views.Projection) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(80, 6, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 6, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 6, "Unit", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 6, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 6, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range doc.Order.Items {
		pdf.CellFormat(80, 6, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, item.Quantity.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, item.Unit, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, item.Price.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, item.Total.StringFixed(2), "1", 1, "R", false, 0, "")
		for _, detail := range item.Details {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(80, 4, "  "+detail, "LR", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 9)
		}
	}
}

func (r *Renderer) totalsBlock(pdf *gofpdf.Fpdf, doc views.Projection) {
	pdf.Ln(4)
	rows := []struct {
		label string
		value string
		bold  bool
	}{
		{"Subtotal", doc.Order.Subtotal.StringFixed(2), false},
		{"Total", doc.Order.Total.StringFixed(2), true},
		{"Amount Paid", doc.Order.AmountPaid.StringFixed(2), false},
		{"Amount Due", doc.Order.AmountDue.StringFixed(2), true},
	}
	for _, row := range rows {
		if row.bold {
			pdf.SetFont("Helvetica", "B", 10)
		} else {
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.CellFormat(150, 6, row.label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, row.value, "", 1, "R", false, 0, "")
	}
}
