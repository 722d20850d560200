// Package views projects the shared canonical state into per-document
// semantics. Each binding is a small policy value over the same Order: the
// canonical invariants stay in the engine, only labels and payment-status
// interpretation differ per view.
package views

import (
	"fmt"
	"strings"

	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

const receiptNumberPrefix = "RCT-"

// Binding holds the per-view policy for one document kind.
type Binding struct {
	kind enums.DocumentKind
}

// For returns the binding for a document kind.
func For(kind enums.DocumentKind) Binding {
	return Binding{kind: kind}
}

// Kind returns the bound document kind.
func (b Binding) Kind() enums.DocumentKind {
	return b.kind
}

// Title is the document heading.
func (b Binding) Title() string {
	switch b.kind {
	case enums.DocumentKindInvoice:
		return "Invoice"
	case enums.DocumentKindReceipt:
		return "Receipt"
	default:
		return "Order Confirmation"
	}
}

// StatusStamp derives the payment stamp for this view. Receipts always stamp
// PAID IN FULL: by workflow convention they are only issued for settled
// orders, the figures are not checked.
func (b Binding) StatusStamp(order types.Order) enums.PaymentStatus {
	if b.kind == enums.DocumentKindReceipt {
		return enums.PaymentStatusPaidInFull
	}
	if !order.AmountDue.IsPositive() && order.Total.IsPositive() {
		return enums.PaymentStatusPaid
	}
	if order.AmountPaid.IsPositive() {
		return enums.PaymentStatusPartial
	}
	return enums.PaymentStatusUnpaid
}

// DocumentNumber is the number printed on this view. Receipts show a
// prefixed variant of the canonical order number.
func (b Binding) DocumentNumber(order types.Order) string {
	if b.kind == enums.DocumentKindReceipt {
		return receiptNumberPrefix + order.OrderNumber
	}
	return order.OrderNumber
}

// NormalizeOrderNumber maps an edited document number back to the canonical
// order number, stripping the receipt prefix when present.
func (b Binding) NormalizeOrderNumber(input string) string {
	if b.kind == enums.DocumentKindReceipt {
		return strings.TrimPrefix(input, receiptNumberPrefix)
	}
	return input
}

// DocumentDate is the date printed on this view. Receipts bind to the
// payment date, falling back to the order date when no payment date is set.
func (b Binding) DocumentDate(order types.Order) string {
	if b.kind == enums.DocumentKindReceipt && order.PaymentDate != "" {
		return order.PaymentDate
	}
	return order.Date
}

// ExportFilename names the PDF artifact for this view.
func (b Binding) ExportFilename(order types.Order) string {
	switch b.kind {
	case enums.DocumentKindInvoice:
		return fmt.Sprintf("Invoice_%s.pdf", order.OrderNumber)
	case enums.DocumentKindReceipt:
		return fmt.Sprintf("Receipt_%s.pdf", order.OrderNumber)
	default:
		return fmt.Sprintf("Order_%s.pdf", order.OrderNumber)
	}
}

// Projection is the read-only document a renderer consumes. It never feeds
// back into the engine; edits go through mutation intents instead.
type Projection struct {
	Kind           enums.DocumentKind  `json:"kind"`
	Title          string              `json:"title"`
	DocumentNumber string              `json:"documentNumber"`
	DocumentDate   string              `json:"documentDate"`
	DueDate        string              `json:"dueDate"`
	StatusStamp    enums.PaymentStatus `json:"statusStamp"`
	Company        types.CompanyInfo   `json:"company"`
	Customer       types.Customer      `json:"customer"`
	Order          types.Order         `json:"order"`
	Saving         bool                `json:"saving"`
}

// Project assembles the view-specific document from a state snapshot.
func (b Binding) Project(snapshot state.Snapshot, saving bool) Projection {
	return Projection{
		Kind:           b.kind,
		Title:          b.Title(),
		DocumentNumber: b.DocumentNumber(snapshot.Order),
		DocumentDate:   b.DocumentDate(snapshot.Order),
		DueDate:        snapshot.Order.DueDate,
		StatusStamp:    b.StatusStamp(snapshot.Order),
		Company:        snapshot.CompanyInfo,
		Customer:       snapshot.Customer,
		Order:          snapshot.Order,
		Saving:         saving,
	}
}
