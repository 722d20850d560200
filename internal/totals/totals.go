// Package totals derives the financial fields of an order from its line
// items and payments. Everything here is pure: no state, no I/O.
package totals

import (
	"github.com/shopspring/decimal"

	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// Totals are the derived fields recomputed after every item or payment
// mutation.
type Totals struct {
	Subtotal  decimal.Decimal
	Tax       decimal.Decimal
	Total     decimal.Decimal
	AmountDue decimal.Decimal
}

// Compute derives subtotal, total and amount due from the line items and the
// amount paid. Tax is a reserved field and stays zero; it must remain in the
// schema. AmountDue is clamped at zero — overpayment is discarded, not
// tracked.
func Compute(items []types.OrderItem, amountPaid decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total)
	}

	tax := decimal.Zero
	total := subtotal.Add(tax)

	amountDue := total.Sub(amountPaid)
	if amountDue.IsNegative() {
		amountDue = decimal.Zero
	}

	return Totals{
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     total,
		AmountDue: amountDue,
	}
}

// LineTotal derives a line item's total. Item totals are never set directly.
func LineTotal(quantity, price decimal.Decimal) decimal.Decimal {
	return quantity.Mul(price)
}
