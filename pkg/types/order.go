package types

import (
	"github.com/shopspring/decimal"

	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
)

// OrderItem is one priced row within an order. Total is derived: it must
// equal Quantity * Price after every mutation and is never set directly.
type OrderItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Details     []string        `json:"details"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// Order is the commercial transaction record behind the confirmation,
// invoice and receipt views. Subtotal, Tax, Total and AmountDue are derived
// from the items and AmountPaid; they are recomputed on every mutation and
// never stored stale.
type Order struct {
	ID          string            `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	Date        string            `json:"date"`
	DueDate     string            `json:"dueDate"`
	PaymentDate string            `json:"paymentDate,omitempty"`
	Status      enums.OrderStatus `json:"status"`
	Items       []OrderItem       `json:"items"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	Tax         decimal.Decimal   `json:"tax"`
	Total       decimal.Decimal   `json:"total"`
	AmountPaid  decimal.Decimal   `json:"amountPaid"`
	AmountDue   decimal.Decimal   `json:"amountDue"`
}
