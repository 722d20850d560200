package export

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hobfurniture/orderdesk-backend/internal/views"
	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

func sampleProjection() views.Projection {
	price := decimal.NewFromInt(2000)
	return views.Projection{
		Kind:           enums.DocumentKindInvoice,
		Title:          "Invoice",
		DocumentNumber: "2025-376",
		DocumentDate:   "14/09/2025",
		DueDate:        "19/09/2025",
		StatusStamp:    enums.PaymentStatusPaid,
		Company: types.CompanyInfo{
			Name:    "HOB FURNITURE",
			Address: []string{"4th Floor 205 Regent Street", "London - W1B 4HB"},
			RegNo:   "14667294",
			Email:   "customerservice@hobfurniture.co.uk",
			Bank: &types.BankDetails{
				BankName:  "SUMUP LIMITED",
				SortCode:  "041450",
				AccountNo: "58291337",
			},
		},
		Customer: types.Customer{
			Name:    "Arthur Cook",
			Address: []string{"Iffley Rd", "Oxford OX4 1EQ"},
		},
		Order: types.Order{
			OrderNumber: "2025-376",
			Items: []types.OrderItem{
				{
					Description: "Clinton Cinema Sofa",
					Details:     []string{"12ft x 4ft"},
					Quantity:    decimal.NewFromInt(1),
					Unit:        "each",
					Price:       price,
					Total:       price,
				},
			},
			Subtotal:   price,
			Tax:        decimal.Zero,
			Total:      price,
			AmountPaid: price,
			AmountDue:  decimal.Zero,
		},
	}
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewRenderer()

	payload, err := renderer.Render(sampleProjection())
	require.NoError(t, err)

	require.NotEmpty(t, payload)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestRenderHandlesMinimalProjection(t *testing.T) {
	renderer := NewRenderer()

	doc := views.Projection{
		Kind:        enums.DocumentKindConfirmation,
		Title:       "Order Confirmation",
		StatusStamp: enums.PaymentStatusUnpaid,
	}

	payload, err := renderer.Render(doc)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}
