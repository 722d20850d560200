package state

import (
	"github.com/shopspring/decimal"

	"github.com/hobfurniture/orderdesk-backend/pkg/enums"
	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// Built-in seed records, used whenever a snapshot key is missing or corrupt.

func DefaultCompanyInfo() types.CompanyInfo {
	return types.CompanyInfo{
		Name:                "HOB FURNITURE",
		Contact:             "emma kitchen",
		Address:             []string{"4th Floor 205 Regent Street", "London - W1B 4HB"},
		RegNo:               "14667294",
		Email:               "customerservice@hobfurniture.co.uk",
		Website:             "www.hobfurniture.co.uk",
		Terms:               "Deposit amount only, balance due upon completion",
		PaymentInstructions: "Please pay this invoice via bank transfer (see details below) and include this payment reference: 39838265.",
		LogoURL:             "https://placehold.co/150x80/2563eb/ffffff?text=HOB+FURNITURE",
		Bank: &types.BankDetails{
			BankName:      "SUMUP LIMITED",
			SortCode:      "041450",
			AccountNo:     "58291337",
			AccountHolder: "HOB FURNITURE",
			SWIFT:         "SUPAGB21XXX",
			IBAN:          "GB42SUPA04145058291337",
		},
	}
}

func DefaultCustomer() types.Customer {
	return types.Customer{
		ID:        "376",
		Name:      "Arthur Cook",
		Address:   []string{"Iffley Rd", "Oxford OX4 1EQ", "United Kingdom"},
		Email:     "marwelgkcurry83@gmail.com",
		Phone:     "+441865241971",
		AvatarURL: "https://picsum.photos/200/200",
	}
}

func DefaultOrder() types.Order {
	price := decimal.NewFromInt(2000)
	return types.Order{
		ID:          "ord_2025_376",
		OrderNumber: "2025-376",
		Date:        "14/09/2025",
		DueDate:     "19/09/2025",
		PaymentDate: "14/09/2025",
		Status:      enums.OrderStatusConfirmed,
		Items: []types.OrderItem{
			{
				ID:          "item_1",
				Description: "Clinton Cinema Sofa",
				Details:     []string{"12ft x 4ft", "Fabric: Alaska Madrid Chenielle"},
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
	}
}

func DefaultGallery() []types.GalleryItem {
	return []types.GalleryItem{
		{
			ID:      "g_1",
			URL:     "https://picsum.photos/seed/sofa-frame/800/600",
			Caption: "Frame assembly complete",
			Date:    "16/09/2025",
			Type:    enums.GalleryImageTypeProduction,
		},
		{
			ID:      "g_2",
			URL:     "https://picsum.photos/seed/sofa-fabric/800/600",
			Caption: "Alaska Madrid Chenielle cut and fitted",
			Date:    "18/09/2025",
			Type:    enums.GalleryImageTypeProduction,
		},
	}
}
