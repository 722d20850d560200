package enums

import "fmt"

// OrderItemField names the editable fields of a line item.
type OrderItemField string

const (
	OrderItemFieldDescription OrderItemField = "description"
	OrderItemFieldDetails     OrderItemField = "details"
	OrderItemFieldQuantity    OrderItemField = "quantity"
	OrderItemFieldUnit        OrderItemField = "unit"
	OrderItemFieldPrice       OrderItemField = "price"
)

var validOrderItemFields = []OrderItemField{
	OrderItemFieldDescription,
	OrderItemFieldDetails,
	OrderItemFieldQuantity,
	OrderItemFieldUnit,
	OrderItemFieldPrice,
}

// String implements fmt.Stringer.
func (f OrderItemField) String() string {
	return string(f)
}

// IsValid reports whether the value is a known OrderItemField.
func (f OrderItemField) IsValid() bool {
	for _, candidate := range validOrderItemFields {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseOrderItemField converts raw input into an OrderItemField.
func ParseOrderItemField(value string) (OrderItemField, error) {
	for _, candidate := range validOrderItemFields {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order item field %q", value)
}
