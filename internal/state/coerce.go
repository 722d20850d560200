package state

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// coerceDecimal turns form-shaped input into a decimal. Anything that does
// not parse becomes zero: the editing surface is forgiving by contract, a
// parse failure is never surfaced.
func coerceDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return parsed
	case json.Number:
		parsed, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero
		}
		return parsed
	case float64:
		return decimal.NewFromFloat(v)
	case float32:
		return decimal.NewFromFloat32(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// coerceQuantity is coerceDecimal with the non-negative invariant applied.
func coerceQuantity(value any) decimal.Decimal {
	quantity := coerceDecimal(value)
	if quantity.IsNegative() {
		return decimal.Zero
	}
	return quantity
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceStringSlice(value any) []string {
	switch v := value.(type) {
	case nil:
		return []string{}
	case []string:
		return v
	case []any:
		lines := make([]string, 0, len(v))
		for _, entry := range v {
			lines = append(lines, coerceString(entry))
		}
		return lines
	default:
		return []string{}
	}
}
