// Package format converts typed field values into their canonical display
// strings: dates as "15 January 2025", currency amounts as "£1,500,000.00",
// plain numbers as their literal numeric text. Formatting is pure and never
// sees nil values; the substitution engine treats those as unset before
// formatting is invoked.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chordsign/contractgen/pkg/model"
)

// CurrencySymbol is the symbol prefixed to currency values.
const CurrencySymbol = "£"

// dateLayout renders day-of-month without a leading zero, full month name,
// four-digit year.
const dateLayout = "2 January 2006"

// isoDateLayout is accepted for date values submitted as strings.
const isoDateLayout = "2006-01-02"

// Value formats a field value for display according to the field's declared
// type. Strings pass through unchanged unless the declared type asks for a
// richer rendering (currency amounts, ISO date strings). Unknown value kinds
// fall back to their Go string form.
func Value(value any, fieldType model.FieldType) string {
	switch v := value.(type) {
	case time.Time:
		return Date(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return Date(*v)
	case string:
		switch fieldType {
		case model.FieldTypeCurrency:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return Currency(f)
			}
		case model.FieldTypeDate:
			if t, err := time.Parse(isoDateLayout, strings.TrimSpace(v)); err == nil {
				return Date(t)
			}
		}
		return v
	case float64:
		return formatNumeric(v, fieldType)
	case float32:
		return formatNumeric(float64(v), fieldType)
	case int:
		return formatInt(int64(v), fieldType)
	case int32:
		return formatInt(int64(v), fieldType)
	case int64:
		return formatInt(v, fieldType)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Date formats a timestamp as "15 January 2025".
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// Currency formats an amount with the currency symbol, thousands separators,
// and exactly two decimal places.
func Currency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	text := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(text, ".")

	out := CurrencySymbol + groupThousands(whole) + "." + frac
	if negative {
		return "-" + out
	}
	return out
}

// Number formats a plain numeric value as its literal string, with no
// grouping and no forced decimal places.
func Number(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// CurrencyName reports whether a placeholder name signals a monetary value.
// It is the fallback for value bags rendered without field declarations; when
// the field's declared type is available that type wins.
func CurrencyName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "amount") ||
		strings.Contains(lower, "fee") ||
		strings.Contains(lower, "price")
}

func formatNumeric(value float64, fieldType model.FieldType) string {
	if fieldType == model.FieldTypeCurrency {
		return Currency(value)
	}
	return Number(value)
}

func formatInt(value int64, fieldType model.FieldType) string {
	if fieldType == model.FieldTypeCurrency {
		return Currency(float64(value))
	}
	return strconv.FormatInt(value, 10)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
