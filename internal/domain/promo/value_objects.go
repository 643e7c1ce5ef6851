package promo

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode            = errors.New("invalid promo code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidDiscountType    = errors.New("invalid discount type")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

var hundred = decimal.NewFromInt(100)

// Code is stored and compared upper-cased.
type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return "", ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type Discount struct {
	kind        DiscountType
	value       decimal.Decimal
	maxDiscount *int64
}

func NewDiscount(kind DiscountType, value decimal.Decimal, maxDiscount *int64) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		if value.IsNegative() || value.GreaterThan(hundred) {
			return Discount{}, ErrInvalidDiscountPercent
		}
	case DiscountFixed:
		if value.IsNegative() {
			return Discount{}, ErrInvalidDiscountAmount
		}
	default:
		return Discount{}, ErrInvalidDiscountType
	}
	if maxDiscount != nil && *maxDiscount < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: kind, value: value, maxDiscount: maxDiscount}, nil
}

func (d Discount) Kind() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) MaxDiscount() *int64    { return d.maxDiscount }
func (d Discount) IsPercentage() bool     { return d.kind == DiscountPercentage }

// AmountFor never returns more than maxDiscount, when set, or more than amount.
func (d Discount) AmountFor(amount int64) int64 {
	var off int64
	if d.IsPercentage() {
		off = decimal.NewFromInt(amount).Mul(d.value).Div(hundred).Round(0).IntPart()
	} else {
		off = d.value.Round(0).IntPart()
	}
	if d.maxDiscount != nil && off > *d.maxDiscount {
		off = *d.maxDiscount
	}
	if off > amount {
		off = amount
	}
	if off < 0 {
		off = 0
	}
	return off
}
