package service

import (
	"github.com/shopspring/decimal"

	"github.com/iliyamo/experience-booking/internal/model"
)

var hundred = decimal.NewFromInt(100)

// ApplyDiscount reduces price by promo's discount.  The result is clamped
// at zero and rounded to cents.  Redemption rules (active flag, validity
// window) are the caller's concern.
func ApplyDiscount(price decimal.Decimal, promo model.PromoCode) decimal.Decimal {
	v := promo.DiscountValue.Decimal
	switch promo.DiscountType {
	case model.DiscountPercentage:
		price = price.Sub(price.Mul(v).Div(hundred))
	case model.DiscountFlat:
		price = price.Sub(v)
	}
	if price.IsNegative() {
		price = decimal.Zero
	}
	return price.Round(2)
}
