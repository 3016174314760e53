package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/experience-booking/internal/model"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name  string
		price string
		kind  model.DiscountType
		value string
		want  string
	}{
		{"percentage", "100", model.DiscountPercentage, "20", "80.00"},
		{"percentage rounds to cents", "249.99", model.DiscountPercentage, "10", "224.99"},
		{"flat", "249.99", model.DiscountFlat, "100", "149.99"},
		{"flat clamps at zero", "50", model.DiscountFlat, "100", "0.00"},
		{"full percentage", "89.99", model.DiscountPercentage, "100", "0.00"},
		{"over 100 percent clamps", "10", model.DiscountPercentage, "150", "0.00"},
		{"zero value", "69.99", model.DiscountFlat, "0", "69.99"},
		{"unknown type leaves price", "42.5", model.DiscountType("BOGUS"), "10", "42.50"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			promo := model.PromoCode{DiscountType: tc.kind, DiscountValue: model.MustMoney(tc.value)}
			got := ApplyDiscount(decimal.RequireFromString(tc.price), promo)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}
