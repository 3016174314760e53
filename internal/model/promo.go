package model

import "time"

// DiscountType enumerates how a promo code reduces the price.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
)

// PromoCode is a named discount rule with a validity window.  Codes are
// unique and compared case-sensitively.
type PromoCode struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue Money        `json:"discountValue"`
	ValidFrom     time.Time    `json:"validFrom"`
	ValidTo       time.Time    `json:"validTo"`
	Active        bool         `json:"active"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// InWindow reports whether now lies within [ValidFrom, ValidTo], bounds
// included.
func (p PromoCode) InWindow(now time.Time) bool {
	return !now.Before(p.ValidFrom) && !now.After(p.ValidTo)
}

// Redeemable reports whether the code can be applied at now.
func (p PromoCode) Redeemable(now time.Time) bool {
	return p.Active && p.InWindow(now)
}
