package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// PromoLookup finds a promo code by its exact string.
type PromoLookup interface {
	GetByCode(ctx context.Context, code string) (model.PromoCode, error)
}

// PromoPreview is what checkout shows before the booking is submitted.
type PromoPreview struct {
	Code          string             `json:"code"`
	DiscountType  model.DiscountType `json:"discountType"`
	DiscountValue model.Money        `json:"discountValue"`
}

type PromoService struct {
	promos PromoLookup
	now    func() time.Time
}

func NewPromoService(promos PromoLookup, now func() time.Time) *PromoService {
	if now == nil {
		now = time.Now
	}
	return &PromoService{promos: promos, now: now}
}

// ValidatePromoCode reports whether code would currently be honored.  The
// result is advisory: CreateBooking re-evaluates the code at commit time
// and silently ignores it if it no longer applies.
func (s *PromoService) ValidatePromoCode(ctx context.Context, code string) (PromoPreview, error) {
	if code == "" {
		return PromoPreview{}, ErrPromoRequired
	}
	p, err := s.promos.GetByCode(ctx, code)
	if errors.Is(err, repository.ErrNotFound) {
		return PromoPreview{}, ErrPromoNotFound
	}
	if err != nil {
		return PromoPreview{}, fmt.Errorf("get promo: %w", err)
	}
	if !p.Active {
		return PromoPreview{}, ErrPromoInactive
	}
	if !p.InWindow(s.now()) {
		return PromoPreview{}, ErrPromoExpired
	}
	return PromoPreview{Code: p.Code, DiscountType: p.DiscountType, DiscountValue: p.DiscountValue}, nil
}
