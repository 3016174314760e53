package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/experience-booking/internal/model"
)

// PromoRepo looks up promo codes.  The promo_codes table uses a binary
// collation, so lookups are case-sensitive.
type PromoRepo struct {
	db *sql.DB
}

func NewPromoRepo(db *sql.DB) *PromoRepo { return &PromoRepo{db: db} }

const promoSelect = `SELECT code, discount_type, discount_value, valid_from, valid_to, active, created_at
	FROM promo_codes WHERE code = ? LIMIT 1`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPromo(row rowScanner) (model.PromoCode, error) {
	var p model.PromoCode
	err := row.Scan(&p.Code, &p.DiscountType, &p.DiscountValue, &p.ValidFrom, &p.ValidTo, &p.Active, &p.CreatedAt)
	if err != nil {
		return model.PromoCode{}, notFound(err)
	}
	return p, nil
}

// GetByCode returns the promo code stored under code verbatim.
func (r *PromoRepo) GetByCode(ctx context.Context, code string) (model.PromoCode, error) {
	return scanPromo(r.db.QueryRowContext(ctx, promoSelect, code))
}
