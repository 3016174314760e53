package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/experience-booking/internal/model"
)

const bookingColumns = `b.id, b.user_id, b.experience_id, b.slot_id, b.total_price,
	b.promo_code, b.status, b.created_at, b.updated_at`

type bookingRow struct {
	b     model.Booking
	promo sql.NullString
	e     model.Experience
	s     model.Slot
}

func (r *bookingRow) dest() []any {
	d := []any{&r.b.ID, &r.b.UserID, &r.b.ExperienceID, &r.b.SlotID, &r.b.TotalPrice,
		&r.promo, &r.b.Status, &r.b.CreatedAt, &r.b.UpdatedAt}
	d = append(d, experienceDest(&r.e)...)
	return append(d, slotDest(&r.s)...)
}

func (r *bookingRow) booking() model.Booking {
	out := r.b
	if r.promo.Valid {
		p := r.promo.String
		out.PromoCode = &p
	}
	e, s := r.e, r.s
	out.Experience = &e
	out.Slot = &s
	return out
}

// GetByIDForUser returns the booking with its experience, slot and owner.
// Bookings owned by someone else are reported as ErrNotFound.
func (r *BookingRepo) GetByIDForUser(ctx context.Context, bookingID, userID string) (model.Booking, error) {
	const q = `SELECT ` + bookingColumns + `, ` + experienceColumns + `, ` + slotColumns + `,
			u.id, u.name, u.email, u.phone
		FROM bookings b
		JOIN experiences e ON e.id = b.experience_id
		JOIN slots s       ON s.id = b.slot_id
		JOIN users u       ON u.id = b.user_id
		WHERE b.id = ? AND b.user_id = ?
		LIMIT 1`
	var (
		row   bookingRow
		user  model.UserSummary
		phone sql.NullString
	)
	dest := append(row.dest(), &user.ID, &user.Name, &user.Email, &phone)
	if err := r.db.QueryRowContext(ctx, q, bookingID, userID).Scan(dest...); err != nil {
		return model.Booking{}, notFound(err)
	}
	if phone.Valid {
		p := phone.String
		user.Phone = &p
	}
	b := row.booking()
	b.User = &user
	return b, nil
}

// ListByUser returns the user's bookings, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	const q = `SELECT ` + bookingColumns + `, ` + experienceColumns + `, ` + slotColumns + `
		FROM bookings b
		JOIN experiences e ON e.id = b.experience_id
		JOIN slots s       ON s.id = b.slot_id
		WHERE b.user_id = ?
		ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var row bookingRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		out = append(out, row.booking())
	}
	return out, rows.Err()
}
