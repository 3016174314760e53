package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/experience-booking/internal/model"
)

// BookingTx is the set of statements the booking engine runs inside one
// database transaction.
type BookingTx interface {
	// LockSlot loads the slot and its experience with the slot row held
	// FOR UPDATE until the transaction ends.
	LockSlot(ctx context.Context, slotID string) (model.Slot, model.Experience, error)
	FindPromo(ctx context.Context, code string) (model.PromoCode, error)
	InsertBooking(ctx context.Context, b *model.Booking) error
	// IncrementBooked adds one to booked_count unless the slot is full,
	// in which case it returns ErrConflict.
	IncrementBooked(ctx context.Context, slotID string) error
}

// BookingRepo persists bookings.  Writes go through InTx; reads are
// owner-scoped.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// InTx runs fn inside a transaction.  The transaction commits when fn
// returns nil and rolls back otherwise.
func (r *BookingRepo) InTx(ctx context.Context, fn func(BookingTx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(&bookingTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit booking: %w", err)
	}
	committed = true
	return nil
}

type bookingTx struct {
	tx *sql.Tx
}

// LockSlot row-locks the slot only, so bookings on sibling slots of the
// same experience do not wait on each other.
func (b *bookingTx) LockSlot(ctx context.Context, slotID string) (model.Slot, model.Experience, error) {
	const q = `SELECT ` + slotColumns + `, ` + experienceColumns + `
		FROM slots s
		JOIN experiences e ON e.id = s.experience_id
		WHERE s.id = ?
		FOR UPDATE OF s`
	var (
		s model.Slot
		e model.Experience
	)
	dest := append(slotDest(&s), experienceDest(&e)...)
	if err := b.tx.QueryRowContext(ctx, q, slotID).Scan(dest...); err != nil {
		return model.Slot{}, model.Experience{}, notFound(err)
	}
	return s, e, nil
}

func (b *bookingTx) FindPromo(ctx context.Context, code string) (model.PromoCode, error) {
	return scanPromo(b.tx.QueryRowContext(ctx, promoSelect, code))
}

func (b *bookingTx) InsertBooking(ctx context.Context, bk *model.Booking) error {
	const q = `INSERT INTO bookings
		(id, user_id, experience_id, slot_id, total_price, promo_code, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := b.tx.ExecContext(ctx, q,
		bk.ID, bk.UserID, bk.ExperienceID, bk.SlotID, bk.TotalPrice, bk.PromoCode,
		string(bk.Status), bk.CreatedAt, bk.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (b *bookingTx) IncrementBooked(ctx context.Context, slotID string) error {
	const q = `UPDATE slots SET booked_count = booked_count + 1
		WHERE id = ? AND booked_count < capacity`
	res, err := b.tx.ExecContext(ctx, q, slotID)
	if err != nil {
		return fmt.Errorf("increment booked_count: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}
