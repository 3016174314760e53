package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
)

// BookingStore is the persistence BookingService needs.  *repository.BookingRepo
// satisfies it.
type BookingStore interface {
	InTx(ctx context.Context, fn func(repository.BookingTx) error) error
	GetByIDForUser(ctx context.Context, bookingID, userID string) (model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
}

// CreateBookingInput is the checkout request.  PromoCode is optional and
// matched verbatim.
type CreateBookingInput struct {
	ExperienceID string
	SlotID       string
	PromoCode    string
}

type BookingService struct {
	store BookingStore
	now   func() time.Time
}

// NewBookingService builds a BookingService.  now may be nil, in which case
// time.Now is used.
func NewBookingService(store BookingStore, now func() time.Time) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{store: store, now: now}
}

// CreateBooking reserves one spot on the slot for userID.
//
// The slot row is locked for the duration of the transaction, so the
// capacity check, the booking insert and the booked_count increment are
// atomic with respect to other bookings of the same slot.  An unknown,
// inactive or out-of-window promo code is ignored and the full price is
// charged; the code string is still recorded on the booking.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, in CreateBookingInput) (model.Booking, error) {
	if strings.TrimSpace(in.ExperienceID) == "" {
		return model.Booking{}, invalid("Experience ID is required")
	}
	if strings.TrimSpace(in.SlotID) == "" {
		return model.Booking{}, invalid("Slot ID is required")
	}

	var out model.Booking
	err := s.store.InTx(ctx, func(tx repository.BookingTx) error {
		slot, exp, err := tx.LockSlot(ctx, in.SlotID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSlotNotFound
		}
		if err != nil {
			return fmt.Errorf("lock slot: %w", err)
		}
		if slot.ExperienceID != in.ExperienceID {
			return ErrSlotNotForExperience
		}
		if slot.IsFull() {
			return ErrSlotFullyBooked
		}

		now := s.now().UTC().Truncate(time.Millisecond)
		price := exp.Price.Decimal

		var code *string
		if in.PromoCode != "" {
			c := in.PromoCode
			code = &c
			promo, err := tx.FindPromo(ctx, in.PromoCode)
			switch {
			case err == nil:
				if promo.Redeemable(now) {
					price = ApplyDiscount(price, promo)
				}
			case errors.Is(err, repository.ErrNotFound):
			default:
				return fmt.Errorf("find promo: %w", err)
			}
		}

		b := model.Booking{
			ID:           uuid.NewString(),
			UserID:       userID,
			ExperienceID: exp.ID,
			SlotID:       slot.ID,
			TotalPrice:   model.NewMoney(price),
			PromoCode:    code,
			Status:       model.BookingConfirmed,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.InsertBooking(ctx, &b); err != nil {
			return err
		}
		if err := tx.IncrementBooked(ctx, slot.ID); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return ErrSlotFullyBooked
			}
			return err
		}

		slot.BookedCount++
		b.Experience = &exp
		b.Slot = &slot
		out = b
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// GetBooking returns one of userID's bookings.  Bookings that belong to
// another user are reported as not found.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID string) (model.Booking, error) {
	b, err := s.store.GetByIDForUser(ctx, bookingID, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// ListBookings returns userID's bookings, newest first.
func (s *BookingService) ListBookings(ctx context.Context, userID string) ([]model.Booking, error) {
	bs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bs, nil
}
