package model

import "time"

// BookingStatus is the lifecycle state of a booking.  Only CONFIRMED is
// produced by this service; the other values exist in the schema.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking records a user's reservation of one slot at a computed price.
// Experience, Slot and User are filled in by read paths that join them.
type Booking struct {
	ID           string        `json:"id"`
	UserID       string        `json:"userId"`
	ExperienceID string        `json:"experienceId"`
	SlotID       string        `json:"slotId"`
	TotalPrice   Money         `json:"totalPrice"`
	PromoCode    *string       `json:"promoCode"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	Experience *Experience  `json:"experience,omitempty"`
	Slot       *Slot        `json:"slot,omitempty"`
	User       *UserSummary `json:"user,omitempty"`
}
