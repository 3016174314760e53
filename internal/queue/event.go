// Package queue carries booking events over RabbitMQ.
package queue

import (
	"time"

	"github.com/iliyamo/experience-booking/internal/model"
)

// BookingConfirmedQueue is the durable queue booking events are routed to.
const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent is published after a booking commits.  It holds
// enough context for an audit line without reading the database.
type BookingConfirmedEvent struct {
	BookingID       string  `json:"bookingId"`
	UserID          string  `json:"userId"`
	ExperienceID    string  `json:"experienceId"`
	ExperienceTitle string  `json:"experienceTitle"`
	SlotID          string  `json:"slotId"`
	SlotDate        string  `json:"slotDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	TotalPrice      string  `json:"totalPrice"`
	PromoCode       *string `json:"promoCode,omitempty"`
	ConfirmedAt     string  `json:"confirmedAt"`
}

// NewBookingConfirmedEvent builds the event for b.  Experience and Slot are
// optional; missing ones leave their fields empty.
func NewBookingConfirmedEvent(b model.Booking) BookingConfirmedEvent {
	ev := BookingConfirmedEvent{
		BookingID:    b.ID,
		UserID:       b.UserID,
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		TotalPrice:   b.TotalPrice.String(),
		PromoCode:    b.PromoCode,
		ConfirmedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.Experience != nil {
		ev.ExperienceTitle = b.Experience.Title
	}
	if b.Slot != nil {
		ev.SlotDate = b.Slot.Date.Format("2006-01-02")
		ev.StartTime = b.Slot.StartTime
		ev.EndTime = b.Slot.EndTime
	}
	return ev
}
