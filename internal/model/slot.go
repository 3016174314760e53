package model

import "time"

// Slot is a dated, time-boxed instance of an Experience with a finite
// capacity.  BookedCount never exceeds Capacity; it is only ever changed by
// the booking transaction.
type Slot struct {
	ID           string    `json:"id"`
	ExperienceID string    `json:"experienceId"`
	Date         time.Time `json:"date"`      // slots.date (DATE, UTC midnight)
	StartTime    string    `json:"startTime"` // "HH:MM"
	EndTime      string    `json:"endTime"`   // "HH:MM"
	Capacity     int       `json:"capacity"`
	BookedCount  int       `json:"bookedCount"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Remaining returns the number of spots still available.
func (s Slot) Remaining() int {
	if s.BookedCount >= s.Capacity {
		return 0
	}
	return s.Capacity - s.BookedCount
}

// IsFull reports whether no more bookings can be accepted.
func (s Slot) IsFull() bool { return s.BookedCount >= s.Capacity }
