package model

import "time"

// Experience is a bookable activity with a fixed base price.  It is
// immutable once seeded and owns any number of slots.
//
// Fields:
//
//	ID          – experiences.id (UUID).
//	Price       – base price per booking, DECIMAL(10,2).
//	Rating      – average rating, 0.0–5.0.
//	Duration    – length of the activity in minutes.
//	Slots       – populated only by the detail read path.
type Experience struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Price       Money     `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Duration    int       `json:"duration"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Slots       []Slot    `json:"slots,omitempty"`
}
