package model

import "time"

// User represents an application user record as stored in the
// `users` table.  The password hash never leaves the server.
//
// Fields:
//
//	ID           – primary key identifier of the user (UUID).
//	Email        – unique, lower-cased email address.
//	Phone        – optional contact number.
//	PasswordHash – bcrypt hashed password.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserSummary is the subset of a user attached to booking details.
type UserSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Summary strips credentials and timestamps from u.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
