package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/utils"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// NewUser carries registration input.  Password is plain text; Create hashes it.
type NewUser struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

// Create hashes the password, inserts the user and returns the stored
// record.  A taken email yields ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, in NewUser, cost int) (model.User, error) {
	hash, err := utils.HashPassword(in.Password, cost)
	if err != nil {
		return model.User{}, err
	}
	u := model.User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(in.Email),
		Name:         strings.TrimSpace(in.Name),
		Phone:        in.Phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, email, name, phone, password_hash, created_at) VALUES (?,?,?,?,?,?)",
		u.ID, u.Email, u.Name, u.Phone, u.PasswordHash, u.CreatedAt)
	if err != nil {
		if isDuplicate(err) {
			return model.User{}, ErrDuplicate
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

const userSelect = "SELECT id, email, name, phone, password_hash, created_at FROM users "

func scanUser(row rowScanner) (model.User, error) {
	var (
		u     model.User
		phone sql.NullString
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &phone, &u.PasswordHash, &u.CreatedAt); err != nil {
		return model.User{}, notFound(err)
	}
	if phone.Valid {
		p := phone.String
		u.Phone = &p
	}
	return u, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx, userSelect+"WHERE email=? LIMIT 1", normalizeEmail(email)))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx, userSelect+"WHERE id=? LIMIT 1", id))
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
