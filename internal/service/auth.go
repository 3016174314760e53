package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
	"github.com/iliyamo/experience-booking/internal/utils"
)

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, in repository.NewUser, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	Token string
	User  model.User
}

type AuthService struct {
	users      UserStore
	secret     string
	ttl        time.Duration
	bcryptCost int
}

func NewAuthService(users UserStore, secret string, ttl time.Duration, bcryptCost int) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl, bcryptCost: bcryptCost}
}

func (s *AuthService) Register(ctx context.Context, in repository.NewUser) (AuthResult, error) {
	u, err := s.users.Create(ctx, in, s.bcryptCost)
	if errors.Is(err, repository.ErrDuplicate) {
		return AuthResult{}, ErrEmailTaken
	}
	// bcrypt caps input at 72 bytes; multi-byte passwords can pass the
	// handler's rune count and still hit it.
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return AuthResult{}, ErrPasswordTooLong
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}
	return s.issue(u)
}

// Login verifies credentials.  Unknown email and wrong password produce
// the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user: %w", err)
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return AuthResult{}, ErrInvalidCredentials
	}
	return s.issue(u)
}

func (s *AuthService) Me(ctx context.Context, userID string) (model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *AuthService) issue(u model.User) (AuthResult, error) {
	tok, err := utils.NewAccessToken(s.secret, u.ID, u.Email, s.ttl)
	if err != nil {
		return AuthResult{}, fmt.Errorf("sign token: %w", err)
	}
	return AuthResult{Token: tok.Token, User: u}, nil
}
