package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/experience-booking/internal/middleware"
	"github.com/iliyamo/experience-booking/internal/model"
	"github.com/iliyamo/experience-booking/internal/repository"
	"github.com/iliyamo/experience-booking/internal/service"
)

type Authenticator interface {
	Register(ctx context.Context, in repository.NewUser) (service.AuthResult, error)
	Login(ctx context.Context, email, password string) (service.AuthResult, error)
	Me(ctx context.Context, userID string) (model.User, error)
}

// AuthHandler serves /api/auth.
type AuthHandler struct {
	Auth Authenticator
}

func NewAuthHandler(a Authenticator) *AuthHandler { return &AuthHandler{Auth: a} }

// ----- DTOs -----

type registerReq struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Name     string  `json:"name" validate:"required"`
	Phone    *string `json:"phone"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResp struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    model.User `json:"user"`
}

// Register creates a user and returns a token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if msg, err := bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	if req.Phone != nil && strings.TrimSpace(*req.Phone) == "" {
		req.Phone = nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Auth.Register(ctx, repository.NewUser{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if errors.Is(err, service.ErrEmailTaken) {
		return c.JSON(http.StatusConflict, echo.Map{"error": service.ErrEmailTaken.Msg})
	}
	if err != nil {
		return writeError(c, err, "Registration failed")
	}
	return c.JSON(http.StatusCreated, authResp{Message: "User registered successfully", Token: res.Token, User: res.User})
}

// Login verifies credentials and returns a fresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if msg, err := bindAndValidate(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Auth.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": service.ErrInvalidCredentials.Msg})
	}
	if err != nil {
		return writeError(c, err, "Login failed")
	}
	return c.JSON(http.StatusOK, authResp{Message: "Login successful", Token: res.Token, User: res.User})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	uid := middleware.UserID(c)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.Me(ctx, uid)
	if err != nil {
		return writeError(c, err, "Failed to fetch user")
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}
