// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bookshelf/internal/delivery/http/response"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for credential-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

type createAccountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// CreateAccount handles the account creation request.
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Username and password are required")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterAccountInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// The salt and digest never leave the service.
	return response.Success(c, http.StatusCreated, map[string]string{
		"user_id": output.User.ID.String(),
	}, "Account created successfully")
}

// Login handles the credential verification request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Username and password are required")
	}

	if err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Login successful")
}

// UpdatePassword handles the password rotation request.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Username and new password are required")
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), usecase.UpdatePasswordInput{
		Username:    req.Username,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// DeleteAccount handles the account deletion request.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "user_id must be a valid UUID")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}
