package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshelf/internal/delivery/http/middleware"
	"bookshelf/internal/delivery/http/validator"
	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	mockUC "bookshelf/internal/mocks/usecase"
	"bookshelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEcho builds an Echo instance with the production error mapping and
// request validator, so handler tests observe the same status codes clients would.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

type accountHandlerFixtures struct {
	echo *echo.Echo
	uc   *mockUC.MockAccountUsecase
}

func createTestAccountHandler(t *testing.T) accountHandlerFixtures {
	uc := mockUC.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newTestEcho()
	e.POST("/api/create-account", h.CreateAccount)
	e.POST("/api/login", h.Login)
	e.PUT("/api/update-password", h.UpdatePassword)
	e.DELETE("/api/delete-account/:user_id", h.DeleteAccount)

	return accountHandlerFixtures{echo: e, uc: uc}
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAccountHandler_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	userID := uuid.New()
	fx.uc.EXPECT().
		Register(anyCtx, usecase.RegisterAccountInput{Username: "alice", Password: "sekret"}).
		Return(&usecase.RegisterOutput{User: &entity.User{ID: userID, Username: "alice"}}, nil)

	rec := doJSON(fx.echo, http.MethodPost, "/api/create-account", `{"username":"alice","password":"sekret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.NotContains(t, rec.Body.String(), "salt")
	assert.NotContains(t, rec.Body.String(), "hashed_password")
}

func TestAccountHandler_CreateAccount_Duplicate(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.uc.EXPECT().
		Register(anyCtx, usecase.RegisterAccountInput{Username: "alice", Password: "sekret"}).
		Return(nil, errors.Wrap(domainerrors.ErrDuplicateUsername, "username already exists"))

	rec := doJSON(fx.echo, http.MethodPost, "/api/create-account", `{"username":"alice","password":"sekret"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "DUPLICATE_USERNAME")
}

func TestAccountHandler_CreateAccount_MissingFields(t *testing.T) {
	// No expectation on the usecase: the request validator rejects the
	// payload before the core is reached.
	fx := createTestAccountHandler(t)

	rec := doJSON(fx.echo, http.MethodPost, "/api/create-account", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_Login_MissingFields(t *testing.T) {
	fx := createTestAccountHandler(t)

	rec := doJSON(fx.echo, http.MethodPost, "/api/login", `{"password":"sekret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_UpdatePassword_MissingFields(t *testing.T) {
	fx := createTestAccountHandler(t)

	rec := doJSON(fx.echo, http.MethodPut, "/api/update-password", `{"username":"alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAccountHandler_Login_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.uc.EXPECT().
		Login(anyCtx, usecase.LoginInput{Username: "alice", Password: "sekret"}).
		Return(nil)

	rec := doJSON(fx.echo, http.MethodPost, "/api/login", `{"username":"alice","password":"sekret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Login successful")
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.uc.EXPECT().
		Login(anyCtx, usecase.LoginInput{Username: "alice", Password: "wrong"}).
		Return(errors.Wrap(domainerrors.ErrInvalidCredentials, "invalid username or password"))

	rec := doJSON(fx.echo, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	// The response never reveals whether the username or password was wrong.
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestAccountHandler_Login_StorageUnavailable(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.uc.EXPECT().
		Login(anyCtx, usecase.LoginInput{Username: "alice", Password: "sekret"}).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to find user by username"))

	rec := doJSON(fx.echo, http.MethodPost, "/api/login", `{"username":"alice","password":"sekret"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORAGE_UNAVAILABLE")
}

func TestAccountHandler_UpdatePassword_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.uc.EXPECT().
		UpdatePassword(anyCtx, usecase.UpdatePasswordInput{Username: "alice", NewPassword: "newsekret"}).
		Return(nil)

	rec := doJSON(fx.echo, http.MethodPut, "/api/update-password", `{"username":"alice","new_password":"newsekret"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password updated successfully")
}

func TestAccountHandler_UpdatePassword_UserNotFound(t *testing.T) {
	fx := createTestAccountHandler(t)

	fx.uc.EXPECT().
		UpdatePassword(anyCtx, usecase.UpdatePasswordInput{Username: "ghost", NewPassword: "newsekret"}).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))

	rec := doJSON(fx.echo, http.MethodPut, "/api/update-password", `{"username":"ghost","new_password":"newsekret"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}

func TestAccountHandler_DeleteAccount_Success(t *testing.T) {
	fx := createTestAccountHandler(t)

	userID := uuid.New()
	fx.uc.EXPECT().DeleteAccount(anyCtx, userID).Return(nil)

	rec := doJSON(fx.echo, http.MethodDelete, "/api/delete-account/"+userID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_DeleteAccount_InvalidID(t *testing.T) {
	fx := createTestAccountHandler(t)

	rec := doJSON(fx.echo, http.MethodDelete, "/api/delete-account/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAccountHandler_DeleteAccount_NotFound(t *testing.T) {
	fx := createTestAccountHandler(t)

	userID := uuid.New()
	fx.uc.EXPECT().
		DeleteAccount(anyCtx, userID).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "user not found"))

	rec := doJSON(fx.echo, http.MethodDelete, "/api/delete-account/"+userID.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
}
