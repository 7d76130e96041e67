package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"quickeats/internal/delivery/api/response"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves sign-up, OTP sign-in and token refresh.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// SignUpRequest is the body of POST /auth/sign-up.
type SignUpRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile" validate:"required"`
}

// RequestOTPRequest is the body of POST /auth/request-otp.
type RequestOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// SignInRequest is the body of POST /auth/sign-in.
type SignInRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	OTP    string `json:"otp" validate:"required"`
}

// SignUp registers a customer.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.authUC.SignUp(c.Request().Context(), usecase.SignUpInput{
		Email:  strings.TrimSpace(req.Email),
		Name:   strings.TrimSpace(req.Name),
		Mobile: req.Mobile,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{"id": customer.ID}, "Customer registered successfully")
}

// RequestOTP texts a sign-in code.
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP request")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.RequestOTP(c.Request().Context(), req.Mobile); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "OTP sent successfully.", "OK")
}

// SignIn exchanges an OTP for a session token.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.authUC.SignIn(c.Request().Context(), req.Mobile, strings.TrimSpace(req.OTP))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Sign-in successful")
}

// RefreshToken re-mints the bearer token when it is close to expiry.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Token is missing or invalid")
	}

	refreshed, err := h.authUC.RefreshToken(c.Request().Context(), strings.TrimSpace(token))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"refreshedToken": refreshed}, "Token refreshed successfully")
}
