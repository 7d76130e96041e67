package handler

import (
	"log/slog"
	"net/http"

	"quickeats/internal/delivery/api/middleware"
	"quickeats/internal/delivery/api/response"
	"quickeats/internal/errors"
	"quickeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves the signed-in customer's profile.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// EditProfileRequest is a partial update; omitted fields stay unchanged.
type EditProfileRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Image *string `json:"image"`
}

// UpdatePushTokenRequest is the body of PUT /user/fcm-token.
type UpdatePushTokenRequest struct {
	FCMToken string `json:"fcm_token"`
}

// GetProfile returns the signed-in customer.
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customerID, err := middleware.GetCustomerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.customerUC.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "OK")
}

// EditProfile applies a partial profile update.
func (h *CustomerHandler) EditProfile(c echo.Context) error {
	customerID, err := middleware.GetCustomerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req EditProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.customerUC.EditProfile(c.Request().Context(), customerID, usecase.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
		Image: req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}

// UpdatePushToken stores the device push token of the customer.
func (h *CustomerHandler) UpdatePushToken(c echo.Context) error {
	customerID, err := middleware.GetCustomerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req UpdatePushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid FCM token input")
	}

	if err := h.customerUC.UpdatePushToken(c.Request().Context(), customerID, req.FCMToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated successfully"}, "OK")
}
