package middleware

import (
	"strings"

	deliverycontext "quickeats/internal/delivery/context"
	domainerrors "quickeats/internal/domain/errors"
	"quickeats/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates customers by their session token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid bearer token of an active
// customer and stores the customer ID for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		customer, err := m.authUC.AuthenticateToken(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			return err
		}

		deliverycontext.SetCustomerID(c, customer.ID)

		return next(c)
	}
}

// GetCustomerID returns the authenticated customer set by Authenticate.
func GetCustomerID(c echo.Context) (int64, error) {
	id, ok := deliverycontext.GetCustomerID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized
	}

	return id, nil
}
