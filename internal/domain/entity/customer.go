// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Customer is a person ordering food through the mobile app.
// A customer is identified by a normalized mobile number and is never hard-deleted.
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"` // Normalized form, see NormalizeMobile.
	Image     *string   `json:"image"`  // Profile image URL.
	Active    bool      `json:"active"`
	Deleted   bool      `json:"-"` // Soft-delete flag.
	FCMToken  *string   `json:"-"` // Push token of the customer's device.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanSignIn reports whether the customer may authenticate and place orders.
func (c *Customer) CanSignIn() bool {
	return c != nil && !c.Deleted
}
