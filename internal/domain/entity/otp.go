package entity

import "time"

// OTP is a one-time sign-in code issued to a mobile number.
// Only the hash of the code is persisted.
type OTP struct {
	ID        int64
	Mobile    string
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the code can no longer be used at now.
func (o *OTP) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
