package service

import "context"

// SMSService delivers text messages to mobile numbers.
type SMSService interface {
	// Send delivers message to a normalized mobile number.
	Send(ctx context.Context, mobile, message string) error
}
