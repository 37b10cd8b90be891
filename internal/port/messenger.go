package port

import "context"

// Messenger sends a text message to a single phone number.
type Messenger interface {
	SendText(ctx context.Context, phone, message string) error
}
