package request

import (
	"errors"
	"fmt"
)

// ErrInternalServer is the message returned when a handler fails unexpectedly.
var ErrInternalServer = errors.New("internal server error")

// Message is the JSON body of every error response from the monitoring server.
type Message struct {
	Message string `json:"Message"`
}

// NewMessage creates a new Message. The message is formatted when args are given.
func NewMessage(message string, args ...any) *Message {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &Message{
		Message: message,
	}
}
