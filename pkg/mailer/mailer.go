package mailer

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Sender represents an interface for dispatching a single plain-text email.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams represents the parameters for one outbound message.
type SendParams struct {
	To         string `json:"to"`                    // Recipient address
	Subject    string `json:"subject"`               // Message subject
	Body       string `json:"body"`                  // Plain-text body
	SenderName string `json:"sender_name,omitempty"` // From display name; falls back to config
}

// emailRegex is a pragmatic format check, not full RFC 5322 validation.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the parameters before any network I/O happens.
func (p SendParams) Validate() error {
	if strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Body) == "" {
		return fmt.Errorf("%w: Body is required", ErrInvalidParams)
	}
	return nil
}
