package notification

import (
	"context"
	"errors"
)

// ErrNotConfigured means SMTP settings are incomplete. Callers treat it as a
// skip, not a failure.
var ErrNotConfigured = errors.New("email notifications not configured")

// QuizLead is the payload for a completed smile assessment.
type QuizLead struct {
	FirstName       string
	Email           string
	Phone           string
	SmileType       string
	SmileTypeName   string
	PrimaryInterest string
	Timeline        string
	Recommendations []string
}

// ContactMessage is the payload for a contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Body    string
}

// Notifier delivers best-effort notifications to the practice. Implementations
// must never be called on the synchronous request path.
type Notifier interface {
	NotifyQuizLead(ctx context.Context, lead QuizLead) error
	NotifyContactMessage(ctx context.Context, msg ContactMessage) error
}
