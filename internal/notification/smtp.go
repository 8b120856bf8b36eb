package notification

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/dentalogix/dentalogix-api/internal/config"
	"github.com/dentalogix/dentalogix-api/internal/settings"
	"gopkg.in/gomail.v2"
)

type smtpNotifier struct {
	settings settings.Provider
}

// NewSMTPNotifier builds a notifier that reads SMTP configuration from the
// settings domain on every send, so admin panel changes apply without a
// restart.
func NewSMTPNotifier(provider settings.Provider) Notifier {
	return &smtpNotifier{settings: provider}
}

func (n *smtpNotifier) dialerFor(s *settings.SiteSettings) (*gomail.Dialer, string, error) {
	if s.SMTPHost == "" || s.SMTPUser == "" || s.SMTPPass == "" {
		return nil, "", ErrNotConfigured
	}

	recipient := s.NotificationEmail
	if recipient == "" {
		recipient = s.Email
	}
	if recipient == "" {
		return nil, "", ErrNotConfigured
	}

	port := s.SMTPPort
	if port == 0 {
		port = 587
	}

	dialer := gomail.NewDialer(s.SMTPHost, port, s.SMTPUser, s.SMTPPass)
	dialer.SSL = s.SMTPSecure
	return dialer, recipient, nil
}

func (n *smtpNotifier) send(ctx context.Context, subject, body string) error {
	log := config.WithContext(ctx)

	s, err := n.settings.SiteSettings(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	dialer, recipient, err := n.dialerFor(s)
	if err != nil {
		log.Info("Email not configured, skipping notification")
		return err
	}

	siteName := s.SiteName
	if siteName == "" {
		siteName = "Dentalogix"
	}
	from := s.SMTPFrom
	if from == "" {
		from = s.SMTPUser
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, siteName)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	log.WithField("to", recipient).Info("Notification email sent")
	return nil
}

func (n *smtpNotifier) NotifyQuizLead(ctx context.Context, lead QuizLead) error {
	name := lead.FirstName
	if name == "" {
		name = "Anonymous"
	}
	smileType := lead.SmileTypeName
	if smileType == "" {
		smileType = "Smile Assessment"
	}

	subject := fmt.Sprintf("New Quiz Lead: %s - %s", name, smileType)

	var b strings.Builder
	b.WriteString(`<h2>New Smile Assessment Completed!</h2>`)
	fmt.Fprintf(&b, `<p><strong>Smile Type:</strong> %s</p>`, html.EscapeString(smileType))
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, html.EscapeString(orNotProvided(lead.FirstName)))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, html.EscapeString(orNotProvided(lead.Email)))
	fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, html.EscapeString(orNotProvided(lead.Phone)))
	fmt.Fprintf(&b, `<p><strong>Primary Interest:</strong> %s</p>`, html.EscapeString(orNotProvided(lead.PrimaryInterest)))
	fmt.Fprintf(&b, `<p><strong>Timeline:</strong> %s</p>`, html.EscapeString(orNotProvided(lead.Timeline)))
	if len(lead.Recommendations) > 0 {
		fmt.Fprintf(&b, `<p><strong>Recommended Treatments:</strong> %s</p>`,
			html.EscapeString(strings.Join(lead.Recommendations, ", ")))
	}

	return n.send(ctx, subject, b.String())
}

func (n *smtpNotifier) NotifyContactMessage(ctx context.Context, msg ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	var b strings.Builder
	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	fmt.Fprintf(&b, `<p><strong>Name:</strong> %s</p>`, html.EscapeString(orNotProvided(msg.Name)))
	fmt.Fprintf(&b, `<p><strong>Email:</strong> %s</p>`, html.EscapeString(orNotProvided(msg.Email)))
	fmt.Fprintf(&b, `<p><strong>Phone:</strong> %s</p>`, html.EscapeString(orNotProvided(msg.Phone)))
	fmt.Fprintf(&b, `<p><strong>Message:</strong></p><p>%s</p>`, html.EscapeString(msg.Body))

	return n.send(ctx, fmt.Sprintf("New Contact Form Submission: %s", subject), b.String())
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}
