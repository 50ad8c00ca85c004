package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/nurselink/booking-api/config"
)

// Service sends transactional mail. Delivery is best-effort: callers log
// failures but never fail the triggering operation on them.
type Service interface {
	SendAppointmentConfirmation(ctx context.Context, to, nurse string, at time.Time) error
}

type smtpSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSender returns an SMTP-backed sender, or a no-op sender when SMTP is
// disabled in config.
func NewSender(cfg config.SMTPConfig) Service {
	if !cfg.Enabled {
		return noopSender{}
	}
	return &smtpSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpSender) SendAppointmentConfirmation(_ context.Context, to, nurse string, at time.Time) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Appointment confirmed")
	m.SetBody("text/plain", fmt.Sprintf(
		"Your appointment with %s on %s has been confirmed.",
		nurse, at.Format(time.RFC1123),
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

type noopSender struct{}

func (noopSender) SendAppointmentConfirmation(context.Context, string, string, time.Time) error {
	return nil
}
