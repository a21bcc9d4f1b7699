package mail

import (
	"careerbridge/internal/api/config"
	"errors"
	"time"

	"gopkg.in/gomail.v2"
)

// sendTimeout bounds one SMTP dial-and-send; gomail exposes no deadline of
// its own, and an alert batch must not hang on a stalled peer.
const sendTimeout = 30 * time.Second

// Message is one outbound email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender dispatches email through an external transport.
type Sender interface {
	Send(msg Message) error
}

type smtpSender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(msg Message) error {
	if s.cfg.Host == "" {
		return errors.New("smtp transport not configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	return runWithTimeout(func() error { return d.DialAndSend(m) }, sendTimeout)
}

func runWithTimeout(send func() error, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() { done <- send() }()
	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return errors.New("smtp send timed out")
	}
}
