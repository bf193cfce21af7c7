package mailer

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/katalystvc/lead-capture-service/internal/config"
	"github.com/katalystvc/lead-capture-service/internal/domain"
)

// SMTPMailer sends the notification emails over SMTP with STARTTLS.
type SMTPMailer struct {
	sender        Sender
	from          string
	internalEmail string
	baseURL       string
	log           *zap.Logger
}

// New creates an SMTP mailer from the configured credentials. Callers are
// expected to check config.MailConfigured first; the service skips
// sending entirely when no credentials are present.
func New(cfg *config.Config, log *zap.Logger) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPassword)

	log.Info("SMTP mailer configured",
		zap.String("server", cfg.SMTPServer),
		zap.Int("port", cfg.SMTPPort),
		zap.String("internal_email", cfg.InternalEmail))

	return &SMTPMailer{
		sender:        dialer,
		from:          cfg.EmailUser,
		internalEmail: cfg.InternalEmail,
		baseURL:       cfg.DownloadBaseURL,
		log:           log,
	}
}

// SendBoth sends the confirmation and internal alert emails. Each send is
// attempted regardless of the other's outcome, and each failure is logged
// and reported as false.
func (m *SMTPMailer) SendBoth(lead *domain.Lead) (userSent, internalSent bool) {
	userSent = m.sendConfirmation(lead)
	internalSent = m.sendInternal(lead)
	return userSent, internalSent
}

func (m *SMTPMailer) sendConfirmation(lead *domain.Lead) bool {
	subject, body, err := renderConfirmation(lead, m.baseURL)
	if err != nil {
		m.log.Error("Failed to render confirmation email",
			zap.Int64("lead_id", lead.ID),
			zap.Error(err))
		return false
	}

	if err := m.send(lead.Email, subject, body); err != nil {
		m.log.Error("Failed to send confirmation email",
			zap.Int64("lead_id", lead.ID),
			zap.String("to", lead.Email),
			zap.Error(err))
		return false
	}

	return true
}

func (m *SMTPMailer) sendInternal(lead *domain.Lead) bool {
	subject, body, err := renderInternal(lead)
	if err != nil {
		m.log.Error("Failed to render internal alert email",
			zap.Int64("lead_id", lead.ID),
			zap.Error(err))
		return false
	}

	if err := m.send(m.internalEmail, subject, body); err != nil {
		m.log.Error("Failed to send internal alert email",
			zap.Int64("lead_id", lead.ID),
			zap.String("to", m.internalEmail),
			zap.Error(err))
		return false
	}

	return true
}

func (m *SMTPMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.sender.DialAndSend(msg)
}
