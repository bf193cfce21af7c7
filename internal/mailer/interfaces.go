package mailer

import (
	"gopkg.in/gomail.v2"

	"github.com/katalystvc/lead-capture-service/internal/domain"
)

// Mailer defines the interface for dispatching the two lead notification
// emails. Sends are best-effort: a failed send is logged and reported as
// false, never returned as an error.
type Mailer interface {
	// SendBoth sends the confirmation email to the lead and the alert
	// email to the internal address. The two sends are independent; a
	// failure of one does not prevent the other.
	SendBoth(lead *domain.Lead) (userSent, internalSent bool)
}

// Sender abstracts the SMTP dialer so tests can count and fail sends.
// *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}
