package services

import (
	"errors"

	"github.com/portfolio-simple/dto"
	"github.com/portfolio-simple/lib/mailer"
)

// Mailer is the outbound mail collaborator, set once at startup
var Mailer mailer.Sender

// SendContactMessage relays a contact form submission by mail
func SendContactMessage(req dto.ContactRequest) error {
	if Mailer == nil {
		return errors.New("mailer not configured")
	}
	return Mailer.Send(req.From, req.Subject, req.Message)
}
