package v1_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-simple/services"
)

// fakeMailer records the last relayed message instead of dialing SMTP
type fakeMailer struct {
	replyTo string
	subject string
	message string
	fail    bool
}

func (f *fakeMailer) Send(replyTo, subject, message string) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.replyTo = replyTo
	f.subject = subject
	f.message = message
	return nil
}

func TestContactRelay(t *testing.T) {
	router := setupRouter(t)
	fake := &fakeMailer{}
	services.Mailer = fake
	t.Cleanup(func() { services.Mailer = nil })

	w := doJSON(router, http.MethodPost, "/api/v1/contact", "", gin.H{
		"from":    "visitor@example.com",
		"subject": "Hello",
		"message": "I like your work",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "visitor@example.com", fake.replyTo)
	assert.Equal(t, "Hello", fake.subject)
	assert.Equal(t, "I like your work", fake.message)
}

func TestContactMissingFields(t *testing.T) {
	router := setupRouter(t)
	services.Mailer = &fakeMailer{}
	t.Cleanup(func() { services.Mailer = nil })

	w := doJSON(router, http.MethodPost, "/api/v1/contact", "", gin.H{
		"from": "visitor@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactDeliveryFailure(t *testing.T) {
	router := setupRouter(t)
	services.Mailer = &fakeMailer{fail: true}
	t.Cleanup(func() { services.Mailer = nil })

	w := doJSON(router, http.MethodPost, "/api/v1/contact", "", gin.H{
		"from":    "visitor@example.com",
		"subject": "Hello",
		"message": "This will not arrive",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
