package mailer

import (
	"fmt"
	"strconv"

	"github.com/portfolio-simple/config"
	"gopkg.in/gomail.v2"
)

// Sender relays a contact form submission to the site owner's mailbox
type Sender interface {
	Send(replyTo, subject, message string) error
}

// Config holds the SMTP settings for the outbound mail collaborator
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
}

// Client sends mail over SMTP
type Client struct {
	cfg    Config
	dialer *gomail.Dialer
}

// NewClient creates a mail client from the given config
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// NewClientFromEnv creates a mail client from SMTP_* environment variables
func NewClientFromEnv() *Client {
	port, err := strconv.Atoi(config.GetEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return NewClient(Config{
		Host:     config.GetEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		Username: config.GetEnv("SMTP_USER", ""),
		Password: config.GetEnv("SMTP_PASS", ""),
		To:       config.GetEnv("CONTACT_TO", config.GetEnv("SMTP_USER", "")),
	})
}

// Send relays the message with Reply-To pointing at the visitor so the
// owner can answer directly
func (c *Client) Send(replyTo, subject, message string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", c.cfg.Username, "Portfolio contact")
	m.SetHeader("To", c.cfg.To)
	m.SetHeader("Reply-To", replyTo)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", fmt.Sprintf("%s\n\nSent by: %s", message, replyTo))
	return c.dialer.DialAndSend(m)
}
