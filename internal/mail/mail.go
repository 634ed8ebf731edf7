package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	"autoservice/internal/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is a plain-text e-mail.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

// Client hands messages to an SMTP server.
type Client struct {
	from   string
	dialer *gomail.Dialer
}

func New(cfg config.MailConfig) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}
	return &Client{from: cfg.From, dialer: dialer}
}

func (c *Client) Send(_ context.Context, m Message) error {
	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", m.To...)
	if m.ReplyTo != "" {
		msg.SetHeader("Reply-To", m.ReplyTo)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Body)

	if err := c.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// LogClient only logs messages. Used when no SMTP host is configured.
type LogClient struct {
	log *zap.SugaredLogger
}

func NewLogClient(log *zap.SugaredLogger) *LogClient {
	return &LogClient{log: log}
}

func (c *LogClient) Send(_ context.Context, m Message) error {
	c.log.Infow("mail not sent, SMTP is not configured", "to", m.To, "subject", m.Subject)
	return nil
}
