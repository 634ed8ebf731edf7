package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"autoservice/internal/config"
	mailer "autoservice/internal/mail"
)

const ResultBadEmail = "bad_email"

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Settings is what the front-end needs to brand itself before anyone logs in.
type Settings struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logoUrl"`
	PrimaryColor string `json:"primaryColor"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
}

// Mailer delivers e-mail.
type Mailer interface {
	Send(ctx context.Context, m mailer.Message) error
}

type SettingsService interface {
	Settings() Settings
	Contact(ctx context.Context, req ContactRequest) error
}

type settingsService struct {
	tenant    config.TenantConfig
	contactTo string
	mailer    Mailer
}

func NewSettingsService(tenant config.TenantConfig, contactTo string, m Mailer) SettingsService {
	return &settingsService{tenant: tenant, contactTo: contactTo, mailer: m}
}

func (s *settingsService) Settings() Settings {
	return Settings{
		Name:         s.tenant.Name,
		LogoURL:      s.tenant.LogoURL,
		PrimaryColor: s.tenant.PrimaryColor,
		Phone:        s.tenant.Phone,
		Email:        s.tenant.Email,
		Address:      s.tenant.Address,
	}
}

// Contact forwards a contact-form message to the workshop's inbox.
func (s *settingsService) Contact(ctx context.Context, req ContactRequest) error {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return invalid(ResultNoEmail)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid(ResultBadEmail)
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return invalid(ResultNoMessage)
	}

	to := s.contactTo
	if to == "" {
		to = s.tenant.Email
	}
	if to == "" {
		return fmt.Errorf("no contact recipient configured")
	}

	body := fmt.Sprintf("Name: %s\nE-mail: %s\nPhone: %s\n\n%s",
		strings.TrimSpace(req.Name), email, strings.TrimSpace(req.Phone), message)
	return s.mailer.Send(ctx, mailer.Message{
		To:      []string{to},
		ReplyTo: email,
		Subject: "Contact form: " + s.tenant.Name,
		Body:    body,
	})
}
