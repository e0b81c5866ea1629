package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/resend/resend-go/v3"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/domain"
)

// Service sends notification emails to the studio address when visitors
// submit quotation requests or reviews. Callers dispatch these
// fire-and-forget; delivery failures are logged and never surfaced.
type Service interface {
	SendQuotationNotification(ctx context.Context, q *domain.Quotation) error
	SendReviewNotification(ctx context.Context, r *domain.Review) error
}

type service struct {
	client       *resend.Client
	config       *config.Config
	templatePath string
}

func NewService(cfg *config.Config) Service {
	client := resend.NewClient(cfg.ResendAPIKey)
	templatePath := "internal/service/templates/email"
	return &service{
		client:       client,
		config:       cfg,
		templatePath: templatePath,
	}
}

func (s *service) sendEmail(toEmail, subject, templateName string, data interface{}) error {
	tmpl, err := template.ParseFiles(
		filepath.Join(s.templatePath, "layout.html"),
		filepath.Join(s.templatePath, templateName),
	)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Lumiere Photography <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	_, err = s.client.Emails.Send(params)
	return err
}

func (s *service) SendQuotationNotification(ctx context.Context, q *domain.Quotation) error {
	data := struct {
		Title     string
		Name      string
		Email     string
		Phone     string
		Service   string
		EventDate string
		Location  string
		Message   string
	}{
		Title:     "New Quotation Request",
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone,
		Service:   q.Service,
		EventDate: q.EventDate,
		Location:  q.Location,
		Message:   q.Message,
	}
	subject := fmt.Sprintf("New quotation request from %s", q.Name)
	return s.sendEmail(s.config.NotifyEmail, subject, "quotation_notification.html", data)
}

func (s *service) SendReviewNotification(ctx context.Context, r *domain.Review) error {
	data := struct {
		Title      string
		ClientName string
		Email      string
		Rating     int
		Comment    string
	}{
		Title:      "New Review Awaiting Moderation",
		ClientName: r.ClientName,
		Email:      r.Email,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
	subject := fmt.Sprintf("New review from %s awaiting approval", r.ClientName)
	return s.sendEmail(s.config.NotifyEmail, subject, "review_notification.html", data)
}
