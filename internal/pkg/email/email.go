package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/ethekwini-metro/pts-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService sends the HR alert emails.
type EmailService interface {
	// SendAOLAlert notifies HR about officers with pending AOL entries.
	SendAOLAlert(to string, officers []AOLOfficer) error

	// SendDailySummary mails the end-of-day attendance counters.
	SendDailySummary(to string, data DailySummaryData) error
}

type AOLOfficer struct {
	Name      string
	AONumber  string
	Station   string
	StartDate string
	Days      int
}

type DailySummaryData struct {
	Date           string
	ClockedIn      int64
	StillOnDuty    int64
	PendingLeaves  int64
	ActiveOfficers int64
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type aolAlertEmailData struct {
	Officers []AOLOfficer
	Count    int
}

// SendAOLAlert implements EmailService.
func (s *emailServiceImpl) SendAOLAlert(to string, officers []AOLOfficer) error {
	data := aolAlertEmailData{
		Officers: officers,
		Count:    len(officers),
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "aol_alert.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("AOL alert: %d officer(s) absent without leave", len(officers)), body.String())
}

// SendDailySummary implements EmailService.
func (s *emailServiceImpl) SendDailySummary(to string, data DailySummaryData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "daily_summary.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Daily attendance summary for %s", data.Date), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
