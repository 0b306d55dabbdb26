package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"accesshub/internal/application/access/usecases"
	"accesshub/internal/shared/config"
)

// SMTPReviewNotifier emails requesters when their access request is decided.
type SMTPReviewNotifier struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPReviewNotifier(cfg *config.EmailConfig) *SMTPReviewNotifier {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	return &SMTPReviewNotifier{
		cfg:    cfg,
		dialer: dialer,
	}
}

func (s *SMTPReviewNotifier) SendReviewNotification(ctx context.Context, n usecases.ReviewNotification) error {
	subject := fmt.Sprintf("Access request for %s: %s", n.ItemName, n.Status)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>Your access request for <strong>%s</strong> has been <strong>%s</strong>.</p>
			%s
		</body>
		</html>
	`, n.RecipientName, n.ItemName, n.Status, s.commentsHTML(n.Comments))

	plainBody := fmt.Sprintf(`Hi %s,

Your access request for %s has been %s.
%s`, n.RecipientName, n.ItemName, n.Status, s.commentsPlain(n.Comments))

	return s.sendEmail(n.RecipientEmail, subject, htmlBody, plainBody)
}

func (s *SMTPReviewNotifier) commentsHTML(comments string) string {
	if comments == "" {
		return ""
	}
	return fmt.Sprintf("<p>Reviewer comments: %s</p>", comments)
}

func (s *SMTPReviewNotifier) commentsPlain(comments string) string {
	if comments == "" {
		return ""
	}
	return fmt.Sprintf("\nReviewer comments: %s\n", comments)
}

func (s *SMTPReviewNotifier) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
