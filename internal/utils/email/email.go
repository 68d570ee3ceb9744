package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/ivmart/tracker-service/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendDueTaskReminder sends a reminder email for a task nearing its due date
func (s *Sender) SendDueTaskReminder(to, username, taskTitle, projectName string, dueDate time.Time) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Task Due Soon: %s", taskTitle)

	body := fmt.Sprintf(
		"Dear %s,\n\n", username,
	)
	body += fmt.Sprintf(
		"This is a reminder that the task \"%s\" in project \"%s\" is due on %s.\n",
		taskTitle, projectName, dueDate.Format("2006-01-02 15:04"),
	)
	body += "\nBest regards,\nTracker Service"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
