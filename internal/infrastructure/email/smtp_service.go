package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"library-api/pkg/logger"
)

// MailService is the outbound notifier contract. The caller fires at most
// one send per overdue sweep; delivery confirmation is out of scope.
type MailService interface {
	SendMails(ctx context.Context, message string, recipients []string) error
}

type smtpMailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPMailService(smtpHost, smtpPort, from string) MailService {
	return &smtpMailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpMailService) SendMails(ctx context.Context, message string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	subject := "Late loan reminder"
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, strings.Join(recipients, ", "), subject, message))

	if err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, recipients, msg); err != nil {
		logger.Error("Failed to send late loan mails", err)
		return fmt.Errorf("failed to send mails: %w", err)
	}

	logger.Info("Late loan mails sent", map[string]interface{}{
		"recipients": len(recipients),
	})

	return nil
}
