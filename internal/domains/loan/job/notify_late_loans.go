package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"library-api/internal/config"
	"library-api/internal/domains/loan/service"
	"library-api/internal/infrastructure/email"
	"library-api/pkg/logger"
)

// NotifyLateLoansPayload is empty; each firing recomputes its cutoff.
type NotifyLateLoansPayload struct{}

// NotifyLateLoansHandler runs the periodic overdue sweep: it collects late
// loans, extracts the customer emails and triggers one mail dispatch per
// firing. An empty result is a logged no-op.
type NotifyLateLoansHandler struct {
	loans    service.ServiceInterface
	mailer   email.MailService
	message  string
	termDays int
}

func NewNotifyLateLoansHandler(loans service.ServiceInterface, mailer email.MailService, jobCfg config.JobConfig) *NotifyLateLoansHandler {
	return &NotifyLateLoansHandler{
		loans:    loans,
		mailer:   mailer,
		message:  jobCfg.LateLoanMessage,
		termDays: jobCfg.LoanTermDays,
	}
}

func (h *NotifyLateLoansHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	cutoff := time.Now().AddDate(0, 0, -h.termDays)

	lateLoans, err := h.loans.GetAllLateLoans(ctx, cutoff)
	if err != nil {
		logger.Error("Failed to load late loans", err)
		return err
	}

	emails := make([]string, 0, len(lateLoans))
	for i := range lateLoans {
		emails = append(emails, lateLoans[i].CustomerEmail)
	}

	if len(emails) == 0 {
		logger.Info("No late loans, nothing to dispatch", map[string]interface{}{})
		return nil
	}

	logger.Info("Dispatching late loan notifications", map[string]interface{}{
		"count": len(emails),
	})

	return h.mailer.SendMails(ctx, h.message, emails)
}
