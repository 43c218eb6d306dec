package main

import (
	"github.com/hibiken/asynq"

	loanjob "library-api/internal/domains/loan/job"
	"library-api/internal/shared"
	"library-api/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	notifyLateLoans *loanjob.NotifyLateLoansHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		notifyLateLoans: loanjob.NewNotifyLateLoansHandler(c.LoanService, c.Mailer, c.Config.Jobs),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeNotifyLateLoans, h.notifyLateLoans.ProcessTask)
}
