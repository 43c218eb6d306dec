package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/config"
	"library-api/internal/domains/loan/model"
	"library-api/internal/domains/loan/service"
	"library-api/internal/shared"
)

// stubLoanService returns a canned set of late loans and records the cutoff
// it was asked about.
type stubLoanService struct {
	late   []model.Loan
	err    error
	cutoff time.Time
}

func (s *stubLoanService) Create(_ context.Context, _ service.CreateLoanInput) (*model.Loan, error) {
	return nil, nil
}

func (s *stubLoanService) GetByID(_ context.Context, _ int64) (*model.Loan, error) {
	return nil, nil
}

func (s *stubLoanService) Return(_ context.Context, _ int64) (*model.Loan, error) {
	return nil, nil
}

func (s *stubLoanService) Update(_ context.Context, l *model.Loan) (*model.Loan, error) {
	return l, nil
}

func (s *stubLoanService) Find(_ context.Context, _ model.LoanFilter, _ shared.PageRequest) ([]model.Loan, int64, error) {
	return nil, 0, nil
}

func (s *stubLoanService) FindByBook(_ context.Context, _ int64, _ shared.PageRequest) ([]model.Loan, int64, error) {
	return nil, 0, nil
}

func (s *stubLoanService) GetAllLateLoans(_ context.Context, cutoff time.Time) ([]model.Loan, error) {
	s.cutoff = cutoff
	return s.late, s.err
}

// recordingMailer captures every dispatch.
type recordingMailer struct {
	calls      int
	message    string
	recipients []string
	err        error
}

func (m *recordingMailer) SendMails(_ context.Context, message string, recipients []string) error {
	m.calls++
	m.message = message
	m.recipients = recipients
	return m.err
}

func newTask(t *testing.T) *asynq.Task {
	t.Helper()
	return asynq.NewTask(shared.TypeNotifyLateLoans, nil)
}

func TestNotifyLateLoans_DispatchesOncePerFiring(t *testing.T) {
	loans := &stubLoanService{late: []model.Loan{
		{ID: 1, Customer: "Alice", CustomerEmail: "alice@mail.com"},
		{ID: 2, Customer: "Bob", CustomerEmail: "bob@mail.com"},
	}}
	mailer := &recordingMailer{}

	h := NewNotifyLateLoansHandler(loans, mailer, config.JobConfig{
		LateLoanMessage: "Please return your book.",
	})

	err := h.ProcessTask(context.Background(), newTask(t))
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "Please return your book.", mailer.message)
	assert.Equal(t, []string{"alice@mail.com", "bob@mail.com"}, mailer.recipients)
}

func TestNotifyLateLoans_EmptySweepSendsNothing(t *testing.T) {
	loans := &stubLoanService{}
	mailer := &recordingMailer{}

	h := NewNotifyLateLoansHandler(loans, mailer, config.JobConfig{})

	err := h.ProcessTask(context.Background(), newTask(t))
	require.NoError(t, err)

	assert.Zero(t, mailer.calls)
}

func TestNotifyLateLoans_LoanTermShiftsCutoff(t *testing.T) {
	loans := &stubLoanService{}
	mailer := &recordingMailer{}

	h := NewNotifyLateLoansHandler(loans, mailer, config.JobConfig{LoanTermDays: 4})

	before := time.Now()
	err := h.ProcessTask(context.Background(), newTask(t))
	require.NoError(t, err)

	expected := before.AddDate(0, 0, -4)
	assert.WithinDuration(t, expected, loans.cutoff, 5*time.Second)
}

func TestNotifyLateLoans_LookupErrorPropagates(t *testing.T) {
	lookupErr := errors.New("connection reset")
	loans := &stubLoanService{err: lookupErr}
	mailer := &recordingMailer{}

	h := NewNotifyLateLoansHandler(loans, mailer, config.JobConfig{})

	err := h.ProcessTask(context.Background(), newTask(t))
	require.ErrorIs(t, err, lookupErr)
	assert.Zero(t, mailer.calls)
}
