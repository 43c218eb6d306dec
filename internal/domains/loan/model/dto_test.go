package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmodel "library-api/internal/domains/book/model"
)

func TestCreateLoanRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateLoanRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateLoanRequest{Customer: "Alice", CustomerEmail: "alice@mail.com", ISBN: "123"},
		},
		{
			name:    "missing customer",
			req:     CreateLoanRequest{CustomerEmail: "alice@mail.com", ISBN: "123"},
			wantErr: "customer is required",
		},
		{
			name:    "missing email",
			req:     CreateLoanRequest{Customer: "Alice", ISBN: "123"},
			wantErr: "customer email is required",
		},
		{
			name:    "malformed email",
			req:     CreateLoanRequest{Customer: "Alice", CustomerEmail: "not-an-email", ISBN: "123"},
			wantErr: "invalid email format",
		},
		{
			name:    "missing isbn",
			req:     CreateLoanRequest{Customer: "Alice", CustomerEmail: "alice@mail.com"},
			wantErr: "isbn is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoan_ToResponse(t *testing.T) {
	returned := false
	l := &Loan{
		ID:            7,
		Customer:      "Alice",
		CustomerEmail: "alice@mail.com",
		BookID:        1,
		Book:          &bookmodel.Book{ID: 1, Title: "Clean Code", Author: "Martin", ISBN: "123"},
		LoanDate:      time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Returned:      &returned,
	}

	resp := l.ToResponse()

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2026-08-30", resp.LoanDate)
	assert.False(t, resp.Returned)
	require.NotNil(t, resp.Book)
	assert.Equal(t, "123", resp.Book.ISBN)
}

func TestLoan_ToResponse_NullReturnedReadsAsFalse(t *testing.T) {
	l := &Loan{ID: 1, Customer: "Alice", LoanDate: time.Now(), Returned: nil}

	resp := l.ToResponse()

	assert.False(t, resp.Returned)
	assert.Nil(t, resp.Book)
}

func TestLoan_IsReturned(t *testing.T) {
	yes, no := true, false

	assert.False(t, (&Loan{Returned: nil}).IsReturned())
	assert.False(t, (&Loan{Returned: &no}).IsReturned())
	assert.True(t, (&Loan{Returned: &yes}).IsReturned())
}
