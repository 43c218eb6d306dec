package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	bookmodel "library-api/internal/domains/book/model"
)

// CreateLoanRequest is the payload for POST /api/loans. The book is
// referenced by its business key, not its internal id.
type CreateLoanRequest struct {
	Customer      string `json:"customer"`
	CustomerEmail string `json:"customer_email"`
	ISBN          string `json:"isbn"`
}

func (r CreateLoanRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Customer, validation.Required.Error("customer is required")),
		validation.Field(&r.CustomerEmail,
			validation.Required.Error("customer email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required")),
	)
}

// ReturnedLoanRequest is the payload for PATCH /api/loans/:id.
type ReturnedLoanRequest struct {
	Returned bool `json:"returned"`
}

type LoanResponse struct {
	ID            int64                   `json:"id"`
	Customer      string                  `json:"customer"`
	CustomerEmail string                  `json:"customer_email"`
	Book          *bookmodel.BookResponse `json:"book,omitempty"`
	LoanDate      string                  `json:"loan_date"`
	Returned      bool                    `json:"returned"`
}

func (l *Loan) ToResponse() *LoanResponse {
	resp := &LoanResponse{
		ID:            l.ID,
		Customer:      l.Customer,
		CustomerEmail: l.CustomerEmail,
		LoanDate:      l.LoanDate.Format("2006-01-02"),
		Returned:      l.IsReturned(),
	}
	if l.Book != nil {
		resp.Book = l.Book.ToResponse()
	}
	return resp
}
