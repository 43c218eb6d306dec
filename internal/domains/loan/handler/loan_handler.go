package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book"
	bookservice "library-api/internal/domains/book/service"
	"library-api/internal/domains/loan"
	"library-api/internal/domains/loan/model"
	"library-api/internal/domains/loan/service"
	"library-api/internal/shared"
	"library-api/internal/shared/response"
)

type LoanHandler struct {
	loans service.ServiceInterface
	books bookservice.ServiceInterface
}

func NewLoanHandler(loans service.ServiceInterface, books bookservice.ServiceInterface) *LoanHandler {
	return &LoanHandler{
		loans: loans,
		books: books,
	}
}

// Create handles POST /api/loans
func (h *LoanHandler) Create(c *gin.Context) {
	var req model.CreateLoanRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid request payload", err)
		return
	}

	created, err := h.loans.Create(c.Request.Context(), service.CreateLoanInput{
		Customer:      req.Customer,
		CustomerEmail: req.CustomerEmail,
		ISBN:          req.ISBN,
	})
	if err != nil {
		response.ErrorResponse(c, loan.ToHTTPStatus(err), loan.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// Return handles PATCH /api/loans/:id
func (h *LoanHandler) Return(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req model.ReturnedLoanRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.loans.Return(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, loan.ToHTTPStatus(err), loan.ToErrorCode(err), err.Error())
		return
	}

	response.NoContent(c)
}

// Find handles GET /api/loans?customer=&isbn=&page=0&size=20
func (h *LoanHandler) Find(c *gin.Context) {
	filter := model.LoanFilter{
		Customer: c.Query("customer"),
		ISBN:     c.Query("isbn"),
	}

	page := pageFromQuery(c)

	loans, total, err := h.loans.Find(c.Request.Context(), filter, page)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, shared.NewPage(toResponses(loans), page, total))
}

// LoansByBook handles GET /api/books/:id/loans
func (h *LoanHandler) LoansByBook(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	b, err := h.books.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
		return
	}

	page := pageFromQuery(c)

	loans, total, err := h.loans.FindByBook(c.Request.Context(), b.ID, page)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, shared.NewPage(toResponses(loans), page, total))
}

func toResponses(loans []model.Loan) []*model.LoanResponse {
	content := make([]*model.LoanResponse, 0, len(loans))
	for i := range loans {
		content = append(content, loans[i].ToResponse())
	}
	return content
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func pageFromQuery(c *gin.Context) shared.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	return shared.PageRequest{Page: page, Size: size}.Normalize()
}
