package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest is the payload for POST /api/books.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required")),
	)
}

func (r CreateBookRequest) ToBook() *Book {
	return &Book{
		Title:  r.Title,
		Author: r.Author,
		ISBN:   r.ISBN,
	}
}

// UpdateBookRequest is the payload for PUT /api/books/:id. Only title and
// author are mutable; the isbn never changes after creation.
type UpdateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
	)
}

type BookResponse struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

func (b *Book) ToResponse() *BookResponse {
	return &BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}
}
