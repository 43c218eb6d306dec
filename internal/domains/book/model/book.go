package model

// Book is a catalog record. ISBN is the business key and is unique across
// all books; ID is assigned by the store on creation.
type Book struct {
	ID     int64  `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	ISBN   string `json:"isbn" db:"isbn"`
}

// BookFilter is a query-by-example filter: empty fields impose no constraint,
// set fields match by case-insensitive substring.
type BookFilter struct {
	Title  string
	Author string
	ISBN   string
}
