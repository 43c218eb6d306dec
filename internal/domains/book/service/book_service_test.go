package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book"
	"library-api/internal/domains/book/model"
	"library-api/internal/shared"
)

// fakeBookRepo is an in-memory stand-in for the postgres repository. It
// mirrors the storage contract, including the isbn unique constraint and
// the query-by-example matching.
type fakeBookRepo struct {
	books  []*model.Book
	nextID int64
	writes int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{nextID: 1}
}

func (f *fakeBookRepo) Create(_ context.Context, b *model.Book) (*model.Book, error) {
	for _, stored := range f.books {
		if stored.ISBN == b.ISBN {
			return nil, book.ErrDuplicateISBN
		}
	}

	created := *b
	created.ID = f.nextID
	f.nextID++
	f.books = append(f.books, &created)
	f.writes++

	out := created
	return &out, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id int64) (*model.Book, error) {
	for _, stored := range f.books {
		if stored.ID == id {
			out := *stored
			return &out, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	for _, stored := range f.books {
		if stored.ISBN == isbn {
			out := *stored
			return &out, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	for _, stored := range f.books {
		if stored.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookRepo) Update(_ context.Context, b *model.Book) (*model.Book, error) {
	for _, stored := range f.books {
		if stored.ID == b.ID {
			stored.Title = b.Title
			stored.Author = b.Author
			f.writes++
			out := *stored
			return &out, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) Delete(_ context.Context, id int64) error {
	for i, stored := range f.books {
		if stored.ID == id {
			f.books = append(f.books[:i], f.books[i+1:]...)
			f.writes++
			return nil
		}
	}
	return book.ErrBookNotFound
}

func (f *fakeBookRepo) Find(_ context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int64, error) {
	var matched []model.Book
	for _, stored := range f.books {
		if containsFold(stored.Title, filter.Title) &&
			containsFold(stored.Author, filter.Author) &&
			containsFold(stored.ISBN, filter.ISBN) {
			matched = append(matched, *stored)
		}
	}

	total := int64(len(matched))

	start := page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + page.Limit()
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

// containsFold reports whether s contains sub case-insensitively; an empty
// sub always matches.
func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func TestBookService_Create_AssignsIdentity(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	created, err := svc.Create(context.Background(), &model.Book{Title: "Title", Author: "Author", ISBN: "123"})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "123", created.ISBN)
}

func TestBookService_Create_DuplicateISBNRejected(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	_, err := svc.Create(context.Background(), &model.Book{Title: "Title", Author: "Author", ISBN: "123"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &model.Book{Title: "Other", Author: "Other", ISBN: "123"})
	require.ErrorIs(t, err, book.ErrDuplicateISBN)

	// The rejected create must not alter the stored count.
	assert.Len(t, repo.books, 1)
}

func TestBookService_Update_MissingIdentity(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	_, err := svc.Update(context.Background(), &model.Book{Title: "Title", Author: "Author"})
	require.ErrorIs(t, err, book.ErrMissingBookID)
	assert.EqualError(t, err, "Book id cant be null.")

	// No storage write may happen on the rejected call.
	assert.Zero(t, repo.writes)
}

func TestBookService_Delete_MissingIdentity(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	err := svc.Delete(context.Background(), &model.Book{Title: "Title"})
	require.ErrorIs(t, err, book.ErrMissingBookID)
	assert.EqualError(t, err, "Book id cant be null.")
	assert.Zero(t, repo.writes)
}

func TestBookService_Update_OverwritesTitleAndAuthor(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	created, err := svc.Create(context.Background(), &model.Book{Title: "Old", Author: "Old", ISBN: "123"})
	require.NoError(t, err)

	created.Title = "New Title"
	created.Author = "New Author"

	updated, err := svc.Update(context.Background(), created)
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "New Author", updated.Author)
	assert.Equal(t, "123", updated.ISBN)
}

func TestBookService_GetByID_NotFound(t *testing.T) {
	svc := NewBookService(newFakeBookRepo())

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBookService_Find_WildcardReturnsEverything(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	for _, b := range []*model.Book{
		{Title: "Clean Code", Author: "Martin", ISBN: "111"},
		{Title: "The Go Programming Language", Author: "Donovan", ISBN: "222"},
		{Title: "Refactoring", Author: "Fowler", ISBN: "333"},
	} {
		_, err := svc.Create(context.Background(), b)
		require.NoError(t, err)
	}

	books, total, err := svc.Find(context.Background(), model.BookFilter{}, shared.PageRequest{Page: 0, Size: 2})
	require.NoError(t, err)

	assert.Len(t, books, 2)
	assert.Equal(t, int64(3), total)
}

func TestBookService_Find_SubstringCaseInsensitive(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo)

	_, err := svc.Create(context.Background(), &model.Book{Title: "Clean Code", Author: "Martin", ISBN: "111"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &model.Book{Title: "Refactoring", Author: "Fowler", ISBN: "222"})
	require.NoError(t, err)

	books, total, err := svc.Find(context.Background(), model.BookFilter{Title: "clean"}, shared.PageRequest{Size: 20})
	require.NoError(t, err)

	require.Len(t, books, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Clean Code", books[0].Title)
}
