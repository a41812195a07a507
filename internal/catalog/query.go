package catalog

import (
	"strings"

	"bookcatalog/pkg/domain"
)

// Filter returns the books whose title, author, or genre contains term,
// case-insensitively. An empty term matches everything. Pure function of
// the snapshot; never cached.
func Filter(books []domain.Book, term string) []domain.Book {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return books
	}
	out := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), term) ||
			strings.Contains(strings.ToLower(b.Author), term) ||
			strings.Contains(strings.ToLower(b.Genre), term) {
			out = append(out, b)
		}
	}
	return out
}

// Paginate returns the page-th slice of size entries. Out-of-range pages
// yield an empty slice.
func Paginate(books []domain.Book, page, size int) []domain.Book {
	if page < 0 || size <= 0 {
		return nil
	}
	start := page * size
	if start >= len(books) {
		return nil
	}
	end := start + size
	if end > len(books) {
		end = len(books)
	}
	return books[start:end]
}
