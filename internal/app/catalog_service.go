package app

import (
	"context"
	"sort"

	"bookstore/internal/domain"
)

// CatalogService exposes the static catalog and its one mutable bit of state,
// the selected cover color per book.
type CatalogService struct {
	repo domain.CatalogRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns the catalog sorted by author, then title.
func (s *CatalogService) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(books, func(i, j int) bool {
		if books[i].Author != books[j].Author {
			return books[i].Author < books[j].Author
		}
		return books[i].Title < books[j].Title
	})
	return books, nil
}

// Get returns the book with the given ID, or nil if it is not in the catalog.
func (s *CatalogService) Get(ctx context.Context, bookID int64) (*domain.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == bookID {
			return &books[i], nil
		}
	}
	return nil, nil
}

// SetColor replaces the stored cover color for the matching book. Unknown
// book IDs and unknown colors are swallowed as no-ops; the selection is
// purely cosmetic.
func (s *CatalogService) SetColor(ctx context.Context, bookID int64, color domain.Color) error {
	if !color.Valid() {
		return nil
	}
	_, err := s.repo.UpdateBookColor(ctx, bookID, color)
	return err
}
