package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/internal/domain"
	"github.com/galaxybooks/bookstore-backend/internal/storage"
)

// BookService manages the book catalog
type BookService struct {
	store  storage.Store
	logger *zap.Logger
}

// NewBookService creates a new BookService
func NewBookService(store storage.Store, logger *zap.Logger) *BookService {
	return &BookService{
		store:  store,
		logger: logger.Named("book-service"),
	}
}

// Create validates and stores a new book
func (s *BookService) Create(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	if err := s.store.Books().Create(ctx, book); err != nil {
		return fmt.Errorf("failed to create book %s: %w", book.ISBN, err)
	}

	s.logger.Info("Created book", zap.String("isbn", book.ISBN))
	return nil
}

// GetByISBN retrieves a book
func (s *BookService) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	book, err := s.store.Books().GetByISBN(ctx, isbn)
	if err != nil {
		return nil, fmt.Errorf("failed to get book %s: %w", isbn, err)
	}
	return book, nil
}

// Update validates and replaces an existing book. The ISBN on the book
// must match the one being updated; handlers enforce the path/body match
// before calling.
func (s *BookService) Update(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}

	if err := s.store.Books().Update(ctx, book); err != nil {
		return fmt.Errorf("failed to update book %s: %w", book.ISBN, err)
	}

	s.logger.Info("Updated book", zap.String("isbn", book.ISBN))
	return nil
}
