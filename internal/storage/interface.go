package storage

import (
	"context"
	"errors"

	"github.com/galaxybooks/bookstore-backend/internal/domain"
)

// Common errors
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrDatabase      = errors.New("database error")
)

// BookStore defines the interface for book storage operations
type BookStore interface {
	// Create stores a new book; ErrAlreadyExists if the ISBN is taken
	Create(ctx context.Context, book *domain.Book) error

	// GetByISBN retrieves a book by ISBN
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)

	// Update replaces an existing book; ErrNotFound if the ISBN is unknown
	Update(ctx context.Context, book *domain.Book) error
}

// CustomerStore defines the interface for customer storage operations
type CustomerStore interface {
	// Create stores a new customer and assigns its numeric ID;
	// ErrAlreadyExists if the userId is taken
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID retrieves a customer by numeric ID
	GetByID(ctx context.Context, id int) (*domain.Customer, error)

	// GetByUserID retrieves a customer by email userId
	GetByUserID(ctx context.Context, userID string) (*domain.Customer, error)
}

// Store is the top-level storage interface implemented by each backend
type Store interface {
	Books() BookStore
	Customers() CustomerStore

	// Ping verifies the backend is reachable
	Ping(ctx context.Context) error

	// Close releases backend resources
	Close() error
}
