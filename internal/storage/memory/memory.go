// Package memory implements storage on in-process maps. It backs local
// development and tests; production deployments use the mongodb backend.
package memory

import (
	"context"
	"sync"

	"github.com/galaxybooks/bookstore-backend/internal/domain"
	"github.com/galaxybooks/bookstore-backend/internal/storage"
)

// Store implements an in-memory storage
type Store struct {
	books     *BookStore
	customers *CustomerStore
}

// NewStore creates a new in-memory store
func NewStore() *Store {
	return &Store{
		books:     &BookStore{data: make(map[string]*domain.Book)},
		customers: &CustomerStore{data: make(map[int]*domain.Customer)},
	}
}

func (s *Store) Books() storage.BookStore         { return s.books }
func (s *Store) Customers() storage.CustomerStore { return s.customers }
func (s *Store) Ping(ctx context.Context) error   { return nil }
func (s *Store) Close() error                     { return nil }

// BookStore implements in-memory book storage keyed by ISBN
type BookStore struct {
	mu   sync.RWMutex
	data map[string]*domain.Book
}

func (s *BookStore) Create(ctx context.Context, book *domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[book.ISBN]; exists {
		return storage.ErrAlreadyExists
	}

	cp := *book
	s.data[book.ISBN] = &cp
	return nil
}

func (s *BookStore) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, exists := s.data[isbn]
	if !exists {
		return nil, storage.ErrNotFound
	}

	cp := *book
	return &cp, nil
}

func (s *BookStore) Update(ctx context.Context, book *domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[book.ISBN]; !exists {
		return storage.ErrNotFound
	}

	cp := *book
	s.data[book.ISBN] = &cp
	return nil
}

// CustomerStore implements in-memory customer storage with an
// auto-incrementing numeric ID and a unique userId index
type CustomerStore struct {
	mu     sync.RWMutex
	data   map[int]*domain.Customer
	byUser map[string]int
	nextID int
}

func (s *CustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byUser == nil {
		s.byUser = make(map[string]int)
	}

	if _, exists := s.byUser[customer.UserID]; exists {
		return storage.ErrAlreadyExists
	}

	s.nextID++
	customer.ID = s.nextID

	cp := *customer
	s.data[customer.ID] = &cp
	s.byUser[customer.UserID] = customer.ID
	return nil
}

func (s *CustomerStore) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, exists := s.data[id]
	if !exists {
		return nil, storage.ErrNotFound
	}

	cp := *customer
	return &cp, nil
}

func (s *CustomerStore) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.byUser[userID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	cp := *s.data[id]
	return &cp, nil
}
