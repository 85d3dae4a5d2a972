package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/galaxybooks/bookstore-backend/internal/domain"
	"github.com/galaxybooks/bookstore-backend/internal/storage"
)

// BookStore implements MongoDB book storage
type BookStore struct {
	collection *mongo.Collection
}

func (s *BookStore) Create(ctx context.Context, book *domain.Book) error {
	_, err := s.collection.InsertOne(ctx, book)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("%w: %v", storage.ErrDatabase, err)
	}
	return nil
}

func (s *BookStore) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	var book domain.Book
	err := s.collection.FindOne(ctx, bson.M{"_id": isbn}).Decode(&book)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", storage.ErrDatabase, err)
	}
	return &book, nil
}

func (s *BookStore) Update(ctx context.Context, book *domain.Book) error {
	result, err := s.collection.ReplaceOne(ctx, bson.M{"_id": book.ISBN}, book)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrDatabase, err)
	}
	if result.MatchedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
