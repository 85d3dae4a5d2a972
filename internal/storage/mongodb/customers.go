package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/galaxybooks/bookstore-backend/internal/domain"
	"github.com/galaxybooks/bookstore-backend/internal/storage"
)

// CustomerStore implements MongoDB customer storage
type CustomerStore struct {
	collection *mongo.Collection
	counter    *mongo.Collection // For auto-increment IDs
}

func (s *CustomerStore) getNextID(ctx context.Context) (int, error) {
	// Use a counter document for auto-increment
	result := s.counter.FindOneAndUpdate(
		ctx,
		bson.M{"_id": "customer_id"},
		bson.M{"$inc": bson.M{"value": 1}},
	)

	var doc struct {
		Value int `bson:"value"`
	}

	if err := result.Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			// Initialize counter
			_, err := s.counter.InsertOne(ctx, bson.M{"_id": "customer_id", "value": int64(1)})
			if err != nil {
				return 0, err
			}
			return 1, nil
		}
		return 0, err
	}
	return doc.Value + 1, nil
}

func (s *CustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	// Cheap existence check first so a duplicate userId does not burn a
	// counter value; the unique index still catches races.
	count, err := s.collection.CountDocuments(ctx, bson.M{"user_id": customer.UserID})
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrDatabase, err)
	}
	if count > 0 {
		return storage.ErrAlreadyExists
	}

	id, err := s.getNextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get next ID: %w", err)
	}
	customer.ID = id

	_, err = s.collection.InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("%w: %v", storage.ErrDatabase, err)
	}
	return nil
}

func (s *CustomerStore) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", storage.ErrDatabase, err)
	}
	return &customer, nil
}

func (s *CustomerStore) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	var customer domain.Customer
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", storage.ErrDatabase, err)
	}
	return &customer, nil
}
