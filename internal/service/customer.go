package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/internal/domain"
	"github.com/galaxybooks/bookstore-backend/internal/storage"
)

// CustomerService manages customer accounts
type CustomerService struct {
	store  storage.Store
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(store storage.Store, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		store:  store,
		logger: logger.Named("customer-service"),
	}
}

// Create validates and stores a new customer. On success the customer's
// ID carries the storage-assigned value.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	if err := s.store.Customers().Create(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer %s: %w", customer.UserID, err)
	}

	s.logger.Info("Created customer",
		zap.Int("id", customer.ID),
		zap.String("user_id", customer.UserID),
	)
	return nil
}

// GetByID retrieves a customer by numeric ID
func (s *CustomerService) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.store.Customers().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	return customer, nil
}

// GetByUserID retrieves a customer by email userId
func (s *CustomerService) GetByUserID(ctx context.Context, userID string) (*domain.Customer, error) {
	customer, err := s.store.Customers().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", userID, err)
	}
	return customer, nil
}
