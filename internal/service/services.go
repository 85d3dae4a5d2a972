// Package service implements the business operations behind the book and
// customer backends. Handlers translate service errors into HTTP
// responses; services own validation and uniqueness rules.
package service

import (
	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/internal/storage"
)

// Services aggregates all business services
type Services struct {
	Books     *BookService
	Customers *CustomerService
}

// NewServices creates all services backed by the given store
func NewServices(store storage.Store, logger *zap.Logger) *Services {
	return &Services{
		Books:     NewBookService(store, logger),
		Customers: NewCustomerService(store, logger),
	}
}
