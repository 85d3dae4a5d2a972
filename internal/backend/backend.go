// Package backend selects and constructs the storage backend from
// configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/galaxybooks/bookstore-backend/internal/storage"
	"github.com/galaxybooks/bookstore-backend/internal/storage/memory"
	"github.com/galaxybooks/bookstore-backend/internal/storage/mongodb"
	"github.com/galaxybooks/bookstore-backend/pkg/config"
)

// Type defines the type of storage backend
type Type string

const (
	// TypeMemory uses in-memory storage (for testing/development)
	TypeMemory Type = "memory"
	// TypeMongoDB uses MongoDB storage (for production)
	TypeMongoDB Type = "mongodb"
)

// New creates a storage backend based on configuration
func New(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch Type(cfg.Storage.Type) {
	case TypeMemory:
		return memory.NewStore(), nil
	case TypeMongoDB:
		return mongodb.NewStore(ctx, &cfg.Storage.MongoDB)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
