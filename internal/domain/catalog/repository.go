package catalog

import "context"

// Repository defines the interface for catalog persistence operations
type Repository interface {
	// Create creates a new catalog item
	Create(ctx context.Context, item *Item) error

	// GetByID retrieves a catalog item by ID
	GetByID(ctx context.Context, id uint) (*Item, error)

	// List retrieves all catalog items in insertion order
	List(ctx context.Context) ([]*Item, error)

	// ListActive retrieves all active catalog items in insertion order
	ListActive(ctx context.Context) ([]*Item, error)

	// ExistsByName checks if a catalog item with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)
}
