package entitlement

import "context"

// Repository defines the interface for entitlement persistence operations
type Repository interface {
	// Create creates a new entitlement. Creating a grant that already
	// exists for the same (user, catalog item) pair must not produce a
	// duplicate row; implementations treat it as a no-op.
	Create(ctx context.Context, e *Entitlement) error

	// Exists checks if an entitlement exists for a user-item pair
	Exists(ctx context.Context, userID, catalogItemID uint) (bool, error)

	// GetByUser retrieves all entitlements held by a user
	GetByUser(ctx context.Context, userID uint) ([]*Entitlement, error)

	// ListItemIDsByUser retrieves the catalog item IDs a user holds
	ListItemIDsByUser(ctx context.Context, userID uint) ([]uint, error)
}
