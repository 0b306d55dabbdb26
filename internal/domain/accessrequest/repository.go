package accessrequest

import "context"

// Repository defines the interface for access request ledger persistence.
type Repository interface {
	// Save appends a new request to the ledger
	Save(ctx context.Context, r *AccessRequest) error

	// Update persists a reviewed request using optimistic concurrency on
	// the version column: the update only applies when the stored version
	// matches the version the aggregate was loaded with. A lost race
	// surfaces as ErrAlreadyReviewed.
	Update(ctx context.Context, r *AccessRequest) error

	// GetByID retrieves a request by ID
	GetByID(ctx context.Context, id uint) (*AccessRequest, error)

	// ExistsPending checks if a pending request exists for a user-item pair
	ExistsPending(ctx context.Context, userID, catalogItemID uint) (bool, error)

	// ListByStatus retrieves requests with the given status in ledger
	// insertion order
	ListByStatus(ctx context.Context, status Status) ([]*AccessRequest, error)

	// ListByUser retrieves all requests submitted by a user in ledger
	// insertion order
	ListByUser(ctx context.Context, userID uint) ([]*AccessRequest, error)
}
