package entitlement

import (
	"fmt"
	"time"
)

// Entitlement represents a confirmed grant of a user's access to a catalog item.
// Grants are append-only from the workflow's perspective; revocation is an
// administrative operation outside the request lifecycle.
type Entitlement struct {
	id            uint
	userID        uint
	catalogItemID uint
	grantedBy     uint
	grantedAt     time.Time
	metadata      map[string]any
}

func NewEntitlement(userID, catalogItemID, grantedBy uint) (*Entitlement, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if catalogItemID == 0 {
		return nil, fmt.Errorf("catalog item ID is required")
	}
	if grantedBy == 0 {
		return nil, fmt.Errorf("granting user ID is required")
	}

	return &Entitlement{
		userID:        userID,
		catalogItemID: catalogItemID,
		grantedBy:     grantedBy,
		grantedAt:     time.Now().UTC(),
		metadata:      make(map[string]any),
	}, nil
}

// ReconstructEntitlement reconstructs an entitlement from persistence
func ReconstructEntitlement(
	id uint,
	userID uint,
	catalogItemID uint,
	grantedBy uint,
	grantedAt time.Time,
	metadata map[string]any,
) (*Entitlement, error) {
	if id == 0 {
		return nil, fmt.Errorf("entitlement ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if catalogItemID == 0 {
		return nil, fmt.Errorf("catalog item ID is required")
	}

	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Entitlement{
		id:            id,
		userID:        userID,
		catalogItemID: catalogItemID,
		grantedBy:     grantedBy,
		grantedAt:     grantedAt,
		metadata:      metadata,
	}, nil
}

func (e *Entitlement) ID() uint {
	return e.id
}

func (e *Entitlement) UserID() uint {
	return e.userID
}

func (e *Entitlement) CatalogItemID() uint {
	return e.catalogItemID
}

func (e *Entitlement) GrantedBy() uint {
	return e.grantedBy
}

func (e *Entitlement) GrantedAt() time.Time {
	return e.grantedAt
}

func (e *Entitlement) Metadata() map[string]any {
	return e.metadata
}

// SetID sets the entitlement ID (only for persistence layer use)
func (e *Entitlement) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entitlement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entitlement ID cannot be zero")
	}
	e.id = id
	return nil
}

// SetMetadata sets a metadata value
func (e *Entitlement) SetMetadata(key string, value any) {
	if e.metadata == nil {
		e.metadata = make(map[string]any)
	}
	e.metadata[key] = value
}

// GetMetadata gets a metadata value
func (e *Entitlement) GetMetadata(key string) (any, bool) {
	if e.metadata == nil {
		return nil, false
	}
	value, exists := e.metadata[key]
	return value, exists
}
