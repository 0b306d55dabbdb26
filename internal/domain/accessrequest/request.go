package accessrequest

import (
	"fmt"
	"strings"
	"time"
)

// AccessRequest is a user-initiated, admin-reviewed request for access to
// a catalog item. The ledger exclusively owns these records; review fields
// and status are coupled: a request is pending if and only if it carries
// no reviewer and no review time.
type AccessRequest struct {
	id               uint
	userID           uint
	catalogItemID    uint
	justification    string
	status           Status
	requestedAt      time.Time
	reviewedAt       *time.Time
	reviewerID       *uint
	reviewerComments string
	version          int
}

func NewAccessRequest(userID, catalogItemID uint, justification string) (*AccessRequest, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if catalogItemID == 0 {
		return nil, fmt.Errorf("catalog item ID is required")
	}

	justification = strings.TrimSpace(justification)
	if len(justification) == 0 {
		return nil, ErrMissingJustification
	}
	if len(justification) > 2000 {
		return nil, fmt.Errorf("justification exceeds maximum length of 2000 characters")
	}

	return &AccessRequest{
		userID:        userID,
		catalogItemID: catalogItemID,
		justification: justification,
		status:        StatusPending,
		requestedAt:   time.Now().UTC(),
		version:       1,
	}, nil
}

// ReconstructAccessRequest reconstructs a request from persistence.
func ReconstructAccessRequest(
	id uint,
	userID uint,
	catalogItemID uint,
	justification string,
	status Status,
	requestedAt time.Time,
	reviewedAt *time.Time,
	reviewerID *uint,
	reviewerComments string,
	version int,
) (*AccessRequest, error) {
	if id == 0 {
		return nil, fmt.Errorf("request ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	r := &AccessRequest{
		id:               id,
		userID:           userID,
		catalogItemID:    catalogItemID,
		justification:    justification,
		status:           status,
		requestedAt:      requestedAt,
		reviewedAt:       reviewedAt,
		reviewerID:       reviewerID,
		reviewerComments: reviewerComments,
		version:          version,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *AccessRequest) ID() uint {
	return r.id
}

func (r *AccessRequest) UserID() uint {
	return r.userID
}

func (r *AccessRequest) CatalogItemID() uint {
	return r.catalogItemID
}

func (r *AccessRequest) Justification() string {
	return r.justification
}

func (r *AccessRequest) Status() Status {
	return r.status
}

func (r *AccessRequest) RequestedAt() time.Time {
	return r.requestedAt
}

func (r *AccessRequest) ReviewedAt() *time.Time {
	return r.reviewedAt
}

func (r *AccessRequest) ReviewerID() *uint {
	return r.reviewerID
}

func (r *AccessRequest) ReviewerComments() string {
	return r.reviewerComments
}

// Version returns the aggregate version for optimistic locking
func (r *AccessRequest) Version() int {
	return r.version
}

// SetID sets the request ID (only for persistence layer use)
func (r *AccessRequest) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("request ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("request ID cannot be zero")
	}
	r.id = id
	return nil
}

// Approve transitions a pending request to approved. The transition is
// terminal; approving a non-pending request fails with ErrAlreadyReviewed
// and leaves the record unchanged.
func (r *AccessRequest) Approve(reviewerID uint, comments string) error {
	return r.review(StatusApproved, reviewerID, comments)
}

// Reject transitions a pending request to rejected. The transition is
// terminal; rejecting a non-pending request fails with ErrAlreadyReviewed
// and leaves the record unchanged.
func (r *AccessRequest) Reject(reviewerID uint, comments string) error {
	return r.review(StatusRejected, reviewerID, comments)
}

func (r *AccessRequest) review(outcome Status, reviewerID uint, comments string) error {
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if !r.status.IsPending() {
		return ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	r.status = outcome
	r.reviewedAt = &now
	r.reviewerID = &reviewerID
	r.reviewerComments = comments
	r.version++

	return nil
}

// Validate enforces the status/review-field coupling: pending requests
// carry no review fields, decided requests carry both.
func (r *AccessRequest) Validate() error {
	if !r.status.IsValid() {
		return fmt.Errorf("invalid status: %s", r.status)
	}
	if r.status.IsPending() {
		if r.reviewedAt != nil || r.reviewerID != nil {
			return fmt.Errorf("pending request must not carry review fields")
		}
		return nil
	}
	if r.reviewedAt == nil || r.reviewerID == nil {
		return fmt.Errorf("decided request must carry reviewer and review time")
	}
	return nil
}
