package dto

// CatalogItemDTO is the portal-facing view of a requestable catalog item.
// RequestState tells the browsing user where they stand with the item:
// "available" or "pending". Items the user already holds never appear
// here, they show up in the entitlements listing instead.
type CatalogItemDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html,omitempty"`
	Category        string `json:"category"`
	URLPath         string `json:"url_path,omitempty"`
	IsActive        bool   `json:"is_active"`
	RequestState    string `json:"request_state,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// AccessRequestDTO is the enriched view of a ledger entry. Username,
// CatalogItemName and ReviewerName are resolved from their aggregates so
// review queues render without extra lookups.
type AccessRequestDTO struct {
	ID               uint    `json:"id"`
	UserID           uint    `json:"user_id"`
	Username         string  `json:"username,omitempty"`
	UserFullName     string  `json:"user_full_name,omitempty"`
	CatalogItemID    uint    `json:"catalog_item_id"`
	CatalogItemName  string  `json:"catalog_item_name,omitempty"`
	Justification    string  `json:"justification"`
	Status           string  `json:"status"`
	RequestedAt      string  `json:"requested_at"`
	ReviewedAt       *string `json:"reviewed_at,omitempty"`
	ReviewerID       *uint   `json:"reviewer_id,omitempty"`
	ReviewerName     string  `json:"reviewer_name,omitempty"`
	ReviewerComments string  `json:"reviewer_comments,omitempty"`
}

// EntitlementDTO is the enriched view of a granted entitlement.
type EntitlementDTO struct {
	ID              uint   `json:"id"`
	CatalogItemID   uint   `json:"catalog_item_id"`
	CatalogItemName string `json:"catalog_item_name,omitempty"`
	Category        string `json:"category,omitempty"`
	URLPath         string `json:"url_path,omitempty"`
	GrantedBy       uint   `json:"granted_by"`
	GrantedAt       string `json:"granted_at"`
}
