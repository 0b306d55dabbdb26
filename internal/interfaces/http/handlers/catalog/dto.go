package catalog

import (
	"accesshub/internal/application/access/usecases"
)

type CreateCatalogItemRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required,max=100"`
	URLPath     string `json:"url_path,omitempty" binding:"max=255"`
}

func (r *CreateCatalogItemRequest) ToCommand() usecases.CreateCatalogItemCommand {
	return usecases.CreateCatalogItemCommand{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		URLPath:     r.URLPath,
	}
}
