package access

import (
	"accesshub/internal/application/access/usecases"
	"accesshub/internal/domain/accessrequest"
)

type SubmitRequestRequest struct {
	CatalogItemID uint   `json:"catalog_item_id" binding:"required"`
	Justification string `json:"justification" binding:"required,max=2000"`
}

func (r *SubmitRequestRequest) ToCommand(userID uint) usecases.SubmitRequestCommand {
	return usecases.SubmitRequestCommand{
		UserID:        userID,
		CatalogItemID: r.CatalogItemID,
		Justification: r.Justification,
	}
}

type ReviewRequestRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
	Comments string `json:"comments,omitempty" binding:"max=2000"`
}

func (r *ReviewRequestRequest) ToCommand(requestID, reviewerID uint) usecases.ReviewRequestCommand {
	return usecases.ReviewRequestCommand{
		RequestID:  requestID,
		ReviewerID: reviewerID,
		Decision:   accessrequest.Decision(r.Decision),
		Comments:   r.Comments,
	}
}
