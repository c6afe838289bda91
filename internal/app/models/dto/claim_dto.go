package dto

import (
	"time"

	"github.com/selim/lostfound/internal/app/models"
)

// SubmitClaimRequest carries the claim submission form.
type SubmitClaimRequest struct {
	StudentName string `json:"studentName" form:"student_name" binding:"required"`
	StudentID   string `json:"studentId" form:"student_id" binding:"required"`
	Phone       string `json:"phone" form:"phone" binding:"required"`
	Reason      string `json:"reason" form:"reason" binding:"required"`
}

// ReviewClaimRequest carries the staff review decision.
type ReviewClaimRequest struct {
	Decision string `json:"decision" form:"decision" binding:"required"`
}

// ClaimResponse is the public view of a claim.
type ClaimResponse struct {
	ID          int64     `json:"id" example:"1"`
	StudentName string    `json:"studentName" example:"Jane Doe"`
	StudentID   string    `json:"studentId" example:"20231234"`
	ItemID      int64     `json:"itemId" example:"1"`
	Phone       string    `json:"phone" example:"5550001122"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status" example:"pending"`
	ClaimTime   time.Time `json:"claimTime"`
}

// NewClaimResponse converts a Claim model to its response DTO.
func NewClaimResponse(claim *models.Claim) ClaimResponse {
	return ClaimResponse{
		ID:          claim.ID,
		StudentName: claim.StudentName,
		StudentID:   claim.StudentID,
		ItemID:      claim.ItemID,
		Phone:       claim.Phone,
		Reason:      claim.Reason,
		Status:      string(claim.Status),
		ClaimTime:   claim.ClaimTime,
	}
}

// ClaimSummaryResponse is one row of the administrator review queue.
type ClaimSummaryResponse struct {
	ID          int64  `json:"id" example:"1"`
	ItemID      int64  `json:"itemId" example:"1"`
	ItemName    string `json:"itemName" example:"black wallet"`
	StudentID   string `json:"studentId" example:"20231234"`
	StudentName string `json:"studentName" example:"Jane Doe"`
	Status      string `json:"status" example:"pending"`
}

// ClaimReviewResponse is the review view: the claim and the item it targets.
type ClaimReviewResponse struct {
	Claim ClaimResponse `json:"claim"`
	Item  ItemResponse  `json:"item"`
}
