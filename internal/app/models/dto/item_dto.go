package dto

import "github.com/selim/lostfound/internal/app/models"

// UploadItemRequest carries the staff upload form. The image arrives as a
// separate multipart file part.
type UploadItemRequest struct {
	Name        string `json:"name" form:"item_name" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	PickupTime  string `json:"pickupTime" form:"pickup_time" binding:"required"`
	Location    string `json:"location" form:"location" binding:"required"`
}

// ItemResponse is the public view of a found item.
type ItemResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"black wallet"`
	Description string `json:"description"`
	PickupTime  string `json:"pickupTime" example:"2026-03-01 14:00"`
	Location    string `json:"location" example:"library 2F"`
	Status      string `json:"status" example:"pending"`
	ImageRef    string `json:"imageRef" example:"uploads/3f2a.jpg"`
}

// ItemListResponse is a page of items with pagination metadata.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// NewItemResponse converts a LostItem model to its response DTO.
func NewItemResponse(item *models.LostItem) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		PickupTime:  item.PickupTime,
		Location:    item.Location,
		Status:      string(item.Status),
		ImageRef:    item.ImageRef,
	}
}

// ItemDetailResponse is the administrator item-detail view: the item plus
// the first claim filed against it, when one exists.
type ItemDetailResponse struct {
	Item  ItemResponse   `json:"item"`
	Claim *ClaimResponse `json:"claim,omitempty"`
}
