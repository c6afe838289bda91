package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/app/services"
	"github.com/selim/lostfound/internal/middleware"
	"github.com/selim/lostfound/internal/pkg/helpers"
)

// ItemController handles the public catalog and staff item management.
type ItemController struct {
	itemService  services.ItemService
	claimService services.ClaimService
	logger       zerolog.Logger
}

// NewItemController creates a new ItemController
func NewItemController(itemService services.ItemService, claimService services.ClaimService, logger zerolog.Logger) *ItemController {
	return &ItemController{
		itemService:  itemService,
		claimService: claimService,
		logger:       logger,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid id parameter").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// ListItems returns the landing-page catalog, paged and newest pickup first
// @Summary Browse the found-item catalog
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.ItemListResponse}
// @Router / [get]
func (c *ItemController) ListItems(ctx *gin.Context) {
	page := helpers.ParsePage(ctx)

	result, err := c.itemService.SearchItems(ctx.Request.Context(), "", page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// SearchItems searches the catalog by keyword
// @Summary Search found items by name
// @Produce json
// @Param keyword query string false "Substring matched against item names"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.ItemListResponse}
// @Router /student_search_items [get]
func (c *ItemController) SearchItems(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	page := helpers.ParsePage(ctx)

	result, err := c.itemService.SearchItems(ctx.Request.Context(), keyword, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetItem returns one catalog item
// @Summary Get a found item by id
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse}
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /items/{id} [get]
func (c *ItemController) GetItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	item, err := c.itemService.GetItem(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// UploadItem handles the staff upload form
// @Summary Upload a newly found item
// @Accept multipart/form-data
// @Produce json
// @Param item_name formData string true "Item name"
// @Param description formData string true "Description"
// @Param pickup_time formData string true "When the item was picked up"
// @Param location formData string true "Where the item waits for pickup"
// @Param image formData file true "Item photo"
// @Success 201 {object} dto.APIResponse{data=dto.ItemResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing fields or image"
// @Failure 502 {object} dto.ErrorResponse "Image storage failed"
// @Router /administrator_upload_items [post]
func (c *ItemController) UploadItem(ctx *gin.Context) {
	var req dto.UploadItemRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "All item fields are required").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	image, err := ctx.FormFile("image")
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "An item image is required").WithField("image")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	item, err := c.itemService.UploadItem(ctx.Request.Context(), &req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(item))
}

// ViewItems returns the staff item listing, same paging as the public catalog
// @Summary List items for staff management
// @Produce json
// @Param keyword query string false "Substring matched against item names"
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.APIResponse{data=dto.ItemListResponse}
// @Router /administrator_view_items [get]
func (c *ItemController) ViewItems(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	page := helpers.ParsePage(ctx)

	result, err := c.itemService.SearchItems(ctx.Request.Context(), keyword, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// ItemDetail returns the staff detail view with the first claim, if any
// @Summary Staff item detail
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemDetailResponse}
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /administrator_items_detail/{id} [get]
func (c *ItemController) ItemDetail(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.claimService.GetItemDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(detail))
}

// DeleteItem removes an item, its claims and its stored image
// @Summary Delete an item
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /administrator_delete_item/{id} [post]
func (c *ItemController) DeleteItem(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.itemService.DeleteItem(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Item deleted"))
}
