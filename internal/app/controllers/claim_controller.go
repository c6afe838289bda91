package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/app/services"
	"github.com/selim/lostfound/internal/middleware"
)

// ClaimController handles claim submission by students and claim review by
// administrators.
type ClaimController struct {
	claimService services.ClaimService
	itemService  services.ItemService
	logger       zerolog.Logger
}

// NewClaimController creates a new ClaimController
func NewClaimController(claimService services.ClaimService, itemService services.ItemService, logger zerolog.Logger) *ClaimController {
	return &ClaimController{
		claimService: claimService,
		itemService:  itemService,
		logger:       logger,
	}
}

// ClaimForm returns the item a claim would target, for the claim form
// @Summary Load the claim form for an item
// @Produce json
// @Param item_id path int true "Item ID"
// @Success 200 {object} dto.APIResponse{data=dto.ItemResponse}
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /claim/{item_id} [get]
func (c *ClaimController) ClaimForm(ctx *gin.Context) {
	itemID, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	item, err := c.itemService.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(item))
}

// SubmitClaim files a claim against an item
// @Summary Submit a claim for a found item
// @Accept json
// @Produce json
// @Param item_id path int true "Item ID"
// @Param request body dto.SubmitClaimRequest true "Claim form"
// @Success 201 {object} dto.APIResponse{data=dto.ClaimResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing fields or unknown student ID"
// @Failure 404 {object} dto.ErrorResponse "Item not found"
// @Router /claim/{item_id} [post]
func (c *ClaimController) SubmitClaim(ctx *gin.Context) {
	itemID, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	var req dto.SubmitClaimRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "All claim fields are required").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	claim, err := c.claimService.SubmitClaim(ctx.Request.Context(), itemID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(claim))
}

// ViewClaims returns the full review queue
// @Summary List all claims for review
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ClaimSummaryResponse}
// @Router /administrator_view_claims [get]
func (c *ClaimController) ViewClaims(ctx *gin.Context) {
	claims, err := c.claimService.ListClaims(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(claims))
}

// ReviewClaimForm returns a claim and its item, for the review form
// @Summary Load the review form for a claim
// @Produce json
// @Param claim_id path int true "Claim ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClaimReviewResponse}
// @Failure 404 {object} dto.ErrorResponse "Claim not found"
// @Router /administrator_review_claim_items/{claim_id} [get]
func (c *ClaimController) ReviewClaimForm(ctx *gin.Context) {
	claimID, ok := parseIDParam(ctx, "claim_id")
	if !ok {
		return
	}

	review, err := c.claimService.GetClaimForReview(ctx.Request.Context(), claimID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(review))
}

// ReviewClaim applies a staff decision to a claim
// @Summary Approve or reject a claim
// @Accept json
// @Produce json
// @Param claim_id path int true "Claim ID"
// @Param request body dto.ReviewClaimRequest true "Decision: approved or rejected"
// @Success 200 {object} dto.APIResponse{data=dto.ClaimResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid decision"
// @Failure 404 {object} dto.ErrorResponse "Claim not found"
// @Router /administrator_review_claim_items/{claim_id} [post]
func (c *ClaimController) ReviewClaim(ctx *gin.Context) {
	claimID, ok := parseIDParam(ctx, "claim_id")
	if !ok {
		return
	}

	var req dto.ReviewClaimRequest
	if err := ctx.ShouldBind(&req); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A decision is required").WithField("decision")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	claim, err := c.claimService.ReviewClaim(ctx.Request.Context(), claimID, req.Decision)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(claim))
}
