package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/pkg/apperrors"
)

// ClaimStore is the slice of the claim repository the claim service needs.
type ClaimStore interface {
	Create(ctx context.Context, claim *models.Claim) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Claim, error)
	FirstByItemID(ctx context.Context, itemID int64) (*models.Claim, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReviewStatus) error
	ListAll(ctx context.Context) ([]models.ClaimSummary, error)
}

// ClaimService defines claim submission and staff review operations.
type ClaimService interface {
	SubmitClaim(ctx context.Context, itemID int64, req *dto.SubmitClaimRequest) (*dto.ClaimResponse, error)
	ReviewClaim(ctx context.Context, claimID int64, decision string) (*dto.ClaimResponse, error)
	GetClaimForReview(ctx context.Context, claimID int64) (*dto.ClaimReviewResponse, error)
	ListClaims(ctx context.Context) ([]dto.ClaimSummaryResponse, error)
	GetItemDetail(ctx context.Context, itemID int64) (*dto.ItemDetailResponse, error)
}

// claimServiceImpl implements ClaimService
type claimServiceImpl struct {
	claimRepo   ClaimStore
	itemRepo    ItemStore
	studentRepo StudentStore
	logger      zerolog.Logger
}

// NewClaimService creates a new ClaimService
func NewClaimService(claimRepo ClaimStore, itemRepo ItemStore, studentRepo StudentStore, logger zerolog.Logger) ClaimService {
	return &claimServiceImpl{
		claimRepo:   claimRepo,
		itemRepo:    itemRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// SubmitClaim files a pending claim against an item. Both references are
// verified: the item must exist and the student identifier must belong to a
// registered student.
func (s *claimServiceImpl) SubmitClaim(ctx context.Context, itemID int64, req *dto.SubmitClaimRequest) (*dto.ClaimResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("error getting item: %w", err)
	}
	if item == nil {
		return nil, apperrors.ErrItemNotFound
	}

	student, err := s.studentRepo.GetByStudentID(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error looking up student: %w", err)
	}
	if student == nil {
		return nil, apperrors.NewValidationError("student ID does not belong to a registered student")
	}

	claim := &models.Claim{
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		ItemID:      itemID,
		Phone:       req.Phone,
		Reason:      req.Reason,
		Status:      models.StatusPending,
	}

	id, err := s.claimRepo.Create(ctx, claim)
	if err != nil {
		return nil, fmt.Errorf("error creating claim: %w", err)
	}
	claim.ID = id

	s.logger.Info().Int64("claimId", id).Int64("itemId", itemID).Str("studentId", req.StudentID).Msg("Claim submitted")

	resp := dto.NewClaimResponse(claim)
	return &resp, nil
}

// ReviewClaim applies a staff decision to a claim. Only "approved" and
// "rejected" are accepted; anything else is rejected with no state change.
// Re-applying the same decision is a no-op, and the parent item's status is
// deliberately left untouched either way.
func (s *claimServiceImpl) ReviewClaim(ctx context.Context, claimID int64, decision string) (*dto.ClaimResponse, error) {
	if !models.ValidDecision(decision) {
		return nil, apperrors.ErrInvalidDecision
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("error getting claim: %w", err)
	}
	if claim == nil {
		return nil, apperrors.ErrClaimNotFound
	}

	status := models.ReviewStatus(decision)
	if claim.Status != status {
		if err := s.claimRepo.UpdateStatus(ctx, claimID, status); err != nil {
			return nil, fmt.Errorf("error updating claim status: %w", err)
		}
		claim.Status = status
	}

	s.logger.Info().Int64("claimId", claimID).Str("decision", decision).Msg("Claim reviewed")

	resp := dto.NewClaimResponse(claim)
	return &resp, nil
}

// GetClaimForReview returns a claim together with the item it targets.
func (s *claimServiceImpl) GetClaimForReview(ctx context.Context, claimID int64) (*dto.ClaimReviewResponse, error) {
	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("error getting claim: %w", err)
	}
	if claim == nil {
		return nil, apperrors.ErrClaimNotFound
	}

	item, err := s.itemRepo.GetByID(ctx, claim.ItemID)
	if err != nil {
		return nil, fmt.Errorf("error getting item: %w", err)
	}
	if item == nil {
		return nil, apperrors.ErrItemNotFound
	}

	return &dto.ClaimReviewResponse{
		Claim: dto.NewClaimResponse(claim),
		Item:  dto.NewItemResponse(item),
	}, nil
}

// ListClaims returns the full review queue, newest first.
func (s *claimServiceImpl) ListClaims(ctx context.Context) ([]dto.ClaimSummaryResponse, error) {
	summaries, err := s.claimRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing claims: %w", err)
	}

	responses := make([]dto.ClaimSummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		responses = append(responses, dto.ClaimSummaryResponse{
			ID:          sum.ID,
			ItemID:      sum.ItemID,
			ItemName:    sum.ItemName,
			StudentID:   sum.StudentID,
			StudentName: sum.StudentName,
			Status:      string(sum.Status),
		})
	}

	return responses, nil
}

// GetItemDetail returns the staff detail view: the item plus the first claim
// filed against it, when one exists.
func (s *claimServiceImpl) GetItemDetail(ctx context.Context, itemID int64) (*dto.ItemDetailResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("error getting item: %w", err)
	}
	if item == nil {
		return nil, apperrors.ErrItemNotFound
	}

	detail := &dto.ItemDetailResponse{Item: dto.NewItemResponse(item)}

	claim, err := s.claimRepo.FirstByItemID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("error getting claim: %w", err)
	}
	if claim != nil {
		resp := dto.NewClaimResponse(claim)
		detail.Claim = &resp
	}

	return detail, nil
}
