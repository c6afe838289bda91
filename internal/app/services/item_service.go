package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/selim/lostfound/internal/app/models"
	"github.com/selim/lostfound/internal/app/models/dto"
	"github.com/selim/lostfound/internal/pkg/apperrors"
	"github.com/selim/lostfound/internal/pkg/filestorage"
	"github.com/selim/lostfound/internal/pkg/helpers"
)

// ItemStore is the slice of the item repository the item service needs.
type ItemStore interface {
	Search(ctx context.Context, keyword string, offset uint64, limit int) ([]models.LostItem, int64, error)
	GetByID(ctx context.Context, id int64) (*models.LostItem, error)
	Create(ctx context.Context, item *models.LostItem) (int64, error)
	DeleteWithClaims(ctx context.Context, id int64) (int64, error)
}

// ItemService defines catalog and staff item-management operations.
type ItemService interface {
	SearchItems(ctx context.Context, keyword string, page int) (*dto.ItemListResponse, error)
	GetItem(ctx context.Context, id int64) (*dto.ItemResponse, error)
	UploadItem(ctx context.Context, req *dto.UploadItemRequest, image *multipart.FileHeader) (*dto.ItemResponse, error)
	DeleteItem(ctx context.Context, id int64) error
}

// itemServiceImpl implements ItemService
type itemServiceImpl struct {
	itemRepo  ItemStore
	blobStore filestorage.BlobStore
	logger    zerolog.Logger
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo ItemStore, blobStore filestorage.BlobStore, logger zerolog.Logger) ItemService {
	return &itemServiceImpl{
		itemRepo:  itemRepo,
		blobStore: blobStore,
		logger:    logger,
	}
}

// SearchItems returns one page of the catalog. An empty keyword matches
// everything; a page past the end returns an empty page, never an error.
func (s *itemServiceImpl) SearchItems(ctx context.Context, keyword string, page int) (*dto.ItemListResponse, error) {
	if page < 1 {
		page = helpers.DefaultPage
	}

	offset, limit := helpers.CalculateOffsetLimit(page, helpers.ItemPageSize)

	items, total, err := s.itemRepo.Search(ctx, keyword, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching items: %w", err)
	}

	responses := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, dto.NewItemResponse(&items[i]))
	}

	return &dto.ItemListResponse{
		Items:      responses,
		Pagination: helpers.NewPaginationInfo(total, page, helpers.ItemPageSize),
	}, nil
}

// GetItem returns a single item by id.
func (s *itemServiceImpl) GetItem(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting item: %w", err)
	}
	if item == nil {
		return nil, apperrors.ErrItemNotFound
	}

	resp := dto.NewItemResponse(item)
	return &resp, nil
}

// UploadItem stores the image first and only then creates the catalog row,
// so a storage failure leaves no partial record. If the insert itself fails
// the stored blob is removed again, best effort.
func (s *itemServiceImpl) UploadItem(ctx context.Context, req *dto.UploadItemRequest, image *multipart.FileHeader) (*dto.ItemResponse, error) {
	if image == nil {
		return nil, apperrors.NewValidationError("an item image is required")
	}

	ref, err := s.blobStore.Save(image)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to store item image")
	}

	item := &models.LostItem{
		Name:        req.Name,
		Description: req.Description,
		PickupTime:  req.PickupTime,
		Location:    req.Location,
		Status:      models.StatusPending,
		ImageRef:    ref,
	}

	id, err := s.itemRepo.Create(ctx, item)
	if err != nil {
		if delErr := s.blobStore.Delete(ref); delErr != nil {
			s.logger.Error().Err(delErr).Str("ref", ref).Msg("Failed to clean up blob after insert failure")
		}
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	item.ID = id

	s.logger.Info().Int64("itemId", id).Str("name", item.Name).Msg("Item uploaded")

	resp := dto.NewItemResponse(item)
	return &resp, nil
}

// DeleteItem removes the item and its claims in one transaction, then
// deletes the image through the blob store. Blob cleanup is best effort:
// a storage failure is logged but never rolls back the database delete.
func (s *itemServiceImpl) DeleteItem(ctx context.Context, id int64) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting item: %w", err)
	}
	if item == nil {
		return apperrors.ErrItemNotFound
	}

	claimsDeleted, err := s.itemRepo.DeleteWithClaims(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}

	if err := s.blobStore.Delete(item.ImageRef); err != nil {
		s.logger.Error().Err(err).Int64("itemId", id).Str("ref", item.ImageRef).Msg("Failed to delete item image blob")
	}

	s.logger.Info().Int64("itemId", id).Int64("claimsDeleted", claimsDeleted).Msg("Item deleted")
	return nil
}
