package inventorysvc

import (
	"context"
	"time"

	iinventory "github.com/teraskopi54/pos/internal/dal/interfaces/inventory"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	inventoryrepo "github.com/teraskopi54/pos/internal/dal/repositories/inventory/postgres"
	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/inventory"
)

// InventoryService is a service for managing stock records. It is
// deliberately independent of order placement: orders never decrement
// inventory quantities.
type InventoryService struct {
	repo iinventory.PostgresRepository
}

// option is a function that configures the InventoryService.
type option func(*InventoryService)

// MustNewInventoryService creates a new InventoryService.
func MustNewInventoryService(opts ...option) *InventoryService {
	s := &InventoryService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the InventoryService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *InventoryService) {
		s.repo = inventoryrepo.NewPostgresInventoryRepository(pgClient.Pool())
	}
}

func (s *InventoryService) List(ctx context.Context) ([]inventory.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return items, nil
}

func (s *InventoryService) GetByID(ctx context.Context, id int64) (*inventory.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return item, nil
}

func (s *InventoryService) Create(ctx context.Context, item inventory.Item) (*inventory.Item, error) {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	created, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return created, nil
}

func (s *InventoryService) Update(ctx context.Context, item inventory.Item) (*inventory.Item, error) {
	item.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return updated, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Classify(err)
	}

	return nil
}
