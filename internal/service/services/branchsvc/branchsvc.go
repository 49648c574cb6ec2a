package branchsvc

import (
	"context"
	"time"

	ibranch "github.com/teraskopi54/pos/internal/dal/interfaces/branch"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	branchrepo "github.com/teraskopi54/pos/internal/dal/repositories/branch/postgres"
	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/branch"
)

// BranchService is a service for managing café branches.
type BranchService struct {
	repo ibranch.PostgresRepository
}

// option is a function that configures the BranchService.
type option func(*BranchService)

// MustNewBranchService creates a new BranchService.
func MustNewBranchService(opts ...option) *BranchService {
	s := &BranchService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the BranchService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *BranchService) {
		s.repo = branchrepo.NewPostgresBranchRepository(pgClient.Pool())
	}
}

func (s *BranchService) List(ctx context.Context) ([]branch.Branch, error) {
	branches, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return branches, nil
}

func (s *BranchService) GetByID(ctx context.Context, id int64) (*branch.Branch, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return b, nil
}

func (s *BranchService) Create(ctx context.Context, b branch.Branch) (*branch.Branch, error) {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	created, err := s.repo.Insert(ctx, b)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return created, nil
}

func (s *BranchService) Update(ctx context.Context, b branch.Branch) (*branch.Branch, error) {
	b.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return updated, nil
}

func (s *BranchService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Classify(err)
	}

	return nil
}
