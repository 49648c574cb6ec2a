package productsvc

import (
	"context"
	"io"
	"time"

	iproduct "github.com/teraskopi54/pos/internal/dal/interfaces/product"
	"github.com/teraskopi54/pos/internal/dal/postgres"
	productrepo "github.com/teraskopi54/pos/internal/dal/repositories/product/postgres"
	"github.com/teraskopi54/pos/internal/service/models/apperrors"
	"github.com/teraskopi54/pos/internal/service/models/product"
)

// Upload carries an uploaded product photo from the transport layer.
type Upload struct {
	Filename string
	Reader   io.Reader
}

type imageStore interface {
	Save(originalName string, r io.Reader) (string, error)
}

// ProductService is a service for managing the product catalog.
type ProductService struct {
	repo   iproduct.PostgresRepository
	images imageStore
}

// option is a function that configures the ProductService.
type option func(*ProductService)

// MustNewProductService creates a new ProductService.
func MustNewProductService(opts ...option) *ProductService {
	s := &ProductService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient sets the Postgres client for the ProductService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *ProductService) {
		s.repo = productrepo.NewPostgresProductRepository(pgClient.Pool())
	}
}

// WithImageStore sets the image store for the ProductService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithImageStore(store imageStore) option {
	return func(s *ProductService) {
		s.images = store
	}
}

// List returns all catalog entries.
func (s *ProductService) List(ctx context.Context) ([]product.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return products, nil
}

// GetByID returns one catalog entry.
func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return p, nil
}

// Create stores a new product. When an image upload accompanies the
// request it is stored first and its generated name persisted on the row.
func (s *ProductService) Create(ctx context.Context, p product.Product, img *Upload) (*product.Product, error) {
	if img != nil {
		name, err := s.images.Save(img.Filename, img.Reader)
		if err != nil {
			return nil, err
		}
		p.Image = name
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return created, nil
}

// Update rewrites an existing product, optionally replacing its image.
// Updates without an upload keep the stored image reference.
func (s *ProductService) Update(ctx context.Context, p product.Product, img *Upload) (*product.Product, error) {
	if img != nil {
		name, err := s.images.Save(img.Filename, img.Reader)
		if err != nil {
			return nil, err
		}
		p.Image = name
	} else {
		current, err := s.repo.GetByID(ctx, p.ID)
		if err != nil {
			return nil, apperrors.Classify(err)
		}
		p.Image = current.Image
	}

	p.UpdatedAt = time.Now()

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, apperrors.Classify(err)
	}

	return updated, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.Classify(err)
	}

	return nil
}

// StoreImage saves a standalone upload and returns its stored name.
func (s *ProductService) StoreImage(img Upload) (string, error) {
	return s.images.Save(img.Filename, img.Reader)
}
