package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"catalogapi/internal/domain"
	"catalogapi/internal/platform/logger"
	"catalogapi/internal/store"
)

// Pagination policy for product listings. The original API left limit
// unbounded; MaxPageLimit caps it so a single caller cannot request an
// arbitrarily large result set.
const (
	DefaultPageOffset = 0
	DefaultPageLimit  = 5
	MaxPageLimit      = 100
)

// ProductParams carries the client-supplied fields for create and update
// operations. The owner is never part of this struct; it comes from the
// caller's verified identity.
type ProductParams struct {
	Name        string
	CategoryID  uuid.UUID
	Price       float64
	Description string
	Available   bool
}

// ProductService orchestrates product operations: it applies pagination
// defaults, injects ownership on creation, and delegates persistence to
// the ProductStore. Each call is a short synchronous pipeline; faults
// surface as errors for the HTTP layer to map.
type ProductService interface {
	// List returns a page of products ordered by name ascending.
	// Non-positive offset/limit fall back to the defaults; limit is capped
	// at MaxPageLimit.
	List(ctx context.Context, offset, limit int) ([]*domain.Product, error)

	// Get returns the product with the given ID, or store.ErrProductNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// Search returns all products whose name contains the term,
	// case-insensitively. An empty result is not an error.
	Search(ctx context.Context, term string) ([]*domain.Product, error)

	// Create persists a new product owned by ownerID. Any owner present in
	// client input is ignored; ownership is set here, exactly once.
	Create(ctx context.Context, ownerID uuid.UUID, params ProductParams) (*domain.Product, error)

	// Update fully replaces the mutable fields of the product with the
	// given ID. The owner is unchanged. Returns store.ErrProductNotFound
	// if the product does not exist.
	Update(ctx context.Context, id uuid.UUID, params ProductParams) (*domain.Product, error)

	// Delete removes the product with the given ID and returns the removed
	// record, or store.ErrProductNotFound.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

// productService is the default ProductService implementation.
type productService struct {
	productStore store.ProductStore
	logger       *slog.Logger
}

// Ensure productService implements ProductService interface
var _ ProductService = (*productService)(nil)

// NewProductService creates a new ProductService backed by the given store.
func NewProductService(productStore store.ProductStore, logger *slog.Logger) ProductService {
	if productStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("productStore cannot be nil for ProductService")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProductService")
	}

	return &productService{
		productStore: productStore,
		logger:       logger.With(slog.String("component", "product_service")),
	}
}

// List implements ProductService.List
func (s *productService) List(ctx context.Context, offset, limit int) ([]*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if offset < 0 {
		offset = DefaultPageOffset
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		log.Debug("requested page limit above cap",
			slog.Int("requested", limit),
			slog.Int("cap", MaxPageLimit))
		limit = MaxPageLimit
	}

	return s.productStore.ListPage(ctx, offset, limit)
}

// Get implements ProductService.Get
func (s *productService) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productStore.GetByID(ctx, id)
}

// Search implements ProductService.Search
func (s *productService) Search(ctx context.Context, term string) ([]*domain.Product, error) {
	return s.productStore.FindByName(ctx, term)
}

// Create implements ProductService.Create
func (s *productService) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	params ProductParams,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := domain.NewProduct(
		params.Name,
		params.CategoryID,
		ownerID,
		params.Price,
		params.Description,
		params.Available,
	)
	if err != nil {
		log.Warn("product rejected before persistence",
			slog.String("error", err.Error()),
			slog.String("owner_id", ownerID.String()))
		return nil, err
	}

	return s.productStore.Create(ctx, product)
}

// Update implements ProductService.Update
func (s *productService) Update(
	ctx context.Context,
	id uuid.UUID,
	params ProductParams,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	replacement := &domain.Product{
		ID:          id,
		Name:        params.Name,
		CategoryID:  params.CategoryID,
		Price:       params.Price,
		Description: params.Description,
		Available:   params.Available,
	}

	if replacement.Name == "" {
		log.Warn("update rejected before persistence",
			slog.String("product_id", id.String()))
		return nil, domain.ErrEmptyProductName
	}
	if replacement.CategoryID == uuid.Nil {
		return nil, domain.ErrEmptyCategoryID
	}
	if replacement.Price < 0 {
		return nil, domain.ErrNegativePrice
	}

	return s.productStore.Update(ctx, id, replacement)
}

// Delete implements ProductService.Delete
func (s *productService) Delete(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productStore.Delete(ctx, id)
}
