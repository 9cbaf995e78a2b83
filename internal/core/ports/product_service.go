package ports

import (
	"context"

	"github.com/sbcommerce/storefront-system/internal/core/domain"
)

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of products, newest first. A non-empty query
	// narrows the page to products whose name or description match it.
	List(ctx context.Context, query string, page, limit int) ([]domain.Product, int64, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	// AdjustStock decrements stock by qty and returns ErrInsufficientStock
	// when the remaining stock would go negative. A negative qty restores
	// previously taken units.
	AdjustStock(ctx context.Context, id string, qty int) error
}

// CreateProductInput carries the fields needed to create a catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Image       string
}

// UpdateProductInput carries the replacement fields for an existing entry.
type UpdateProductInput struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	Image       string
}

// ListProductsInput carries pagination and an optional search query for
// the list endpoint.
type ListProductsInput struct {
	Query string
	Page  int
	Limit int
}

// ListProductsResult is returned by ListProducts.
type ListProductsResult struct {
	Items      []domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines use-case operations for the catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, input ListProductsInput) (*ListProductsResult, error)
	UpdateProduct(ctx context.Context, input UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
