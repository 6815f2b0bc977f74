package product

import (
	"context"
	"strings"

	"github.com/payflowhq/payflow/internal/domain"
)

// ProductInput carries validated product fields from the handler layer.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
}

// Service exposes the product catalog operations.
type Service interface {
	CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error)
	GetProduct(ctx context.Context, id uint) (*domain.Product, error)
	ListProducts(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Product], error)
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

// productService implements Service.
type productService struct {
	repo     domain.ProductRepository
	currency string
}

// NewService creates a new product Service. Prices carry the configured
// wallet currency.
func NewService(repo domain.ProductRepository, currency string) Service {
	return &productService{repo: repo, currency: currency}
}

// CreateProduct validates input and persists a new product.
func (s *productService) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	p := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Currency:    s.currency,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct retrieves a product by ID.
func (s *productService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListProducts returns a paginated list of products.
func (s *productService) ListProducts(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	return s.repo.List(ctx, req)
}

// UpdateProduct loads the existing product, applies changes, and persists them.
func (s *productService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*domain.Product, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.ImageURL = in.ImageURL

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct removes a product by ID.
func (s *productService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// validateInput normalizes and checks product fields.
func validateInput(in *ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if in.Price <= 0 {
		return domain.NewAppError(domain.CodeValidation, "price must be greater than zero", nil)
	}
	if in.Stock < 0 {
		return domain.NewAppError(domain.CodeValidation, "stock must not be negative", nil)
	}
	return nil
}
