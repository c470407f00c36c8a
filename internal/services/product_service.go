package services

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
	"cakeshop/internal/validation"
)

// ProductCache is a read-through cache for catalog reads.
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (*models.Product, bool)
	SetProduct(ctx context.Context, product *models.Product)
	GetProducts(ctx context.Context) ([]models.Product, bool)
	SetProducts(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context, ids ...string)
}

// ProductInput is the editable part of a product.
type ProductInput struct {
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=1000"`
	Image       string  `json:"image" validate:"required,max=500"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	cache    ProductCache
	validate *validator.Validate
}

// NewProductService creates a new ProductService. cache may be nil.
func NewProductService(repo repositories.ProductRepository, cache ProductCache) *ProductService {
	return &ProductService{
		repo:     repo,
		cache:    cache,
		validate: validation.New(),
	}
}

// GetAllProducts lists the catalog. Only the unfiltered listing is cached.
func (s *ProductService) GetAllProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)
	if s.cache != nil && filter.IsZero() {
		if products, ok := s.cache.GetProducts(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && filter.IsZero() {
		s.cache.SetProducts(ctx, products)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	if s.cache != nil {
		if product, ok := s.cache.GetProduct(ctx, id); ok {
			return product, nil
		}
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetProduct(ctx, product)
	}
	return product, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// CreateProduct adds a product to the catalog. A zero rating becomes the
// default rating.
func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	product := &models.Product{}
	applyProductInput(product, in)
	if product.Rating == 0 {
		product.Rating = models.DefaultRating
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

// UpdateProduct replaces the editable fields of a product. A zero rating
// keeps the current one.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rating := product.Rating
	applyProductInput(product, in)
	if product.Rating == 0 {
		product.Rating = rating
	}
	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return product, nil
}

// DeleteProduct removes a product from the catalog. Existing cart lines and
// orders keep their snapshot.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *ProductService) invalidate(ctx context.Context, ids ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, ids...)
	}
}

func applyProductInput(p *models.Product, in ProductInput) {
	p.Name = strings.TrimSpace(in.Name)
	p.Price = in.Price
	p.Category = strings.TrimSpace(in.Category)
	p.Description = strings.TrimSpace(in.Description)
	p.Image = strings.TrimSpace(in.Image)
	p.Rating = in.Rating
}

// SeedCatalog creates products only when the catalog is empty and returns
// how many were created.
func (s *ProductService) SeedCatalog(ctx context.Context, products []models.Product) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i := range products {
		if products[i].Rating == 0 {
			products[i].Rating = models.DefaultRating
		}
		if err := s.repo.Create(ctx, &products[i]); err != nil {
			return i, err
		}
	}
	s.invalidate(ctx)
	return len(products), nil
}
