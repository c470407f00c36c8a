package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
	"cakeshop/internal/services"
)

func cakeInput() services.ProductInput {
	return services.ProductInput{
		Name:        "Red Velvet",
		Price:       549,
		Category:    "Cakes",
		Description: "Cream cheese frosting",
		Image:       "https://img.example.com/red-velvet.jpg",
	}
}

func TestProductService_GetAllProducts(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: "1", Name: "Black Forest", Price: 499},
		{ID: "2", Name: "Truffle", Price: 599},
	}
	filter := models.ProductFilter{Search: "forest"}
	mockRepo.On("GetAll", ctx, filter).Return(expected[:1], nil).Once()

	products, err := service.GetAllProducts(ctx, models.ProductFilter{Search: "  forest "})
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CachedCatalog(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCache := new(MockProductCache)
	service := services.NewProductService(mockRepo, mockCache)

	products := []models.Product{{ID: "1", Name: "Black Forest"}}

	// miss: read from the repository and fill the cache
	mockCache.On("GetProducts", ctx).Return(nil, false).Once()
	mockRepo.On("GetAll", ctx, models.ProductFilter{}).Return(products, nil).Once()
	mockCache.On("SetProducts", ctx, products).Once()
	got, err := service.GetAllProducts(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, products, got)

	// hit: the repository is not consulted again
	mockCache.On("GetProducts", ctx).Return(products, true).Once()
	got, err = service.GetAllProducts(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, products, got)

	// filtered listings bypass the cache
	mockRepo.On("GetAll", ctx, models.ProductFilter{Category: "Cakes"}).Return(products, nil).Once()
	_, err = service.GetAllProducts(ctx, models.ProductFilter{Category: "Cakes"})
	require.NoError(t, err)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCache := new(MockProductCache)
	service := services.NewProductService(mockRepo, mockCache)

	expected := &models.Product{ID: "1", Name: "Black Forest"}
	mockCache.On("GetProduct", ctx, "1").Return(nil, false).Once()
	mockRepo.On("GetByID", ctx, "1").Return(expected, nil).Once()
	mockCache.On("SetProduct", ctx, expected).Once()

	product, err := service.GetProductByID(ctx, "1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	mockCache.On("GetProduct", ctx, "99").Return(nil, false).Once()
	mockRepo.On("GetByID", ctx, "99").Return(nil, notFound("product with ID 99")).Once()
	product, err = service.GetProductByID(ctx, "99")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("default rating and cache invalidation", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockCache := new(MockProductCache)
		service := services.NewProductService(mockRepo, mockCache)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Once()
		mockCache.On("Invalidate", ctx, []string(nil)).Once()

		product, err := service.CreateProduct(ctx, cakeInput())
		require.NoError(t, err)
		assert.Equal(t, models.DefaultRating, product.Rating)
		assert.Equal(t, "Red Velvet", product.Name)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("invalid input", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		service := services.NewProductService(mockRepo, nil)

		in := cakeInput()
		in.Name = "ab"
		in.Price = 0
		_, err := service.CreateProduct(ctx, in)

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "name")
		assert.Contains(t, verr.Fields, "price")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockCache := new(MockProductCache)
	service := services.NewProductService(mockRepo, mockCache)

	existing := &models.Product{ID: "1", Name: "Old", Rating: 4.8}
	mockRepo.On("GetByID", ctx, "1").Return(existing, nil).Once()
	mockRepo.On("Update", ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "1" && p.Name == "Red Velvet" && p.Rating == 4.8
	})).Return(nil).Once()
	mockCache.On("Invalidate", ctx, []string{"1"}).Once()

	product, err := service.UpdateProduct(ctx, "1", cakeInput())
	require.NoError(t, err)
	assert.Equal(t, 549.0, product.Price)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Delete", ctx, "1").Return(nil).Once()
	assert.NoError(t, service.DeleteProduct(ctx, "1"))

	mockRepo.On("Delete", ctx, "99").Return(notFound("product with ID 99")).Once()
	assert.ErrorIs(t, service.DeleteProduct(ctx, "99"), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SeedCatalog(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Count", ctx).Return(int64(0), nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Product")).Return(nil).Twice()
	n, err := service.SeedCatalog(ctx, []models.Product{{Name: "A"}, {Name: "B", Rating: 4.9}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mockRepo.On("Count", ctx).Return(int64(2), nil).Once()
	n, err = service.SeedCatalog(ctx, []models.Product{{Name: "C"}})
	require.NoError(t, err)
	assert.Zero(t, n)
	mockRepo.AssertExpectations(t)
}
