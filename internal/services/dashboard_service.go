package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
)

const recentOrdersLimit = 5

// DashboardService aggregates store figures for the admin dashboard.
type DashboardService struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
}

func NewDashboardService(userRepo repositories.UserRepository, productRepo repositories.ProductRepository, orderRepo repositories.OrderRepository) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Stats loads users, products and orders concurrently. Revenue excludes
// canceled orders.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		users         []models.User
		productsCount int64
		orders        []models.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.GetAll(gctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		productsCount, err = s.productRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.orderRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].DisplayName()
	}

	recent := make([]models.RecentOrder, 0, recentOrdersLimit)
	for _, o := range orders {
		if len(recent) == recentOrdersLimit {
			break
		}
		name, ok := names[o.UserID]
		if !ok {
			name = (&models.User{ID: o.UserID}).DisplayName()
		}
		recent = append(recent, models.RecentOrder{
			ID:          o.ID,
			UserName:    name,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			Date:        o.CreatedAt,
		})
	}

	return &models.DashboardStats{
		TotalUsers:    len(users),
		TotalProducts: int(productsCount),
		TotalOrders:   len(orders),
		TotalRevenue:  revenue(orders),
		RecentOrders:  recent,
	}, nil
}
