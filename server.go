package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cakeshop/internal/cache"
	"cakeshop/internal/config"
	"cakeshop/internal/handlers"
	"cakeshop/internal/middleware"
	"cakeshop/internal/models"
	"cakeshop/internal/repositories"
	"cakeshop/internal/services"
	"cakeshop/pkg/rabbitmq"
)

// server owns the HTTP app and the connections behind it.
type server struct {
	app    *fiber.App
	db     *gorm.DB
	redis  *redis.Client
	mq     *rabbitmq.Client
	logger *zap.Logger
}

// newServer connects the stores, wires services and handlers and mounts the
// routes. Redis and RabbitMQ are optional: when unset or unreachable the
// server runs without a product cache or order events.
func newServer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*server, error) {
	db, err := openDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	s := &server{db: db, logger: log}

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)

	var productCache services.ProductCache
	if cfg.Redis.Addr != "" {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn("redis unavailable, product cache disabled", zap.Error(err))
		} else {
			s.redis = client
			productCache = cache.NewProductCache(client, cfg.Redis.TTL, log)
		}
	}

	var publisher services.EventPublisher
	if cfg.RabbitMQ.URL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQ.URL}, log)
		if err != nil {
			log.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
		} else {
			s.mq = mq
			publisher = mq
		}
	}

	authService := services.NewAuthService(userRepo, cfg.Auth)
	userService := services.NewUserService(userRepo)
	productService := services.NewProductService(productRepo, productCache)
	cartService := services.NewCartService(cartRepo, productRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo, cartService, log)
	checkoutService := services.NewCheckoutService(cartRepo, orderRepo, publisher, log)
	orderService := services.NewOrderService(orderRepo, publisher, log)
	dashboardService := services.NewDashboardService(userRepo, productRepo, orderRepo)

	if cfg.Seed.Catalog {
		n, err := productService.SeedCatalog(ctx, cakeCatalog())
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		if n > 0 {
			log.Info("seeded catalog", zap.Int("products", n))
		}
	}

	app := fiber.New(fiber.Config{
		AppName:   "cakeshop",
		BodyLimit: cfg.HTTP.BodyLimit,
	})
	app.Use(recover.New(recoverConfig(cfg)))
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/health", s.handleHealth)

	handlers.RegisterRoutes(app.Group("/api/v1"), handlers.Handlers{
		Auth:     handlers.NewAuthHandler(authService, userService, log),
		Product:  handlers.NewProductHandler(productService, log),
		Cart:     handlers.NewCartHandler(cartService, log),
		Wishlist: handlers.NewWishlistHandler(wishlistService, log),
		Order:    handlers.NewOrderHandler(orderService, checkoutService, log),
		Admin:    handlers.NewAdminHandler(userService, dashboardService, log),
	}, middleware.AuthRequired(authService, log))

	if s.mq != nil {
		if err := s.mq.ConsumeOrderEvents(s.logOrderEvent); err != nil {
			log.Warn("failed to start order event consumer", zap.Error(err))
		}
	}

	s.app = app
	return s, nil
}

// recoverConfig prints panic stack traces outside production.
func recoverConfig(cfg *config.Config) recover.Config {
	return recover.Config{EnableStackTrace: !cfg.IsProduction()}
}

func (s *server) logOrderEvent(event models.OrderEvent) error {
	s.logger.Info("order event",
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID),
		zap.String("user_id", event.UserID),
		zap.String("status", event.Status),
		zap.Float64("total", event.TotalAmount),
	)
	return nil
}

func (s *server) handleHealth(c *fiber.Ctx) error {
	checks := fiber.Map{
		"database": "ok",
		"cache":    "disabled",
		"events":   "disabled",
	}
	status := fiber.StatusOK

	if sqlDB, err := s.db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
		checks["database"] = "unreachable"
		status = fiber.StatusServiceUnavailable
	}
	if s.redis != nil {
		checks["cache"] = "ok"
		if err := s.redis.Ping(c.UserContext()).Err(); err != nil {
			checks["cache"] = "unreachable"
		}
	}
	if s.mq != nil {
		checks["events"] = "connected"
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "unhealthy"
	}
	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"time":   time.Now().Format(time.RFC3339),
		"checks": checks,
	})
}

// Close releases the broker, cache and database connections.
func (s *server) Close() {
	if s.mq != nil {
		if err := s.mq.Close(); err != nil {
			s.logger.Warn("error closing rabbitmq", zap.Error(err))
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			s.logger.Warn("error closing redis", zap.Error(err))
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			s.logger.Warn("error closing database", zap.Error(err))
		}
	}
}
