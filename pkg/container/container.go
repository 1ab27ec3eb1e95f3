package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshop-backend/internal/config"
	infraCache "bookshop-backend/internal/infrastructure/cache"
	"bookshop-backend/internal/infrastructure/database"
	"bookshop-backend/pkg/cache"

	authorHandler "bookshop-backend/internal/domains/author/handler"
	authorRepo "bookshop-backend/internal/domains/author/repository"
	authorService "bookshop-backend/internal/domains/author/service"
	bookHandler "bookshop-backend/internal/domains/book/handler"
	bookRepo "bookshop-backend/internal/domains/book/repository"
	bookService "bookshop-backend/internal/domains/book/service"
)

// Container holds the application's dependency graph. Everything in it is a
// singleton living for the lifetime of the process.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Repositories
	AuthorRepo   authorRepo.RepositoryInterface
	BookRepo     bookRepo.RepositoryInterface
	DeliveryRepo bookRepo.BatchRunner

	// Services
	AuthorService   authorService.ServiceInterface
	BookService     bookService.ServiceInterface
	DeliveryService bookService.DeliveryServiceInterface

	// Handlers
	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	DeliveryHandler *bookHandler.DeliveryHandler
}

// NewContainer initializes the dependency graph bottom-up: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis being down is non-critical: repositories degrade to plain
	// database reads.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed (non-critical)")
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.DeliveryRepo = bookRepo.NewDeliveryRepository(c.DB.Pool, c.Cache)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
	c.DeliveryService = bookService.NewDeliveryService(c.DeliveryRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.DeliveryHandler = bookHandler.NewDeliveryHandler(c.DeliveryService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		_ = rc.Close()
	}
}
