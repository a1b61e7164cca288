package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/config"
	infraCache "bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/pkg/cache"

	authorHandler "bookshelf-backend/internal/domains/author/handler"
	authorRepo "bookshelf-backend/internal/domains/author/repository"
	authorService "bookshelf-backend/internal/domains/author/service"
	bookHandler "bookshelf-backend/internal/domains/book/handler"
	bookRepo "bookshelf-backend/internal/domains/book/repository"
	bookService "bookshelf-backend/internal/domains/book/service"
	publisherHandler "bookshelf-backend/internal/domains/publisher/handler"
	publisherRepo "bookshelf-backend/internal/domains/publisher/repository"
	publisherService "bookshelf-backend/internal/domains/publisher/service"
)

// Container holds the application's dependency graph. Everything in it is a
// singleton; repositories, services and handlers are stateless.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo    authorRepo.RepositoryInterface
	BookRepo      bookRepo.RepositoryInterface
	PublisherRepo publisherRepo.RepositoryInterface

	AuthorService    authorService.ServiceInterface
	BookService      bookService.ServiceInterface
	PublisherService publisherService.ServiceInterface

	AuthorHandler    *authorHandler.Handler
	BookHandler      *bookHandler.Handler
	PublisherHandler *publisherHandler.Handler
}

// NewContainer initializes the dependency graph in order: config, then
// infrastructure, then repositories, services and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&database.DBConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxConns),
		MinConns:        int32(cfg.Database.MinConns),
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		ConnectTimeout:  cfg.Database.ConnectTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := database.RunMigrations(db.Pool); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is not fatal: the app degrades to uncached reads.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Redis connection failed, continuing without warm cache")
		}
	}
	c.Cache = redisCache

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("Container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	c.PublisherRepo = publisherRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewService(c.AuthorRepo, c.Cache)
	c.BookService = bookService.NewService(c.BookRepo, c.Cache)
	c.PublisherService = publisherService.NewService(c.PublisherRepo, c.Cache)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.PublisherHandler = publisherHandler.NewHandler(c.PublisherService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
}
