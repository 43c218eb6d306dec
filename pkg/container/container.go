package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-api/internal/config"
	bookhandler "library-api/internal/domains/book/handler"
	bookrepo "library-api/internal/domains/book/repository"
	bookservice "library-api/internal/domains/book/service"
	loanhandler "library-api/internal/domains/loan/handler"
	loanrepo "library-api/internal/domains/loan/repository"
	loanservice "library-api/internal/domains/loan/service"
	infracache "library-api/internal/infrastructure/cache"
	"library-api/internal/infrastructure/email"
	"library-api/pkg/cache"
	"library-api/pkg/database"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache
	Mailer email.MailService

	BookRepo bookrepo.RepositoryInterface
	LoanRepo loanrepo.RepositoryInterface

	BookService bookservice.ServiceInterface
	LoanService loanservice.ServiceInterface

	BookHandler *bookhandler.BookHandler
	LoanHandler *loanhandler.LoanHandler
}

// NewContainer builds the dependency graph in order: config, infrastructure,
// repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// Cache failures are non-critical; repositories fall through to the DB.
		log.Printf("[Container] Redis connection failed (non-critical): %v", err)
	}
	c.Cache = redisCache

	c.Mailer = email.NewSMTPMailService(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort, cfg.Mail.From)

	c.BookRepo = bookrepo.NewPostgresRepository(db.Pool, c.Cache)
	c.LoanRepo = loanrepo.NewPostgresRepository(db.Pool)

	c.BookService = bookservice.NewBookService(c.BookRepo)
	c.LoanService = loanservice.NewLoanService(c.LoanRepo, c.BookService)

	c.BookHandler = bookhandler.NewBookHandler(c.BookService)
	c.LoanHandler = loanhandler.NewLoanHandler(c.LoanService, c.BookService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("[Container] Failed to close redis client: %v", err)
		}
	}
}
