package app

import (
	"context"
	"fmt"

	"github.com/Abhinay9346/portfolio"
	"github.com/Abhinay9346/portfolio/internal/config"
	"github.com/Abhinay9346/portfolio/internal/db"
	"github.com/Abhinay9346/portfolio/internal/repository"
	"github.com/Abhinay9346/portfolio/internal/service"
	"github.com/Abhinay9346/portfolio/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	Storage          storage.Storage
	BlogService      *service.BlogService
	PortfolioService *service.PortfolioService
	EmailService     *service.EmailService
	ContactService   *service.ContactService
	ResumeService    *service.ResumeService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Content first: a broken post should fail before touching the database
	blogService, err := service.NewBlogService(portfolio.ContentFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load blog posts: %w", err)
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	err = db.RunMigrations(ctx, database.DB, cfg.DBDriver)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Storage is nil when no bucket is configured
	fileStorage, err := storage.New(cfg)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.ContactEmail,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	contactService := service.NewContactService(repository.NewContactRepository(database), emailService)
	resumeService := service.NewResumeService(fileStorage, cfg.ResumeKey, cfg.ResumePath, cfg.S3PresignExpiry)

	return &App{
		Cfg:              cfg,
		DB:               database,
		Storage:          fileStorage,
		BlogService:      blogService,
		PortfolioService: service.NewPortfolioService(),
		EmailService:     emailService,
		ContactService:   contactService,
		ResumeService:    resumeService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
