package cmd

import (
	adaptergit "github.com/renato0307/gitwatch/internal/adapters/git"
	adapterstorage "github.com/renato0307/gitwatch/internal/adapters/storage"
	"github.com/renato0307/gitwatch/internal/config"
	"github.com/renato0307/gitwatch/internal/ports"
	"github.com/renato0307/gitwatch/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	PullRequestService *services.PullRequestService
	ReviewService      *services.ReviewService
	UserService        *services.UserService

	// Internal - for cleanup only
	store ports.ReviewStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings, reposPathFlag string) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	store, err := adapterstorage.NewSQLiteStore(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	engine := adaptergit.NewEngine(adaptergit.EngineOptions{
		LockDir:          config.GetLockDir(),
		MergeAuthorEmail: settings.MergeAuthorEmail,
		MergeAuthorName:  settings.MergeAuthorName,
		MergeTimeout:     settings.MergeTimeout(),
	})

	reviewService := services.NewReviewService(engine, settings.ResolveReposPath(reposPathFlag))

	return &Container{
		PullRequestService: services.NewPullRequestService(store, engine, reviewService, settings.TargetBranch()),
		ReviewService:      reviewService,
		UserService:        services.NewUserService(store),
		store:              store,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
