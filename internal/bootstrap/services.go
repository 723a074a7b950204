package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/manytooh/catalog-admin/config"
	redisadapter "github.com/manytooh/catalog-admin/internal/adapters/redis"
	"github.com/manytooh/catalog-admin/internal/data/backend"
	"github.com/manytooh/catalog-admin/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Brands     *service.BrandService
	Categories *service.ProductCategoryService
	Types      *service.ProductTypeService
	Products   *service.ProductService
	Auth       *service.AuthService
}

// ServicesConfig contains dependencies for building the service container.
type ServicesConfig struct {
	Config *config.AppConfig
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// BuildServices constructs the backend client, repositories, and services.
func BuildServices(cfg ServicesConfig) (ServiceContainer, error) {
	if cfg.Config == nil {
		return ServiceContainer{}, fmt.Errorf("app config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client, err := backend.NewClient(backend.Options{
		BaseURL: cfg.Config.Backend.BaseURL,
		Timeout: cfg.Config.Backend.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend client: %w", err)
	}

	authenticator, err := backend.NewAuthenticator(client, backend.IdentityExprs{
		UserID:   cfg.Config.Backend.UserIDExpr,
		Role:     cfg.Config.Backend.RoleExpr,
		Username: cfg.Config.Backend.UsernameExpr,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build backend authenticator: %w", err)
	}

	sessions := redisadapter.NewSessionStore(cfg.Redis)

	return ServiceContainer{
		Brands: service.NewBrandService(service.BrandServiceOptions{
			Repo: backend.NewBrandRepo(client),
		}),
		Categories: service.NewProductCategoryService(service.ProductCategoryServiceOptions{
			Repo: backend.NewProductCategoryRepo(client),
		}),
		Types: service.NewProductTypeService(service.ProductTypeServiceOptions{
			Repo: backend.NewProductTypeRepo(client),
		}),
		Products: service.NewProductService(service.ProductServiceOptions{
			Repo: backend.NewProductRepo(client),
		}),
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Authenticator: authenticator,
			Sessions:      sessions,
			SessionTTL:    cfg.Config.Auth.SessionTTL,
			Logger:        logger,
		}),
	}, nil
}
