package bootstrap

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"upload-backend/internal/shared/config"
	"upload-backend/internal/shared/server"
	"upload-backend/internal/shared/storage/object"
	localstore "upload-backend/internal/shared/storage/object/local"
	s3store "upload-backend/internal/shared/storage/object/s3"
	"upload-backend/internal/uploads"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Store          object.ObjectStore
	UploadsHandler *uploads.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	store, err := buildStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	handler := uploads.NewHandler(uploads.NewUploadConfig(cfg.MaxUploadBytes, cfg.AllowedTypes), store)

	app := &App{
		Config:         cfg,
		Store:          store,
		UploadsHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		UploadsHandler: handler,
	})

	return app, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.UploadDir), nil
	}
}
