package cmd

import (
	"fmt"
	"os"

	"backend-doctor/core/config"
	"backend-doctor/core/database"
	"backend-doctor/core/logger"
	"backend-doctor/core/medusa"
	"backend-doctor/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setup loads the configuration and builds the logger every command starts with.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logg)
	return cfg, logg, nil
}

// connect opens the backend database and wires the capabilities the checks use.
func connect(cfg *config.Config, logg *zap.Logger) (*gorm.DB, medusa.Services, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, medusa.Services{}, fmt.Errorf("database connection required: %w", err)
	}
	logg.Debug("Connected to backend database", zap.String("driver", db.Dialector.Name()))
	return db, medusa.NewServices(medusa.NewRepository(db)), nil
}

// backendServices is connect for the diagnostics: a connection failure does not stop
// the run, every user and store check reports it instead. The returned db is nil then.
func backendServices(cfg *config.Config, logg *zap.Logger) (*gorm.DB, medusa.Services) {
	db, services, err := connect(cfg, logg)
	if err != nil {
		logg.Warn("Database unavailable, database checks will fail", zap.Error(err))
		return nil, medusa.Unavailable(err)
	}
	return db, services
}

// fileStorage returns the bucket to check. Without an endpoint the target has no
// client and the check is skipped.
func fileStorage(cfg storage.Config) (storage.Target, error) {
	target := storage.Target{Bucket: cfg.Bucket}
	if !cfg.Enabled() {
		return target, nil
	}

	client, err := storage.NewClient(cfg)
	if err != nil {
		return target, fmt.Errorf("failed to create storage client: %w", err)
	}
	target.Client = client
	return target, nil
}

// workDir resolves the directory build outputs are looked up in.
func workDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return wd, nil
}
