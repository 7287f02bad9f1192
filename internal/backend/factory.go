package backend

import (
	"context"
	"fmt"
	"log/slog"

	"sobi/internal/config"
	applog "sobi/internal/log"
	"sobi/internal/store/firestore"
	"sobi/internal/store/memory"
	"sobi/internal/store/sqlite"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend implements Factory.CreateBackend
func (f *DefaultFactory) CreateBackend(ctx context.Context, cfg Config) (*BackendResult, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.Type)
	}

	switch cfg.Type {
	case FirestoreBackend:
		return f.createFirestoreBackend(ctx, cfg)
	case SQLiteBackend:
		return f.createSQLiteBackend(cfg)
	case MemoryBackend:
		return f.createMemoryBackend(cfg)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}

func (f *DefaultFactory) createFirestoreBackend(ctx context.Context, cfg Config) (*BackendResult, error) {
	st, err := firestore.New(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile, cfg.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firestore store: %w", err)
	}

	f.logger.Info("Initialized Firestore backend",
		"project_id", cfg.FirestoreProjectID,
		applog.FieldOwnerID, cfg.OwnerID)

	return &BackendResult{
		Store:   st,
		Cleanup: st.Close,
	}, nil
}

func (f *DefaultFactory) createSQLiteBackend(cfg Config) (*BackendResult, error) {
	repo, err := sqlite.NewRepository(cfg.SQLiteDBPath, cfg.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}

	f.logger.Info("Initialized SQLite backend",
		"db_path", cfg.SQLiteDBPath,
		applog.FieldOwnerID, cfg.OwnerID)

	return &BackendResult{
		Store:   repo,
		Cleanup: repo.Close,
	}, nil
}

func (f *DefaultFactory) createMemoryBackend(cfg Config) (*BackendResult, error) {
	st := memory.New(cfg.OwnerID)

	f.logger.Info("Initialized memory backend", applog.FieldOwnerID, cfg.OwnerID)

	return &BackendResult{
		Store:   st,
		Cleanup: nil, // nothing to release
	}, nil
}

// FromAppConfig converts application config to backend config.
func FromAppConfig(appConfig *config.Config) Config {
	return Config{
		Type:                     BackendType(appConfig.DataBackend),
		OwnerID:                  appConfig.OwnerID,
		SQLiteDBPath:             appConfig.SQLiteDBPath,
		FirestoreProjectID:       appConfig.FirestoreProjectID,
		FirestoreCredentialsFile: appConfig.FirestoreCredentialsFile,
	}
}
