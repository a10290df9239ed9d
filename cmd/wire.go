package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	apiadapter "github.com/bnema/doctorai-cli/internal/adapters/api"
	chatrender "github.com/bnema/doctorai-cli/internal/adapters/render/chat"
	sqliterepo "github.com/bnema/doctorai-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/doctorai-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/doctorai-cli/internal/adapters/store/chain"
	filestore "github.com/bnema/doctorai-cli/internal/adapters/store/file"
	passstore "github.com/bnema/doctorai-cli/internal/adapters/store/pass"
	tokenadapter "github.com/bnema/doctorai-cli/internal/adapters/token"
	"github.com/bnema/doctorai-cli/internal/application"
	"github.com/bnema/doctorai-cli/internal/config"
	"github.com/bnema/doctorai-cli/internal/domain"
	"github.com/bnema/doctorai-cli/internal/ports"
)

type app struct {
	cfg         config.Config
	logger      *slog.Logger
	logLevel    *slog.LevelVar
	store       ports.SessionStore
	transcripts ports.TranscriptRepository
	sessions    *application.SessionManager
	auth        *application.AuthService
	render      func(chatrender.Screen) (string, error)
	closers     []io.Closer
}

func wireApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logLevel := new(slog.LevelVar)
	logLevel.Set(config.ParseLevel(cfg.LogLevel))
	logger := config.NewLogger(os.Stderr, logLevel)

	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	transcripts, closers, err := newTranscriptRepository(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("wire transcript repository: %w", err)
	}

	client := apiadapter.Client{
		BaseURL:        cfg.APIBaseURL,
		HTTPClient:     http.DefaultClient,
		RequestTimeout: cfg.APITimeout,
		Logger:         logger,
	}

	sessions := application.NewSessionManager(client, store,
		application.WithTranscripts(transcripts),
		application.WithLogger(logger),
	)

	auth := application.NewAuthService(client, store, tokenadapter.Inspector{}, sessions, ports.SystemClock{},
		application.WithAuthLogger(logger),
	)

	return &app{
		cfg:         cfg,
		logger:      logger,
		logLevel:    logLevel,
		store:       store,
		transcripts: transcripts,
		sessions:    sessions,
		auth:        auth,
		render:      chatrender.Render,
		closers:     closers,
	}, nil
}

func newSessionStore(cfg config.Config) (ports.SessionStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		return filestore.NewStore(cfg.StoreDir), nil
	case config.StoreBackendPass:
		return passstore.NewStore(cfg.PassPrefix), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.PassPrefix, cfg.StoreDir)
	}
}

func newTranscriptRepository(cfg config.Config, logger *slog.Logger) (ports.TranscriptRepository, []io.Closer, error) {
	if cfg.HistoryBackend == config.HistoryBackendSQLite {
		repo, err := sqliterepo.Open(cfg.HistoryPath, sqliterepo.WithLogger(logger))
		if err != nil {
			return nil, nil, err
		}
		return repo, []io.Closer{repo}, nil
	}

	repo, err := tomlrepo.NewRepository(cfg.Viper)
	if err != nil {
		return nil, nil, err
	}
	return repo, nil, nil
}

// restore loads the persisted token and session. A storage failure is reported
// on w and the command continues with whatever could be read.
func (a *app) restore(ctx context.Context, w io.Writer) {
	if err := a.sessions.Restore(ctx); err != nil {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", domain.UserMessage(err))
	}
}

func (a *app) close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
