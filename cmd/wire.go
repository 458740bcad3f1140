package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bnema/kiroku/internal/adapters/judge"
	"github.com/bnema/kiroku/internal/adapters/judge/atcoder"
	"github.com/bnema/kiroku/internal/adapters/judge/codeforces"
	journalrender "github.com/bnema/kiroku/internal/adapters/render/journal"
	kvrepo "github.com/bnema/kiroku/internal/adapters/repo/kv"
	tomlrepo "github.com/bnema/kiroku/internal/adapters/repo/toml"
	"github.com/bnema/kiroku/internal/adapters/schedule"
	diskvstore "github.com/bnema/kiroku/internal/adapters/store/diskv"
	sqlitestore "github.com/bnema/kiroku/internal/adapters/store/sqlite"
	"github.com/bnema/kiroku/internal/application"
	"github.com/bnema/kiroku/internal/config"
	"github.com/bnema/kiroku/internal/domain"
	"github.com/bnema/kiroku/internal/logging"
	"github.com/bnema/kiroku/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	driverDiskv  = "diskv"
	driverSQLite = "sqlite"
	driverTOML   = "toml"
)

type app struct {
	cfg             config.Config
	logger          zerolog.Logger
	journal         *application.JournalService
	solved          *application.SolvedService
	runner          *schedule.Runner
	journalRenderer func([]domain.DayGroup, journalrender.RenderOptions) (string, error)
	now             func() time.Time
	closers         []io.Closer
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(os.Stderr, logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	repo, closer, err := openJournalRepository(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("wire journal repository: %w", err)
	}

	a := &app{
		cfg:             cfg,
		logger:          logger,
		journal:         application.NewJournalService(repo, ports.SystemClock{}),
		solved:          application.NewSolvedService(logger, submissionSources(cfg)...),
		runner:          schedule.NewRunner(logger),
		journalRenderer: journalrender.Render,
		now:             time.Now,
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}

	logger.Debug().Str("driver", cfg.Storage.Driver).Str("path", cfg.Storage.Path).Msg("journal storage ready")
	return a, nil
}

func openJournalRepository(cfg config.StorageConfig) (ports.JournalRepository, io.Closer, error) {
	switch cfg.Driver {
	case driverDiskv:
		store, err := diskvstore.NewStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return kvrepo.NewRepository(store), nil, nil
	case driverSQLite:
		store, err := sqlitestore.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return kvrepo.NewRepository(store), store, nil
	case driverTOML:
		repo, err := tomlrepo.NewRepository(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownStorageDriver, cfg.Driver)
	}
}

// submissionSources lists the judges in merge order: Codeforces, then AtCoder.
func submissionSources(cfg config.Config) []ports.SubmissionSource {
	client := func(baseURL string) judge.Client {
		return judge.Client{
			BaseURL:        baseURL,
			HTTPClient:     http.DefaultClient,
			RequestTimeout: cfg.HTTP.Timeout,
		}
	}

	return []ports.SubmissionSource{
		codeforces.Client{Client: client(cfg.Judges.CodeforcesBaseURL)},
		atcoder.Client{Client: client(cfg.Judges.AtCoderBaseURL)},
	}
}

func (a *app) close() error {
	var errs []error
	for _, closer := range a.closers {
		errs = append(errs, closer.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
