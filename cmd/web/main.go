package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/AlvaroMoyaL/fitapp/internal/catalog"
	"github.com/AlvaroMoyaL/fitapp/internal/envstruct"
	"github.com/AlvaroMoyaL/fitapp/internal/errors"
	"github.com/AlvaroMoyaL/fitapp/internal/flightrecorder"
	"github.com/AlvaroMoyaL/fitapp/internal/logging"
	"github.com/AlvaroMoyaL/fitapp/internal/plan"
	"github.com/AlvaroMoyaL/fitapp/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	planService    *plan.Service
	flightRecorder *flightrecorder.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITAPP_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"FITAPP_SQLITE_URL" envDefault:"./fitapp.sqlite3"`
	// CatalogURL is the base URL of the exercise catalog API. Empty disables
	// network fetches so the catalog cache and the built-in list are used.
	CatalogURL string `env:"FITAPP_CATALOG_URL" envDefault:""`
	// OpenAIAPIKey enables generated exercise descriptions when set.
	OpenAIAPIKey string `env:"FITAPP_OPENAI_API_KEY" envDefault:""`
	// TracesDir enables runtime trace capture of slow requests when set.
	TracesDir string `env:"FITAPP_TRACES_DIR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	var session *catalog.Session
	if cfg.CatalogURL != "" {
		session = catalog.NewSession(catalog.NewClient(cfg.CatalogURL, logger), logger)
	}
	var describer *catalog.Describer
	if cfg.OpenAIAPIKey != "" {
		describer = catalog.NewDescriber(cfg.OpenAIAPIKey)
	}

	var recorder *flightrecorder.Service
	if cfg.TracesDir != "" {
		if recorder, err = flightrecorder.New(logger, cfg.TracesDir); err != nil {
			return errors.Wrap(err, "initialise flight recorder")
		}
		if err = recorder.Start(ctx); err != nil {
			return errors.Wrap(err, "start flight recorder")
		}
		defer recorder.Stop(ctx)
	}

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		planService:    plan.NewService(db, logger, session, describer),
		flightRecorder: recorder,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 7 * 24 * time.Hour //nolint:mnd // a week, matching the plan cycle
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
