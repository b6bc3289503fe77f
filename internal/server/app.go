// Package server wires the store, services and REST transport together and
// runs them until the process is signalled to stop.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/auth"
	"github.com/mdrrmo4516/mobile2026/internal/server/config"
	"github.com/mdrrmo4516/mobile2026/internal/server/httpapi"
	"github.com/mdrrmo4516/mobile2026/internal/server/incidents"
	"github.com/mdrrmo4516/mobile2026/internal/server/observability"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/repomanager"
	"github.com/mdrrmo4516/mobile2026/internal/server/seed"
	"github.com/mdrrmo4516/mobile2026/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	store   repomanager.RepositoryManager
	handler *httpapi.Handler
}

// newStore is swapped in tests.
var newStore = repomanager.New

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	store, err := newStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	return newApp(c, logger, store, observability.NewMetrics()), nil
}

func newApp(c *config.Config, logger logging.Logger, store repomanager.RepositoryManager, metrics *observability.Metrics) *App {
	clock := clockwork.NewRealClock()
	tokens := auth.NewTokenService([]byte(c.SecretKey), c.AccessTokenValidityDuration, clock)
	coordinator := seed.NewCoordinator(store.Hotlines(), store.Locations(), logger, metrics)

	handler := httpapi.NewHandler(httpapi.Options{
		Services: httpapi.Services{
			Users:     services.NewUserService(store.Users(), auth.NewBcryptHasher(), tokens, clock, logger),
			Incidents: services.NewIncidentService(store.Incidents(), incidents.NewNormalizer(clock), metrics, logger),
			Hotlines:  services.NewHotlineService(store.Hotlines(), coordinator, logger),
			Locations: services.NewLocationService(store.Locations(), coordinator, logger),
			UserData:  services.NewUserDataService(store.UserData(), clock, logger),
			Status:    services.NewStatusService(store.StatusChecks(), clock),
		},
		Resolver:       auth.NewResolver(tokens, store.Users()),
		Ready:          store,
		Metrics:        metrics,
		Logger:         logger,
		RequestTimeout: c.DBAcquireTimeout,
	})

	return &App{config: c, logger: logger, store: store, handler: handler}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.HTTPAddr, app.handler.Router(), app.config.ShutdownTimeout, app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// closes the store.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
