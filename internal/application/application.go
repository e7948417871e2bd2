package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/slab-designer/internal/api"
	"github.com/eugenenazirov/slab-designer/internal/config"
	"github.com/eugenenazirov/slab-designer/internal/instance"
	"github.com/eugenenazirov/slab-designer/internal/metrics"
	"github.com/eugenenazirov/slab-designer/internal/storage"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	storage storage.Storage
	handler *api.Handler
	router  http.Handler
	logger  *zap.Logger
	server  *http.Server
}

// New initializes the application with all dependencies from the provided
// configuration. When an instance file is configured it is loaded up front;
// a failure there is fatal, matching the rule that table construction must
// abort rather than continue with a partial profile.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	store := storage.NewMemoryStorage()

	if cfg.InstanceFile != "" {
		inst, err := instance.Load(cfg.InstanceFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load initial instance: %w", err)
		}
		if err := store.Set(inst); err != nil {
			return nil, fmt.Errorf("failed to apply initial instance: %w", err)
		}
		metrics.RegisterDefault()
		metrics.WasteTableEntries.Set(float64(inst.SumQuantities() + 1))
		logger.Info("instance loaded",
			zap.String("file", cfg.InstanceFile),
			zap.Int("orders", inst.NbOrders()),
			zap.Int("slab_sizes", len(inst.SlabSizes)),
			zap.Int("max_size", inst.MaxSize()),
		)
	}

	handler := api.NewHandler(store)
	router := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	server := NewServer(cfg, router)

	return &App{
		storage: store,
		handler: handler,
		router:  router,
		logger:  logger,
		server:  server,
	}, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
