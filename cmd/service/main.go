package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "parceltrack/internal/app"
	"parceltrack/internal/handlers/rest/archive_sweep_post"
	"parceltrack/internal/handlers/rest/backup_run_post"
	"parceltrack/internal/handlers/rest/backup_settings_get"
	"parceltrack/internal/handlers/rest/backup_settings_put"
	"parceltrack/internal/handlers/rest/healthcheck_head"
	"parceltrack/internal/handlers/rest/location_delete"
	"parceltrack/internal/handlers/rest/location_get"
	"parceltrack/internal/handlers/rest/location_post"
	"parceltrack/internal/handlers/rest/location_pricing_put"
	"parceltrack/internal/handlers/rest/location_put"
	"parceltrack/internal/handlers/rest/locations_get"
	"parceltrack/internal/handlers/rest/parcel_deliver_post"
	"parceltrack/internal/handlers/rest/parcel_get"
	"parceltrack/internal/handlers/rest/parcel_post"
	"parceltrack/internal/handlers/rest/parcels_bulk_patch"
	"parceltrack/internal/handlers/rest/parcels_search_get"
	"parceltrack/internal/handlers/rest/ping_get"
	"parceltrack/internal/handlers/rest/storage_location_delete"
	"parceltrack/internal/handlers/rest/storage_location_post"
	"parceltrack/internal/handlers/rest/ticket_get"
	"parceltrack/internal/handlers/rest/ticket_post"
	"parceltrack/internal/handlers/rest/ticket_status_put"
	"parceltrack/internal/handlers/rest/tickets_get"
	"parceltrack/internal/pkg/config"
	"parceltrack/internal/pkg/dotenv"
	metrics_system "parceltrack/internal/pkg/metrics"
	"parceltrack/internal/pkg/middlewares/graceful_shutdown"
	"parceltrack/internal/pkg/middlewares/metrics"
	"parceltrack/internal/pkg/middlewares/rate_limiter"
	"parceltrack/internal/pkg/middlewares/timeout"
	"parceltrack/internal/pkg/postgres"
	"parceltrack/pkg/logger"
	"parceltrack/pkg/logger/zap_adapter"
	"parceltrack/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting parcel-track application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// Таймер ротации висит на ongoingCtx, чтобы прогон, начатый до
	// сигнала, успел доработать во время drain-паузы. Архивация по
	// таймеру не гоняется, только ручной POST /parcels/archive-sweep.
	settings, err := businessApp.ServiceBackup.Settings(ctx)
	if err != nil {
		return fmt.Errorf("backup settings: %w", err)
	}
	if settings.Enabled {
		interval := time.Duration(settings.FrequencyHours) * time.Hour
		if err := businessApp.BackupScheduler.Start(ongoingCtx, interval); err != nil {
			return fmt.Errorf("backup scheduler: %w", err)
		}
	}
	defer businessApp.BackupScheduler.Stop()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	businessApp.BackupScheduler.Stop()

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/parcel", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcel/{id}", parcel_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcel/{id}/deliver", parcel_deliver_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcels/bulk", parcels_bulk_patch.New(log, app.ServiceParcel)).Methods("PATCH")
	router.Handle("/parcels/search", parcels_search_get.New(log, app.ServiceSearch)).Methods("GET")
	router.Handle("/parcels/archive-sweep", archive_sweep_post.New(log, app.ServiceParcel)).Methods("POST")

	router.Handle("/location", location_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/locations", locations_get.New(log, app.ServiceLocation)).Methods("GET")
	router.Handle("/location/{id}", location_get.New(log, app.ServiceLocation)).Methods("GET")
	router.Handle("/location/{id}", location_put.New(log, app.ServiceLocation)).Methods("PUT")
	router.Handle("/location/{id}", location_delete.New(log, app.ServiceLocation)).Methods("DELETE")
	router.Handle("/location/{id}/pricing", location_pricing_put.New(log, app.ServiceLocation)).Methods("PUT")
	router.Handle("/location/{id}/backup/run", backup_run_post.New(log, app.ServiceBackup)).Methods("POST")

	router.Handle("/storage-location", storage_location_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/storage-location/{id}", storage_location_delete.New(log, app.ServiceLocation)).Methods("DELETE")

	router.Handle("/ticket", ticket_post.New(log, app.ServiceTicket)).Methods("POST")
	router.Handle("/tickets", tickets_get.New(log, app.ServiceTicket)).Methods("GET")
	router.Handle("/ticket/{id}", ticket_get.New(log, app.ServiceTicket)).Methods("GET")
	router.Handle("/ticket/{id}/status", ticket_status_put.New(log, app.ServiceTicket)).Methods("PUT")

	router.Handle("/backup/settings", backup_settings_get.New(log, app.ServiceBackup)).Methods("GET")
	router.Handle("/backup/settings", backup_settings_put.New(log, app.ServiceBackup, app.BackupScheduler)).Methods("PUT")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
