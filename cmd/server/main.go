// Command server runs the admin API of the product module.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/application/product"
	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/auth"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/config"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/event"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/logger"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/persistence"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/telemetry"
	"github.com/aeshevdaniyar/medusa/internal/interfaces/http/handler"
	"github.com/aeshevdaniyar/medusa/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: logger.DefaultConfig().TimeFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Server exited gracefully")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	telemetryCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}

	lp, err := telemetry.NewLoggerProvider(ctx, telemetryCfg, cfg.Telemetry.LogsEnabled, log)
	if err != nil {
		return err
	}
	defer shutdown(log, "logger provider", lp.Shutdown)
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	log = lp.Bridge(log, cfg.Telemetry.ServiceName, level)

	tp, err := telemetry.NewTracerProvider(ctx, telemetryCfg, log)
	if err != nil {
		return err
	}
	defer shutdown(log, "tracer provider", tp.Shutdown)

	profiler, err := telemetry.NewProfiler(telemetry.ProfilerConfig{
		Enabled:           cfg.Profiler.Enabled,
		ServerAddress:     cfg.Profiler.ServerAddress,
		ApplicationName:   cfg.Telemetry.ServiceName,
		ProfileTypes:      cfg.Profiler.ProfileTypes,
		BasicAuthUser:     cfg.Profiler.BasicAuthUser,
		BasicAuthPassword: cfg.Profiler.BasicAuthPassword,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := profiler.Stop(); err != nil {
			log.Error("Error stopping profiler", zap.Error(err))
		}
	}()
	if profiler.IsEnabled() && cfg.Profiler.SpanProfiles {
		tp.EnableSpanProfiles()
	}

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.MetricsEnabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		return err
	}
	defer shutdown(log, "meter provider", mp.Shutdown)

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			return err
		}
	}

	dbSystem := "postgresql"
	if cfg.Database.Driver == config.DriverSQLite {
		dbSystem = "sqlite"
	}
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:  cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		DBSystem: dbSystem,
	}, log); err != nil {
		return fmt.Errorf("failed to register database tracing: %w", err)
	}

	bus, err := event.NewEventBus(cfg, log)
	if err != nil {
		return err
	}

	container := persistence.RegisterProductModule(modulesdk.NewContainer(), db.DB, log)
	if bus != nil {
		if err := bus.Start(ctx); err != nil {
			return fmt.Errorf("failed to start event bus: %w", err)
		}
		defer shutdown(log, "event bus", bus.Stop)
		container.Register(modulesdk.EventBusModuleServiceKey, shared.EventBusModuleService(bus))
	}

	moduleMetrics, err := telemetry.NewModuleMetrics(mp.Meter("medusa/product"), shared.ErrorCode)
	if err != nil {
		return err
	}

	productService, err := product.NewService(container, log, modulesdk.WithRecorder(moduleMetrics))
	if err != nil {
		return fmt.Errorf("failed to build product module: %w", err)
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	routerCfg := router.DefaultConfig()
	routerCfg.CORS.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	routerCfg.Tracing.Enabled = cfg.Telemetry.Enabled
	routerCfg.Tracing.ServiceName = cfg.Telemetry.ServiceName
	if cfg.Auth.JWTSecret != "" {
		tokens, err := auth.NewJWTService(auth.Config{
			Secret:   cfg.Auth.JWTSecret,
			Issuer:   cfg.Auth.Issuer,
			TokenTTL: cfg.Auth.TokenTTL,
		})
		if err != nil {
			return err
		}
		routerCfg.Auth = tokens
	} else {
		log.Warn("auth.jwt_secret is not set, admin API is unauthenticated")
	}

	engine := router.New(routerCfg, log).
		RegisterRoot(handler.NewHealthHandler(db)).
		Register(handler.NewProductHandler(productService)).
		Engine()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func shutdown(log *zap.Logger, name string, fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Error("Shutdown failed", zap.String("component", name), zap.Error(err))
	}
}
