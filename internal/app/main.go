package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogSentinel/internal/broker"
	kafkabroker "github.com/Egor213/LogSentinel/internal/broker/kafka"
	"github.com/Egor213/LogSentinel/internal/config"
	grpcv1 "github.com/Egor213/LogSentinel/internal/controller/grpc/v1"
	httpv1 "github.com/Egor213/LogSentinel/internal/controller/http/v1"
	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/pipeline"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/scheduler"
	"github.com/Egor213/LogSentinel/internal/service"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/Egor213/LogSentinel/pkg/grpcserver"
	"github.com/Egor213/LogSentinel/pkg/httpserver"
	"github.com/Egor213/LogSentinel/pkg/logger"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Info("Logger has been set up")

	// Migrations
	if err := Migrate(cfg.PG.URL, cfg.PG.MigrationsPath); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Repos
	repositories := repo.NewRepositories(pg)

	// Cache
	statsCache, closeCache, err := newCache(context.Background(), cfg.Cache)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer closeCache()

	// Producer
	brokerProducer := newProducer(cfg.Kafka)
	defer func() {
		if err := brokerProducer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}()

	// Services
	metricsCnt := metrics.New()
	healthReporter := grpcv1.NewHealthReporter()
	deps := service.ServicesDependencies{
		Repos:           repositories,
		TxManager:       pg.TrManager,
		Cache:           statsCache,
		CacheTTL:        cacheTTL(cfg.Cache),
		Counters:        metricsCnt,
		BrokerProducer:  brokerProducer,
		HostSampler:     newHostSampler(cfg.Monitor),
		Prober:          newProber(cfg.Monitor, cfg.Kafka),
		StatusObservers: []service.StatusObserver{healthReporter},
		Auth: service.AuthConfig{
			JWTSecret:   cfg.Auth.JWTSecret,
			TokenTTL:    cfg.Auth.TokenTTL,
			MaxAttempts: cfg.Auth.MaxAttempts,
			LockFor:     cfg.Auth.LockFor,
			RedirectURL: cfg.Auth.RedirectURL,
		},
		Pipeline: pipeline.NewRunner(cfg.Pipeline.LogsDir, cfg.Pipeline.Commands, metricsCnt.PipelineRuns),
	}
	services := service.NewServices(deps)

	if cfg.Auth.AdminUsername != "" && cfg.Auth.AdminPassword != "" {
		if err := services.Auth.EnsureAdmin(context.Background(), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}

	// Scheduler
	sched, err := scheduler.New(scheduler.Config{
		WarmUpSpec:      cfg.Scheduler.WarmUpSpec,
		HostSampleSpec:  cfg.Scheduler.HostSampleSpec,
		StatusCheckSpec: cfg.Scheduler.StatusCheckSpec,
		JobTimeout:      cfg.Scheduler.JobTimeout,
	}, services.Stats, services.Monitoring, services.Status, metrics.NewGauges())
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	sched.Start()

	// HTTP server
	log.Infof("Starting HTTP server...")
	log.Debugf("HTTP server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	handler.HideBanner = true
	httpv1.ConfigureRouter(handler, services, metricsCnt, httpv1.RouterConfig{
		APIKeys: cfg.Auth.APIKeys,
		RateLimit: httpv1.RateLimitConfig{
			RPS:       cfg.RateLimit.RPS,
			Burst:     cfg.RateLimit.Burst,
			ExpiresIn: cfg.RateLimit.ExpiresIn,
		},
		RedirectURL: cfg.Auth.RedirectURL,
	})
	httpServer := httpserver.New(handler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.Timeouts(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("gRPC server port: %s", cfg.GRPC.Port)
	grpcServer, err := grpcserver.New(grpcv1.RegisterServices(healthReporter), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	healthReporter.Shutdown()
	shutdownApp(httpServer, grpcServer, metricsServer, sched)
}

func shutdownApp(httpServer *httpserver.Server, grpcServer *grpcserver.Server, metricsServer *httpserver.Server, sched *scheduler.Scheduler) {
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	sched.Stop()
}

func newProducer(cfg config.Kafka) broker.Producer {
	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info("Kafka disabled, anomaly events are not published")
		return broker.NopProducer{}
	}
	return kafkabroker.NewProducer(kafkabroker.ProducerConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		WriteTimeout: cfg.WriteTimeout,
	})
}
