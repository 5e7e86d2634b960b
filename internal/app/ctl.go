package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Egor213/LogSentinel/internal/broker"
	"github.com/Egor213/LogSentinel/internal/cli"
	"github.com/Egor213/LogSentinel/internal/config"
	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/Egor213/LogSentinel/pkg/logger"
	"github.com/Egor213/LogSentinel/pkg/postgres"
)

// RunCtl executes one sentinelctl command against the configured database and
// returns the process exit code.
func RunCtl(args []string) int {
	cfg, err := config.New()
	if err != nil {
		return fail(err)
	}
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	logger.Silence()

	if err := Migrate(cfg.PG.URL, cfg.PG.MigrationsPath); err != nil {
		return fail(err)
	}

	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		return fail(err)
	}
	defer pg.Close()

	ctx := context.Background()
	statsCache, closeCache, err := newCache(ctx, cfg.Cache)
	if err != nil {
		return fail(err)
	}
	defer closeCache()

	services := service.NewServices(service.ServicesDependencies{
		Repos:          repo.NewRepositories(pg),
		TxManager:      pg.TrManager,
		Cache:          statsCache,
		CacheTTL:       cacheTTL(cfg.Cache),
		Counters:       metrics.NewLocal(),
		BrokerProducer: broker.NopProducer{},
		HostSampler:    newHostSampler(cfg.Monitor),
		Auth:           service.AuthConfig{JWTSecret: cfg.Auth.JWTSecret},
	})

	c := cli.New(cli.Services{Maintenance: services.Maintenance, Auth: services.Auth}, os.Stdin, os.Stdout)
	if err := c.Run(ctx, args); err != nil {
		if errors.Is(err, cli.ErrAborted) {
			return 1
		}
		return fail(err)
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, "error:", err)
	return 1
}
