package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shareregistry/backoffice/cmd/registryctl/cli"
	"github.com/shareregistry/backoffice/internal/app"
	"github.com/shareregistry/backoffice/internal/auth"
	"github.com/shareregistry/backoffice/internal/platform/cache"
	"github.com/shareregistry/backoffice/internal/platform/crud"
	"github.com/shareregistry/backoffice/migrations"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.Backend{
		Transfers: func(ctx context.Context) (map[string]crud.Transfer, func(), error) {
			data, err := openData(ctx)
			if err != nil {
				return nil, nil, err
			}
			return data.Registry.Transfers(), data.Close, nil
		},
		Users: func(ctx context.Context) (auth.Repository, func(), error) {
			data, err := openData(ctx)
			if err != nil {
				return nil, nil, err
			}
			return data.Users, data.Close, nil
		},
		Migrator: func(context.Context) (cli.Migrator, func(), error) {
			cfg, err := app.LoadConfig()
			if err != nil {
				return nil, nil, fmt.Errorf("load config: %w", err)
			}
			m, err := migrations.New(cfg.PGDSN)
			if err != nil {
				return nil, nil, err
			}
			return m, func() { _ = m.Close() }, nil
		},
		Jobs: func(context.Context) (*cli.JobsCLI, error) {
			cfg, err := app.LoadConfig()
			if err != nil {
				return nil, err
			}
			opts := cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
			return cli.NewJobsCLI(opts.AsynqOpt()), nil
		},
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "registryctl:", err)
		os.Exit(1)
	}
}

func openData(ctx context.Context) (*app.Data, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.OpenData(ctx, cfg, app.NewLogger(cfg))
}
