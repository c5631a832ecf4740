package main

import (
	"Tweeter/config"
	"Tweeter/dao"
	"Tweeter/pkg/database"
	"Tweeter/pkg/log"
	"Tweeter/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "tweet / comment / reaction api",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "yaml config file",
				Value:   fmt.Sprintf("configs/config.%s.yaml", env),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "run migrations before serving"},
				},
				Action: func(ctx *cli.Context) error {
					cfg := loadConfig(ctx)
					if ctx.Bool("migrate") {
						if err := migrate(ctx, cfg); err != nil {
							return err
						}
					}
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create tables and seed reaction statuses",
				Action: func(ctx *cli.Context) error {
					return migrate(ctx, loadConfig(ctx))
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("api-server exited", zap.Error(err))
	}
}

func loadConfig(ctx *cli.Context) *config.Config {
	cfg := config.New(ctx.String("config"))
	log.SetLevel(cfg.App.LogLevel)
	return cfg
}

func migrate(ctx *cli.Context, cfg *config.Config) error {
	db, err := database.NewDB(cfg)
	if err != nil {
		return err
	}
	if err := dao.Migrate(ctx.Context, db); err != nil {
		return err
	}
	log.L.Info("migrate done", zap.String("driver", cfg.Database.Driver))
	return nil
}
