package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"restaurant-directory/cmd/config"
	"restaurant-directory/internal/utils"
	"syscall"
	"time"

	"github.com/urfave/cli"
)

var version = "v1.0.0"

var flags = []cli.Flag{
	cli.StringFlag{
		Name:  "config",
		Value: utils.DefaultConfigPath,
		Usage: "yaml configuration file, overridden by CONFIG_PATH",
	},
}

func serve(c *cli.Context) error {
	logger, err := utils.NewLogger(utils.IsDebug())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	stores, err := config.ConnectStores(ctx, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(ctx); err != nil {
			logger.Warnw("closing storage", "error", err)
		}
	}()

	app, err := config.NewApp(ctx, stores, logger)
	if err != nil {
		return err
	}

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + utils.GetConfig("APP_PORT"))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return err
	case sig := <-quit:
		logger.Infow("shutting down", "signal", sig.String())
	}
	return app.ShutdownWithTimeout(10 * time.Second)
}

func migrate(c *cli.Context) error {
	logger, err := utils.NewLogger(utils.IsDebug())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	stores, err := config.ConnectStores(ctx, logger)
	if err != nil {
		return err
	}
	logger.Infow("migration completed", "driver", utils.GetConfig("STORAGE_DRIVER"))
	return stores.Close(ctx)
}

func main() {
	app := cli.NewApp()
	app.Name = "restaurant-directory"
	app.Usage = "restaurant directory and menu API"
	app.Version = version
	app.Flags = flags
	app.Before = func(c *cli.Context) error {
		utils.LoadConfig(c.GlobalString("config"))
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "start the HTTP server",
			Action: serve,
		},
		{
			Name:   "migrate",
			Usage:  "create or update the storage schema and exit",
			Action: migrate,
		},
	}
	app.Action = serve

	if err := app.Run(os.Args); err != nil {
		log.Fatal("Error: ", err)
	}
}
