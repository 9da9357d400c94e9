// ChessTalk - a viewer for the chess games you are playing on Lichess
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Kaerdin/ChessTalk/internal/app"
	"github.com/Kaerdin/ChessTalk/internal/config"
	"github.com/Kaerdin/ChessTalk/internal/logx"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "chesstalk:", err)
		if errors.Is(err, config.ErrNoToken) {
			fmt.Fprintln(os.Stderr, "run 'chesstalk login' or set", config.TokenEnv)
		}
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "chesstalk",
		Usage: "browse your ongoing Lichess games",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
			},
			&cli.StringFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Usage:   "log level (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:    "console",
				Aliases: []string{"c"},
				Usage:   "human-readable log output",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "append logs to this file instead of stderr",
			},
		},
		Action: runView,
		Commands: []*cli.Command{
			{
				Name:   "view",
				Usage:  "open the board viewer (default)",
				Action: runView,
			},
			{
				Name:  "list",
				Usage: "print every game to the terminal",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSetup(c, func(cfg *config.Config, log *zap.SugaredLogger) error {
						return app.RunList(ctx, cfg, os.Stdout, log)
					})
				},
			},
			{
				Name:  "login",
				Usage: "store a Lichess API token",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withSetup(c, func(cfg *config.Config, log *zap.SugaredLogger) error {
						return app.RunLogin(cfg, os.Stdin, os.Stdout)
					})
				},
			},
		},
	}
}

func runView(ctx context.Context, c *cli.Command) error {
	return withSetup(c, func(cfg *config.Config, log *zap.SugaredLogger) error {
		return app.RunView(ctx, cfg, log)
	})
}

// withSetup loads the config, applies flag overrides and builds the
// logger before calling fn.
func withSetup(c *cli.Command, fn func(*config.Config, *zap.SugaredLogger) error) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("level") {
		cfg.Log.Level = c.String("level")
	}
	if c.IsSet("console") {
		cfg.Log.Console = c.Bool("console")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}

	opts := logx.Options{Level: cfg.Log.Level, Console: cfg.Log.Console}
	if cfg.Log.File != "" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()
		opts.Output = file
	}
	log := logx.New(opts)
	defer log.Sync()

	return fn(cfg, log)
}
