package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/theoremus-urban-solutions/ticket-office/config"
	"github.com/theoremus-urban-solutions/ticket-office/internal"
	"github.com/theoremus-urban-solutions/ticket-office/office"
)

func main() {
	internal.InitLogging()

	app := &cli.App{
		Name:  "ticket-office",
		Usage: "Registers routes and fare tickets, answers cheapest-trip queries",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to the config file (defaults to config.yml / config.yaml)",
			},
			&cli.StringFlag{
				Name:  "input",
				Usage: "Request script: file path, http(s) URL, or '-' for stdin",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (trace|debug|info|warn|error|fatal|panic|disabled)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (console|json)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}

func run(c *cli.Context) error {
	if err := config.LoadAppConfig(c.String("config")); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg := config.Config
	if v := c.String("input"); v != "" {
		cfg.Input.Path = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if v := c.String("log-format"); v != "" {
		cfg.Logging.Format = v
	}
	if err := internal.ApplyLogConfig(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}

	in, err := newSource().open(cfg.Input.Path)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer func() { _ = in.Close() }()

	o := office.NewOffice(os.Stdout, os.Stderr)
	return o.Run(in)
}
