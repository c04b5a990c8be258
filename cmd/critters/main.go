package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/cloudflare/critters/internal/log"
)

const (
	configFlag   = "config"
	logLevelFlag = "log-level"
	noColorFlag  = "no-color"
	atFlag       = "at"
	locationFlag = "location"
	sizeFlag     = "size"
	limitFlag    = "limit"
	monthsFlag   = "months"
)

var (
	version = "unknown"
	commit  = "unknown"
)

func newApp() *cli.App {
	return &cli.App{
		Usage: "Fish and bug availability lookups",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    configFlag,
				Aliases: []string{"c"},
				Value:   ".critters.hcl",
				Usage:   "Configuration file to use",
			},
			&cli.StringFlag{
				Name:    logLevelFlag,
				Aliases: []string{"l"},
				Value:   slog.LevelInfo.String(),
				Usage:   "Log level",
			},
			&cli.BoolFlag{
				Name:    noColorFlag,
				Aliases: []string{"n"},
				Value:   false,
				Usage:   "Disable output colouring",
			},
			&cli.StringFlag{
				Name:  atFlag,
				Usage: "Pretend the current time is this instead of the wall clock, example: 2024-06-01T21:00",
			},
		},
		Commands: []*cli.Command{
			versionCmd,
			fishCmd,
			bugsCmd,
			newCmd,
			expiringCmd,
			infoCmd,
			topCmd,
			rangesCmd,
			configCmd,
		},
	}
}

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Execution completed with error(s)", slog.Any("err", err))
		os.Exit(1)
	}
}

func initLogger(level string, noColor bool) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.Setup(os.Stderr, l, noColor)
	return nil
}
