package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/cloudflare/critters/internal/clock"
	"github.com/cloudflare/critters/internal/config"
	"github.com/cloudflare/critters/internal/critter"
	"github.com/cloudflare/critters/internal/dataset"
)

type env struct {
	clock   clock.Clock
	store   *dataset.Store
	cfg     config.Config
	noColor bool
}

func setup(c *cli.Context) (e env, err error) {
	err = initLogger(c.String(logLevelFlag), c.Bool(noColorFlag))
	if err != nil {
		return e, fmt.Errorf("failed to set log level: %w", err)
	}

	e.noColor = c.Bool(noColorFlag)
	e.cfg, err = config.Load(c.Path(configFlag), c.IsSet(configFlag))
	if err != nil {
		return e, fmt.Errorf("failed to load config file %q: %w", c.Path(configFlag), err)
	}

	e.clock = clock.System{Location: e.cfg.Location()}
	if at := c.String(atFlag); at != "" {
		t, err := clock.ParseTime(at, e.cfg.Location())
		if err != nil {
			return e, fmt.Errorf("invalid --%s value %q: %w", atFlag, at, err)
		}
		slog.Debug("Using fixed time", slog.Time("at", t))
		e.clock = clock.Fixed{Time: t}
	}

	e.store = dataset.NewStore(e.cfg.Sources())
	return e, nil
}

// finder loads the table for kind, every command queries a single kind so
// this is the only load in a run.
func (e env) finder(kind dataset.Kind) (critter.Finder, error) {
	table, err := e.store.Init(kind)
	if err != nil {
		return critter.Finder{}, err
	}
	return critter.NewFinder(table, e.clock), nil
}

func kindArg(c *cli.Context) (dataset.Kind, error) {
	if c.NArg() == 0 {
		return dataset.Fish, errors.New("critter kind is required, expected fish or bug")
	}
	return dataset.ParseKind(c.Args().First())
}
