package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/cloudflare/critters/internal/critter"
	"github.com/cloudflare/critters/internal/dataset"
)

var fishCmd = &cli.Command{
	Name:  "fish",
	Usage: "List fish that can be caught right now",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:    locationFlag,
			Aliases: []string{"L"},
			Usage:   "Only show fish found in this location, can be repeated",
		},
		&cli.StringSliceFlag{
			Name:    sizeFlag,
			Aliases: []string{"s"},
			Usage:   "Only show fish with this shadow size (1-6, tiny to huge, narrow or fin), can be repeated",
		},
	},
	Action: actionAvailable(dataset.Fish),
}

var bugsCmd = &cli.Command{
	Name:   "bugs",
	Usage:  "List bugs that can be caught right now",
	Action: actionAvailable(dataset.Bugs),
}

var newCmd = &cli.Command{
	Name:      "new",
	Usage:     "List critters that arrived this month",
	ArgsUsage: "fish|bug",
	Action: actionSeason(func(f critter.Finder) []string {
		return f.NewThisMonth()
	}),
}

var expiringCmd = &cli.Command{
	Name:      "expiring",
	Usage:     "List critters that are leaving after this month",
	ArgsUsage: "fish|bug",
	Action: actionSeason(func(f critter.Finder) []string {
		return f.ExpiringThisMonth()
	}),
}

var infoCmd = &cli.Command{
	Name:      "info",
	Usage:     "Show when and where critters can be caught",
	ArgsUsage: "fish|bug NAME...",
	Action:    actionInfo,
}

var topCmd = &cli.Command{
	Name:      "top",
	Usage:     "Rank critters by their value",
	ArgsUsage: "fish|bug",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    limitFlag,
			Aliases: []string{"t"},
			Usage:   "Number of critters to show, a negative value hides that many of the least valuable ones (default from config)",
		},
	},
	Action: actionTop,
}

func printNames(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func actionAvailable(kind dataset.Kind) cli.ActionFunc {
	return func(c *cli.Context) error {
		env, err := setup(c)
		if err != nil {
			return err
		}
		f, err := env.finder(kind)
		if err != nil {
			return err
		}

		filter := critter.AvailableFilter{}
		if kind.HasShadowSize() {
			filter.Locations = c.StringSlice(locationFlag)
			filter.Sizes = c.StringSlice(sizeFlag)
		}
		names := f.Available(filter)
		slog.Debug("Found available critters", slog.String("kind", kind.String()), slog.Int("count", len(names)))
		return printNames(c.App.Writer, names)
	}
}

func actionSeason(fn func(critter.Finder) []string) cli.ActionFunc {
	return func(c *cli.Context) error {
		env, err := setup(c)
		if err != nil {
			return err
		}
		kind, err := kindArg(c)
		if err != nil {
			return err
		}
		f, err := env.finder(kind)
		if err != nil {
			return err
		}
		return printNames(c.App.Writer, fn(f))
	}
}

func actionInfo(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	kind, err := kindArg(c)
	if err != nil {
		return err
	}
	names := c.Args().Tail()
	if len(names) == 0 {
		return fmt.Errorf("at least one %s name is required", kind)
	}
	f, err := env.finder(kind)
	if err != nil {
		return err
	}

	merged := critter.Info{Kind: kind}
	for _, name := range names {
		info, err := f.InfoFor(name)
		if err != nil {
			return err
		}
		merged = merged.Merge(info)
	}
	return merged.Table().Render(c.App.Writer, env.noColor)
}

func actionTop(c *cli.Context) error {
	env, err := setup(c)
	if err != nil {
		return err
	}
	kind, err := kindArg(c)
	if err != nil {
		return err
	}
	f, err := env.finder(kind)
	if err != nil {
		return err
	}

	limit := env.cfg.MostValuable()
	if c.IsSet(limitFlag) {
		limit = c.Int(limitFlag)
	}
	return f.MostValuable(limit).Table().Render(c.App.Writer, env.noColor)
}
