package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/cloudflare/critters/internal/output"
)

var rangesCmd = &cli.Command{
	Name:      "ranges",
	Usage:     "Compress a list of numbers into ranges, use it for debugging dataset hours and months.",
	ArgsUsage: "N,N,...",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  monthsFlag,
			Usage: "Treat numbers as months and print their labels",
		},
	},
	Action: actionRanges,
}

func actionRanges(c *cli.Context) (err error) {
	err = initLogger(c.String(logLevelFlag), c.Bool(noColorFlag))
	if err != nil {
		return fmt.Errorf("failed to set log level: %w", err)
	}

	parts := c.Args().Slice()
	if len(parts) == 0 {
		return errors.New("a list of numbers is required")
	}

	s, err := output.FormatRanges(strings.Join(parts, ","))
	if err != nil {
		return err
	}
	if c.Bool(monthsFlag) {
		if s, err = output.LabelMonths(s); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(c.App.Writer, s)
	return err
}
