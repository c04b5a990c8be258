package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var configCmd = &cli.Command{
	Name:   "config",
	Usage:  "Print the effective configuration and exit",
	Action: actionConfig,
}

func actionConfig(c *cli.Context) (err error) {
	env, err := setup(c)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, env.cfg.String())
	return err
}
