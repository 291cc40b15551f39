package cli

import (
	tasklist "github.com/go-tasklist/tasklist"

	"github.com/urfave/cli/v2"
)

var portFlag = &cli.IntFlag{
	Name:  "port",
	Usage: "Port to bind (overrides tasklist.config.yml)",
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start tasklist in dev mode (live reload, templates parsed per request)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		return tasklist.Start(tasklist.RuntimeConfig{
			Env:  "dev",
			Port: c.Int("port"),
		})
	},
}

var ServeCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start tasklist in production mode (minified assets, cached templates)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		return tasklist.Start(tasklist.RuntimeConfig{
			Env:  "prod",
			Port: c.Int("port"),
		})
	},
}
