package main

import (
	"log"
	"os"

	tasklistcli "github.com/go-tasklist/tasklist/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "tasklist",
		Usage: "An htmx-driven task list served by Go",
		Commands: []*clilib.Command{
			tasklistcli.DevCommand,
			tasklistcli.ServeCommand,
			tasklistcli.CheckCommand,
			tasklistcli.InfoCommand,
			tasklistcli.CleanCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
