package cli

import (
	"fmt"

	tasklist "github.com/go-tasklist/tasklist"
	"github.com/go-tasklist/tasklist/core"

	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate templates and the route table without serving",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig("tasklist.config.yml")

		// NewApp runs the exact startup path: it parses every page
		// template and registers every route, so duplicate routes and
		// broken templates fail here the same way they would on serve.
		app, err := tasklist.NewApp(config, "dev")
		if err != nil {
			fmt.Printf("❌ %v\n", err)
			return cli.Exit("startup check failed", 1)
		}

		for _, name := range app.Renderer.Names() {
			fmt.Printf("✅ template %s\n", name)
		}

		fmt.Println("✅ All templates and routes validated successfully.")
		return nil
	},
}
