package cli

import (
	"fmt"
	"os"

	"github.com/go-tasklist/tasklist/core"

	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:  "clean",
	Usage: "Delete minified assets from the output directory",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig("tasklist.config.yml")
		target := config.OutputDir

		info, err := os.Stat(target)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", target)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}

		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", target)
		}

		fmt.Println("🧹 Cleaning:", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to clean output dir: %w", err)
		}

		fmt.Println("✅ Done.")
		return nil
	},
}
