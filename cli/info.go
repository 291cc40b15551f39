package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-tasklist/tasklist/core"

	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print project configuration and template/asset summary",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig("tasklist.config.yml")

		fmt.Println("📁 Templates Directory:", config.TemplatesDir)
		fmt.Println("📁 Public Directory:", config.PublicDir)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🔌 Port:", config.Port)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println()

		templateCount := countFiles(config.TemplatesDir, ".html")
		assetCount := countFiles(config.PublicDir, "")
		minifiedCount := countFiles(filepath.Join(config.OutputDir, "static"), ".gz")

		fmt.Println("🗂️  Templates Found:", templateCount)
		fmt.Println("📦 Public Assets:", assetCount)
		fmt.Println("💾 Minified Assets:", minifiedCount)
		fmt.Println("📋 Task Categories:", strings.Join(core.Categories, ", "))

		return nil
	},
}

func countFiles(dir, suffix string) int {
	count := 0
	filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.HasSuffix(path, suffix) {
			count++
		}
		return nil
	})
	return count
}
