// Command modulegen generates the typed methods of a module service from its
// module.toml manifest.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "modulegen",
		Usage: "Generate module service methods from a module manifest",
		Commands: []*cli.Command{
			generateCommand(),
			namesCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "modulegen: %v\n", err)
		os.Exit(1)
	}
}
