package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aeshevdaniyar/medusa/internal/application/modulesdk"
	"github.com/aeshevdaniyar/medusa/internal/modulegen"
	"github.com/urfave/cli/v3"
)

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Render the typed methods file of a module",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to the module manifest",
				Value:   "module.toml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file, relative to the manifest directory",
				Value:   "service_gen.go",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Fail when the output file is not up to date instead of writing it",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	manifestPath := cmd.String("manifest")
	m, err := modulegen.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	out, err := modulegen.Generate(m, filepath.Base(manifestPath))
	if err != nil {
		return err
	}

	target := cmd.String("output")
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(manifestPath), target)
	}

	if cmd.Bool("check") {
		current, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", target, err)
		}
		if !bytes.Equal(current, out) {
			return fmt.Errorf("%s is stale", target)
		}
		return nil
	}

	if err := os.WriteFile(target, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	fmt.Fprintf(cmd.Root().Writer, "wrote %s\n", target)
	return nil
}

func namesCommand() *cli.Command {
	return &cli.Command{
		Name:      "names",
		Usage:     "Print the method names derived for an entity",
		ArgsUsage: "<entity>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "singular", Usage: "Singular name override"},
			&cli.StringFlag{Name: "plural", Usage: "Plural name override"},
			&cli.BoolFlag{Name: "main", Usage: "Derive the unsuffixed names of a main entity"},
		},
		Action: runNames,
	}
}

func runNames(ctx context.Context, cmd *cli.Command) error {
	name := cmd.Args().First()
	if name == "" {
		return fmt.Errorf("entity name is required")
	}

	model := modulesdk.Model(name).
		WithSingular(cmd.String("singular")).
		WithPlural(cmd.String("plural"))
	names := modulesdk.MethodNames(model, !cmd.Bool("main"))

	for _, op := range modulesdk.Operations {
		fmt.Fprintf(cmd.Root().Writer, "%-14s %s\n", op, names[op])
	}
	return nil
}
