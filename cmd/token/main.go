// Command token issues bearer tokens for the admin API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aeshevdaniyar/medusa/internal/infrastructure/auth"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/config"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "token: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "token",
		Usage:     "Issue an admin API bearer token",
		ArgsUsage: "<actor-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Directory holding medusa-config.toml"},
			&cli.StringFlag{Name: "actor-type", Value: string(auth.ActorUser), Usage: "Actor type: user or api_key"},
			&cli.StringFlag{Name: "auth-identity", Usage: "Auth identity id recorded in the token"},
			&cli.DurationFlag{Name: "ttl", Usage: "Token lifetime, defaults to auth.token_ttl"},
		},
		Action: issue,
	}
}

func issue(_ context.Context, cmd *cli.Command) error {
	actorID := cmd.Args().First()
	if actorID == "" {
		return fmt.Errorf("actor id is required")
	}
	actorType := auth.ActorType(cmd.String("actor-type"))
	if actorType != auth.ActorUser && actorType != auth.ActorAPIKey {
		return fmt.Errorf("unknown actor type %q", actorType)
	}

	var paths []string
	if dir := cmd.String("config"); dir != "" {
		paths = append(paths, dir)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ttl := cfg.Auth.TokenTTL
	if d := cmd.Duration("ttl"); d > 0 {
		ttl = d
	}
	svc, err := auth.NewJWTService(auth.Config{Secret: cfg.Auth.JWTSecret, Issuer: cfg.Auth.Issuer, TokenTTL: ttl})
	if err != nil {
		return err
	}

	token, expiresAt, err := svc.Issue(actorID, actorType, cmd.String("auth-identity"))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.Root().Writer, token)
	fmt.Fprintf(cmd.Root().ErrWriter, "expires at %s\n", expiresAt.Format("2006-01-02T15:04:05Z07:00"))
	return nil
}
