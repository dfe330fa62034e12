package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/mailadmin/cmd/app/commands"
	"github.com/allisson/mailadmin/internal/app"
	"github.com/allisson/mailadmin/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create an administrative account (bootstrap: works without a token)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username for the new account",
				},
				&cli.BoolFlag{
					Name:    "superuser",
					Aliases: []string{"s"},
					Value:   false,
					Usage:   "Grant the account superuser rights",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userRepo, err := container.UserRepository()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userRepo,
					container.Logger(),
					cmd.String("username"),
					cmd.Bool("superuser"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "create-token",
			Usage: "Issue a bearer token for an account (bootstrap: works without a token)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username the token authenticates",
				},
				&cli.StringFlag{
					Name:    "label",
					Aliases: []string{"l"},
					Value:   "bootstrap",
					Usage:   "Label describing the token's purpose",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userRepo, err := container.UserRepository()
				if err != nil {
					return err
				}

				tokenRepo, err := container.TokenRepository()
				if err != nil {
					return err
				}

				return commands.RunCreateToken(
					ctx,
					userRepo,
					tokenRepo,
					container.TokenService(),
					container.Logger(),
					cmd.String("username"),
					cmd.String("label"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
