// Command tunes is the terminal client for the search proxy: it logs in,
// runs searches, and offers an interactive browse-and-favourite UI.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"tunes-proxy-go/client"
	"tunes-proxy-go/services/itunes"
	"tunes-proxy-go/ui"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

func main() {
	app := &cli.Command{
		Name:  "tunes",
		Usage: "Search iTunes media through the authenticated proxy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Usage: "Base URL of the proxy server",
				Value: "http://localhost:8080",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Identity to log in as",
				Value:   "demo-user",
			},
		},
		Commands: []*cli.Command{
			loginCommand(),
			searchCommand(),
			tuiCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

func apiClient(cmd *cli.Command) *client.Client {
	return client.New(cmd.String("server"), nil)
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Obtain a bearer token and print it",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tok, err := apiClient(cmd).Login(ctx, cmd.String("username"))
			if err != nil {
				return err
			}
			fmt.Println(tok)
			return nil
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Run a one-shot search and print the results",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "term",
				Aliases:  []string{"t"},
				Usage:    "Search term",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "media",
				Aliases: []string{"m"},
				Usage:   "Media type filter (movie, podcast, music, ...)",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Maximum number of results",
				Value:   itunes.DefaultLimit,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			api := apiClient(cmd)

			tok, err := api.Login(ctx, cmd.String("username"))
			if err != nil {
				return err
			}

			resp, err := api.Search(ctx, tok, itunes.Query{
				Term:  cmd.String("term"),
				Media: cmd.String("media"),
				Limit: int(cmd.Int("limit")),
			})
			if err != nil {
				return err
			}

			logger.Infof("%d result(s)", resp.ResultCount)
			for _, r := range resp.Results {
				line := r.DisplayTitle()
				if r.ArtistName != "" {
					line = fmt.Sprintf("%s — %s", line, r.ArtistName)
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func tuiCommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Browse results and manage favourites interactively",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			api := apiClient(cmd)

			tok, err := api.Login(ctx, cmd.String("username"))
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			// Keep log output away from the TUI renderer.
			if devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0); err == nil {
				logger.SetOutput(devNull)
			}

			model := ui.NewModel(ctx, api, tok)
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}
}
