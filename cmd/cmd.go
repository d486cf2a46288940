// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// serveCommand runs the REST API.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the catalog HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (overrides server.host)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides server.port and PORT)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles database and configuration setup.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Initialize database and run migrations",
				Action: r.SetupDatabase,
			},
			{
				Name:   "rollback",
				Usage:  "Roll back the most recent migration",
				Action: r.SetupRollback,
			},
			{
				Name:   "config",
				Usage:  "Write a config.toml populated with defaults",
				Action: r.SetupConfig,
			},
		},
	}
}

// statsCommand prints row counts.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show row counts for the catalog tables",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print JSON output",
				Value: true,
			},
		},
		Action: r.Stats,
	}
}

// exportCommand writes playlists to disk.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export playlists to files",
		Commands: []*cli.Command{
			{
				Name:  "playlist",
				Usage: "Export a single playlist",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Playlist ID to export",
						Required: true,
					},
					formatFlag(),
					outputFlag(),
				},
				Action: r.ExportPlaylist,
			},
			{
				Name:  "all",
				Usage: "Export every playlist concurrently and write a manifest",
				Flags: []cli.Flag{
					formatFlag(),
					outputFlag(),
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Concurrent writers (default: export.workers)",
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Playlist loads per second (default: export.rate_limit)",
					},
				},
				Action: r.ExportAll,
			},
		},
	}
}

// browseCommand launches the terminal catalog browser.
func browseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "browse",
		Aliases: []string{"tui", "ui"},
		Usage:   "Browse artists, albums, tracks and playlists interactively",
		Action:  r.Browse,
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Export format: csv, markdown, txt or json (default: export.format)",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output directory (default: export.output_dir)",
	}
}
