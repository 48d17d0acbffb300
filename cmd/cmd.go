// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles initialization of the config file and cache database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration file and search cache database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles authorization operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Trakt authorization",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Run the OAuth2 authorization-code flow",
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show stored credential state",
				Action: r.AuthStatus,
			},
		},
	}
}

// listCommand handles Trakt list operations
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Trakt list operations",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a new Trakt list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "List display name",
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "List description",
					},
					&cli.StringFlag{
						Name:  "privacy",
						Usage: "List privacy (private or public)",
					},
				},
				Action: r.ListCreate,
			},
			{
				Name:  "show",
				Usage: "Probe a list and print its items",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "List display name (defaults to the stored list)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ListShow,
			},
		},
	}
}

// syncCommand handles the reconciliation pipeline
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Reconcile a titles file against a Trakt list",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run a full reconciliation",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "list",
						Usage: "List display name (defaults to the stored list)",
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Items file (defaults to <list>_items.txt)",
					},
					&cli.StringFlag{
						Name:    "type",
						Aliases: []string{"t"},
						Usage:   "Media type of the titles (movie or show)",
						Value:   "movie",
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Items per mutation request (max 10)",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Headless mode: accept defaults, never prompt",
					},
				},
				Action: r.SyncRun,
			},
		},
	}
}

// cacheCommand handles search cache inspection and maintenance
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Inspect or clear the title search cache",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print cached title resolutions",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.CacheShow,
			},
			{
				Name:  "rm",
				Usage: "Remove a single cached title",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "title",
					},
				},
				Action: r.CacheRemove,
			},
			{
				Name:  "clear",
				Usage: "Drop every cached resolution",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip confirmation",
					},
				},
				Action: r.CacheClear,
			},
		},
	}
}
