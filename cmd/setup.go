package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"traktlist/internal/shared"
)

// Setup creates the config file and the search cache database, then walks
// through an interactive first-run wizard when credentials are missing.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		r.logger.Warnf("%v", err)
	} else {
		r.writePlain("Created %s\n", path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}
	r.config = config
	r.configPath = path

	db, _, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	r.writePlain("Search cache database ready at %s\n", r.config.Database.Path)

	if !r.config.Trakt.HasClientCredentials() {
		ok, err := r.prompter.Confirm("Enter Trakt API credentials now?", true)
		if err != nil {
			return err
		}
		if ok {
			if err := r.ensureCredentials(); err != nil {
				return err
			}
		} else {
			r.writePlain("Edit %s to add your Trakt client id and secret.\n", path)
			return nil
		}
	}

	r.writePlain("Setup complete. Run 'traktlist auth login' to authorize.\n")
	return nil
}

// ensureCredentials prompts for any missing credential field and persists the
// config after each answer, so an interrupted wizard keeps its progress.
func (r *Runner) ensureCredentials() error {
	fields := []struct {
		value   *string
		message string
	}{
		{&r.config.Trakt.ClientID, "Trakt Client ID:"},
		{&r.config.Trakt.ClientSecret, "Trakt Client Secret:"},
		{&r.config.Trakt.Username, "Trakt Username:"},
	}

	for _, field := range fields {
		if *field.value != "" {
			continue
		}

		answer, err := r.prompter.FreeText(field.message)
		if err != nil {
			return err
		}
		if answer == "" {
			return shared.ErrMissingCredentials
		}

		*field.value = answer
		if err := r.saveConfig(); err != nil {
			return err
		}
	}

	r.client.SetClientID(r.config.Trakt.ClientID)
	return nil
}
