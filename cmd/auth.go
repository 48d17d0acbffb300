package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"traktlist/internal/shared"
)

// AuthLogin runs the authorization-code flow and persists the access token.
//
// When a token is already stored it asks before replacing it; a rejected
// token should be replaced with 'auth login' rather than silently reused.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if !r.config.Trakt.HasClientCredentials() {
		return fmt.Errorf("%w: set trakt client_id and client_secret first (run 'traktlist setup')", shared.ErrMissingCredentials)
	}

	if r.config.Trakt.AccessToken != "" {
		ok, err := r.prompter.Confirm("An access token is already stored. Replace it?", false)
		if err != nil {
			return err
		}
		if !ok {
			r.writePlain("Keeping the existing token.\n")
			return nil
		}
	}

	token, err := r.session().Reauthorize(ctx)
	if err != nil {
		return err
	}

	r.client.SetToken(token)
	r.writePlain("Authorization complete. Token saved to %s\n", r.configPath)
	return nil
}

// ensureAuth makes sure the API client carries valid credentials before an
// authenticated call, obtaining a token interactively when none is stored.
func (r *Runner) ensureAuth(ctx context.Context) error {
	if !r.config.Trakt.HasClientCredentials() {
		if err := r.ensureCredentials(); err != nil {
			return err
		}
	}

	token, err := r.session().Obtain(ctx)
	if err != nil {
		return err
	}

	r.client.SetClientID(r.config.Trakt.ClientID)
	r.client.SetToken(token)
	return nil
}

// AuthStatus reports which credentials are present without revealing them.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.writePlainHeader("Trakt Authorization")

	present := func(v string) string {
		if v == "" {
			return "missing"
		}
		return "set"
	}

	r.writePlain("Client ID:     %s\n", present(r.config.Trakt.ClientID))
	r.writePlain("Client Secret: %s\n", present(r.config.Trakt.ClientSecret))
	r.writePlain("Access Token:  %s\n", present(r.config.Trakt.AccessToken))
	r.writePlain("Username:      %s\n", r.config.Trakt.Username)

	if r.config.Trakt.AccessToken == "" {
		r.writePlain("\nRun 'traktlist auth login' to authorize.\n")
	}

	return nil
}
