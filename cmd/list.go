package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"traktlist/internal/shared"
	"traktlist/internal/trakt"
)

// ListCreate creates a Trakt list and stores its name as the default.
func (r *Runner) ListCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureAuth(ctx); err != nil {
		return err
	}

	name := cmd.String("name")
	if name == "" {
		var err error
		name, err = r.prompter.FreeText("List name:")
		if err != nil {
			return err
		}
	}
	if name == "" {
		return fmt.Errorf("%w: list name is required", shared.ErrInvalidInput)
	}

	description := cmd.String("description")
	if description == "" && !cmd.IsSet("description") {
		var err error
		description, err = r.prompter.FreeText("Description (optional):")
		if err != nil {
			return err
		}
	}

	privacy := cmd.String("privacy")
	if privacy == "" {
		var err error
		privacy, err = r.prompter.SelectOne("List privacy", []string{"private", "public"})
		if err != nil {
			return err
		}
	}
	if privacy != "private" && privacy != "public" {
		return fmt.Errorf("%w: privacy must be private or public, got %q", shared.ErrInvalidFlag, privacy)
	}

	list, err := r.client.CreateList(ctx, r.config.Trakt.Username, trakt.NewListPayload(name, description, privacy))
	if err != nil {
		if errors.Is(err, shared.ErrQuotaExceeded) {
			return fmt.Errorf("%w: trakt list quota reached, delete an unused list and retry", err)
		}
		return err
	}

	r.config.Trakt.ListName = list.Name
	if err := r.saveConfig(); err != nil {
		return err
	}

	slug := list.IDs.Slug
	if slug == "" {
		slug = shared.Slugify(list.Name)
	}

	r.writePlain("Created list %q (slug %s)\n", list.Name, slug)
	return nil
}

// ListShow probes a list and prints its items.
func (r *Runner) ListShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureAuth(ctx); err != nil {
		return err
	}

	name := cmd.String("name")
	if name == "" {
		name = r.config.Trakt.ListName
	}
	if name == "" {
		return fmt.Errorf("%w: no list name given and none stored", shared.ErrMissingArgument)
	}

	slug := shared.Slugify(name)
	items, err := r.client.ListItems(ctx, r.config.Trakt.Username, slug)
	if err != nil {
		if errors.Is(err, shared.ErrListNotFound) {
			return fmt.Errorf("%w: %q (slug %s) does not exist for user %s", err, name, slug, r.config.Trakt.Username)
		}
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, true)
	}

	r.writePlainHeader(fmt.Sprintf("%s (%d items)", name, len(items)))

	t := table.NewWriter()
	t.SetOutputMirror(r.output)
	t.AppendHeader(table.Row{"#", "Type", "Title", "Year", "Trakt ID"})

	for i, item := range items {
		id, _ := item.TraktID()
		title, year := "", 0
		switch {
		case item.Movie != nil:
			title, year = item.Movie.Title, item.Movie.Year
		case item.Show != nil:
			title, year = item.Show.Title, item.Show.Year
		}
		t.AppendRow(table.Row{i + 1, item.Type, title, year, id})
	}

	t.Render()
	return nil
}
