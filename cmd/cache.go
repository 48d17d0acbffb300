package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"traktlist/internal/shared"
)

// CacheShow prints every cached title resolution.
func (r *Runner) CacheShow(ctx context.Context, cmd *cli.Command) error {
	db, repo, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	entries, err := repo.List()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, true)
	}

	if len(entries) == 0 {
		r.writePlain("Search cache is empty.\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Search Cache (%d entries)", len(entries)))

	t := table.NewWriter()
	t.SetOutputMirror(r.output)
	t.AppendHeader(table.Row{"Title", "Type", "Trakt ID", "Cached At"})
	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Title, entry.MediaType, entry.TraktID, entry.CreatedAt.Format("2006-01-02 15:04")})
	}
	t.Render()

	return nil
}

// CacheRemove drops a single cached title. The match is exact: cache keys are
// the raw trimmed titles, case intact.
func (r *Runner) CacheRemove(ctx context.Context, cmd *cli.Command) error {
	title := cmd.StringArg("title")
	if title == "" {
		return fmt.Errorf("%w: title argument is required", shared.ErrMissingArgument)
	}

	db, repo, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := repo.Delete(title)
	if err != nil {
		return err
	}

	if removed == 0 {
		r.writePlain("No cache entry for %q.\n", title)
		return nil
	}

	r.writePlain("Removed cached resolution for %q.\n", title)
	return nil
}

// CacheClear drops every cached resolution after confirmation.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("yes") {
		ok, err := r.prompter.Confirm("Drop every cached title resolution?", false)
		if err != nil {
			return err
		}
		if !ok {
			r.writePlain("Cache left untouched.\n")
			return nil
		}
	}

	db, repo, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	removed, err := repo.Clear()
	if err != nil {
		return err
	}

	r.writePlain("Removed %d cache entries.\n", removed)
	return nil
}
