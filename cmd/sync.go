package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"traktlist/internal/shared"
	"traktlist/internal/tasks"
	"traktlist/internal/trakt"
)

// SyncRun reconciles a titles file against a Trakt list: resolve every title
// to a Trakt id, skip what the list already holds, submit the rest in paced
// batches, and print a summary.
func (r *Runner) SyncRun(ctx context.Context, cmd *cli.Command) error {
	headless := cmd.Bool("yes")

	if err := r.ensureAuth(ctx); err != nil {
		return err
	}

	mediaType, err := trakt.ParseMediaType(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	listName, err := r.resolveListName(ctx, cmd.String("list"), headless)
	if err != nil {
		return err
	}

	if err := r.ensureListExists(ctx, listName, headless); err != nil {
		return err
	}

	itemsPath := cmd.String("file")
	if itemsPath == "" {
		itemsPath = itemsFileName(listName)
	}

	titles, err := r.loadTitles(itemsPath, headless)
	if err != nil {
		return err
	}
	if len(titles) == 0 {
		r.writePlain("Nothing to sync: %s holds no titles.\n", itemsPath)
		return nil
	}

	db, repo, err := r.openCache()
	if err != nil {
		return err
	}
	defer db.Close()

	engine := tasks.NewEngine(r.client, repo, nil, cmd.Int("batch-size"))

	progress := make(chan tasks.ProgressUpdate, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Infof("%s", update.Message)
		}
	}()

	result, runErr := engine.Run(ctx, progress, tasks.RunOptions{
		Username:  r.config.Trakt.Username,
		ListName:  listName,
		MediaType: mediaType,
		Titles:    titles,
	})

	close(progress)
	<-done

	if runErr != nil {
		if errors.Is(runErr, shared.ErrAuthExpired) {
			return r.recoverAuth(ctx)
		}
		return runErr
	}

	r.printSummary(listName, result)
	return nil
}

// recoverAuth handles a mid-run token rejection: reauthorize, persist the new
// token, and tell the user to rerun. The run is not resumed in-process; a
// rerun is cheap because resolutions are cached and existing items are skipped.
func (r *Runner) recoverAuth(ctx context.Context) error {
	r.writePlain("Trakt rejected the access token. Starting reauthorization.\n")

	if _, err := r.session().Reauthorize(ctx); err != nil {
		return fmt.Errorf("reauthorization failed: %w", err)
	}

	r.writePlain("New token saved. Run 'traktlist sync run' again to finish the sync.\n")
	return nil
}

// resolveListName picks the list to sync against: the --list flag wins, then
// the stored default, then an interactive choice over the account's lists.
func (r *Runner) resolveListName(ctx context.Context, flagName string, headless bool) (string, error) {
	if flagName != "" {
		return flagName, nil
	}

	if stored := r.config.Trakt.ListName; stored != "" {
		if headless {
			return stored, nil
		}

		ok, err := r.prompter.Confirm(fmt.Sprintf("Sync to stored list %q?", stored), true)
		if err != nil {
			return "", err
		}
		if ok {
			return stored, nil
		}
	}

	if headless {
		return "", fmt.Errorf("%w: no list name; pass --list or store one with 'list create'", shared.ErrMissingArgument)
	}

	return r.chooseList(ctx)
}

const createNewChoice = "[ create a new list ]"

// chooseList offers the account's existing lists plus a create option.
func (r *Runner) chooseList(ctx context.Context) (string, error) {
	lists, err := r.client.UserLists(ctx, r.config.Trakt.Username)
	if err != nil {
		return "", err
	}

	choices := []string{}
	for _, list := range lists {
		choices = append(choices, list.Name)
	}
	choices = append(choices, createNewChoice)

	choice, err := r.prompter.SelectOne("Pick a list", choices)
	if err != nil {
		return "", err
	}

	if choice == createNewChoice {
		choice, err = r.prompter.FreeText("New list name:")
		if err != nil {
			return "", err
		}
		if choice == "" {
			return "", fmt.Errorf("%w: list name is required", shared.ErrInvalidInput)
		}
	}

	r.config.Trakt.ListName = choice
	if err := r.saveConfig(); err != nil {
		return "", err
	}

	return choice, nil
}

// ensureListExists probes the list and creates it when missing. Creation is
// automatic in headless mode and confirmed interactively otherwise.
func (r *Runner) ensureListExists(ctx context.Context, name string, headless bool) error {
	slug := shared.Slugify(name)

	exists, err := r.client.ListExists(ctx, r.config.Trakt.Username, slug)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if !headless {
		ok, err := r.prompter.Confirm(fmt.Sprintf("List %q does not exist. Create it?", name), true)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %q (slug %s)", shared.ErrListNotFound, name, slug)
		}
	}

	if _, err := r.client.CreateList(ctx, r.config.Trakt.Username, trakt.NewListPayload(name, "", "private")); err != nil {
		if errors.Is(err, shared.ErrQuotaExceeded) {
			return fmt.Errorf("%w: trakt list quota reached, delete an unused list and retry", err)
		}
		return err
	}

	r.logger.Infof("created list %q", name)
	return nil
}

// loadTitles reads the items file, collecting titles interactively and
// writing the file first when it does not exist yet. An existing file is
// offered rather than read unconditionally; declining it re-collects the
// titles and overwrites the file.
func (r *Runner) loadTitles(path string, headless bool) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if headless {
			return nil, fmt.Errorf("%w: items file %s does not exist", shared.ErrMissingArgument, path)
		}
		return r.collectTitles(path)
	}

	if !headless {
		ok, err := r.prompter.Confirm(fmt.Sprintf("Use the items file %q?", path), true)
		if err != nil {
			return nil, err
		}
		if !ok {
			return r.collectTitles(path)
		}
	}

	return readTitlesFile(path)
}

// collectTitles gathers titles one per prompt until the user types done,
// then persists them so the next run can skip the interview.
func (r *Runner) collectTitles(path string) ([]string, error) {
	r.writePlain("No items file at %s. Enter titles one per line; type 'done' to finish.\n", path)

	titles := []string{}
	for {
		title, err := r.prompter.FreeText(fmt.Sprintf("Title %d:", len(titles)+1))
		if err != nil {
			return nil, err
		}

		title = strings.TrimSpace(title)
		if strings.EqualFold(title, "done") {
			break
		}
		if title == "" {
			continue
		}

		titles = append(titles, title)
	}

	if len(titles) > 0 {
		if err := writeTitlesFile(path, titles); err != nil {
			return nil, err
		}
		r.writePlain("Saved %d titles to %s\n", len(titles), path)
	}

	return titles, nil
}

// batchTotals sums the server's per-batch accounting across both media types.
func batchTotals(batches []tasks.BatchResult) (added, existing int) {
	for _, batch := range batches {
		added += batch.Added.Movies + batch.Added.Shows
		existing += batch.Existing.Movies + batch.Existing.Shows
	}
	return added, existing
}

// printSummary renders the run accounting as a table plus cache stats.
func (r *Runner) printSummary(listName string, result *tasks.RunResult) {
	added, existing := batchTotals(result.Batches)

	r.writePlainln("Sync of %q (slug %s) complete.", listName, result.Slug)

	t := table.NewWriter()
	t.SetOutputMirror(r.output)
	t.AppendHeader(table.Row{"Outcome", "Count"})
	t.AppendRows([]table.Row{
		{"Resolved", len(result.Resolved)},
		{"Added", added},
		{"Skipped (already in list)", len(result.Skipped) + existing},
		{"Not found", len(result.NotFound)},
	})
	t.AppendFooter(table.Row{"Batches submitted", len(result.Batches)})
	t.Render()

	r.writePlain("Cache: %d hits, %d new entries.\n", result.CacheHits, result.CacheAdds)

	for _, title := range result.NotFound {
		r.logger.Warnf("no match found for %q", title)
	}
}
