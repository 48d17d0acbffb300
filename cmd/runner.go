package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"traktlist/internal/prompt"
	"traktlist/internal/repositories"
	"traktlist/internal/shared"
	"traktlist/internal/trakt"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	client     *trakt.Client
	prompter   prompt.Prompter
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Client     *trakt.Client
	Prompter   prompt.Prompter
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.ConfigPath == "" {
		opts.ConfigPath = "config.toml"
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Prompter == nil {
		opts.Prompter = prompt.NewTerminal()
	}
	if opts.Client == nil {
		opts.Client = trakt.NewClient("", opts.Config.Trakt.ClientID, nil)
		opts.Client.SetToken(opts.Config.Trakt.AccessToken)
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		client:     opts.Client,
		prompter:   opts.Prompter,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, listCommand, syncCommand, cacheCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// saveConfig persists the credential store, called after every mutation.
func (r *Runner) saveConfig() error {
	return shared.SaveConfig(r.config, r.configPath)
}

// openCache opens the search cache database and applies pending migrations.
func (r *Runner) openCache() (*sql.DB, *repositories.SearchCacheRepository, error) {
	path := r.config.Database.Path
	if path == "" {
		path = "traktlist.db"
	}

	db, err := shared.NewDatabase(path)
	if err != nil {
		return nil, nil, err
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, repositories.NewSearchCacheRepository(db), nil
}

// tokenStore adapts the config file to [trakt.TokenStore] with write-through persistence.
type tokenStore struct {
	runner *Runner
}

func (s tokenStore) Token() string { return s.runner.config.Trakt.AccessToken }

func (s tokenStore) SetToken(token string) error {
	s.runner.config.Trakt.AccessToken = token
	return s.runner.saveConfig()
}

// codePrompter adapts [prompt.Prompter] to [trakt.CodePrompter]: it shows the
// authorize URL, tries the browser, and collects the pasted code.
type codePrompter struct {
	runner *Runner
}

func (p codePrompter) AuthCode(authorizeURL string) (string, error) {
	p.runner.writePlain("Authorize the app by visiting:\n  %s\n", authorizeURL)

	if err := shared.OpenBrowser(authorizeURL); err != nil {
		p.runner.logger.Debugf("could not open browser: %v", err)
	}

	return p.runner.prompter.FreeText("Authorization Code:")
}

// session builds an AuthSession over the current credentials.
func (r *Runner) session() *trakt.AuthSession {
	return trakt.NewAuthSession(trakt.AuthConfig{
		ClientID:     r.config.Trakt.ClientID,
		ClientSecret: r.config.Trakt.ClientSecret,
		RedirectURI:  r.config.Trakt.RedirectURI,
	}, tokenStore{runner: r}, codePrompter{runner: r})
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
