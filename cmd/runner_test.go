package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"traktlist/internal/prompt"
	"traktlist/internal/shared"
	tu "traktlist/internal/testing"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	output := &bytes.Buffer{}

	config := shared.DefaultConfig()
	config.Database.Path = filepath.Join(dir, "traktlist.db")

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: filepath.Join(dir, "config.toml"),
		Prompter:   &prompt.Scripted{},
		Logger:     shared.NewLogger(output),
		Output:     output,
	})

	return runner, output
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			prompter := &prompt.Scripted{}

			runner := NewRunner(RunnerOpts{
				Config:   config,
				Logger:   logger,
				Output:   output,
				Prompter: prompter,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.prompter != prompter {
				t.Error("expected prompter to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.client == nil {
				t.Error("expected a default API client")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("register wires every command", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		commands := runner.register()

		want := []string{"setup", "auth", "list", "sync", "cache"}
		if len(commands) != len(want) {
			t.Fatalf("expected %d commands, got %d", len(want), len(commands))
		}
		for i, name := range want {
			if commands[i].Name != name {
				t.Errorf("command %d: expected %q, got %q", i, name, commands[i].Name)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("pretty", func(t *testing.T) {
			runner, output := newTestRunner(t)

			if err := runner.writeJSON(map[string]int{"answer": 42}, true); err != nil {
				t.Fatalf("writeJSON failed: %v", err)
			}

			if !strings.Contains(output.String(), "\"answer\": 42") {
				t.Errorf("expected indented JSON, got %q", output.String())
			}
		})

		t.Run("write failure surfaces", func(t *testing.T) {
			runner, _ := newTestRunner(t)
			runner.output = &tu.FWriter{}

			if err := runner.writeJSON(map[string]int{}, false); err == nil {
				t.Error("expected an error from the failing writer")
			}
		})
	})
}

func TestTokenStore(t *testing.T) {
	runner, _ := newTestRunner(t)
	store := tokenStore{runner: runner}

	if store.Token() != "" {
		t.Errorf("expected no initial token, got %q", store.Token())
	}

	if err := store.SetToken("new-token"); err != nil {
		t.Fatalf("failed to set token: %v", err)
	}

	if store.Token() != "new-token" {
		t.Errorf("expected the new token, got %q", store.Token())
	}

	// Write-through: the token must survive a reload from disk.
	loaded, err := shared.LoadConfig(runner.configPath)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Trakt.AccessToken != "new-token" {
		t.Errorf("expected the token persisted, got %q", loaded.Trakt.AccessToken)
	}
}

func TestCodePrompter(t *testing.T) {
	runner, output := newTestRunner(t)
	runner.prompter = &prompt.Scripted{Texts: []string{"pasted-code"}}

	prompter := codePrompter{runner: runner}

	code, err := prompter.AuthCode("https://example.test/authorize?state=abc")
	if err != nil {
		t.Fatalf("auth code prompt failed: %v", err)
	}

	if code != "pasted-code" {
		t.Errorf("expected the scripted code, got %q", code)
	}
	if !strings.Contains(output.String(), "https://example.test/authorize?state=abc") {
		t.Error("the authorize URL should be shown to the user")
	}
}

func TestResolveListName(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		runner.config.Trakt.ListName = "Stored List"

		name, err := runner.resolveListName(context.Background(), "Flag List", false)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if name != "Flag List" {
			t.Errorf("expected the flag value, got %q", name)
		}
	})

	t.Run("stored name confirmed", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		runner.config.Trakt.ListName = "Stored List"
		runner.prompter = &prompt.Scripted{Confirms: []bool{true}}

		name, err := runner.resolveListName(context.Background(), "", false)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if name != "Stored List" {
			t.Errorf("expected the stored name, got %q", name)
		}
	})

	t.Run("headless uses the stored name without asking", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		runner.config.Trakt.ListName = "Stored List"

		name, err := runner.resolveListName(context.Background(), "", true)
		if err != nil {
			t.Fatalf("resolve failed: %v", err)
		}
		if name != "Stored List" {
			t.Errorf("expected the stored name, got %q", name)
		}
	})

	t.Run("headless with nothing stored errors", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		_, err := runner.resolveListName(context.Background(), "", true)
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}

func TestLoadTitles(t *testing.T) {
	t.Run("offers an existing file", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		runner.prompter = &prompt.Scripted{Confirms: []bool{true}}
		path := filepath.Join(t.TempDir(), "Watchlist_items.txt")

		if err := os.WriteFile(path, []byte("Inception\n\nHeat\n"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		titles, err := runner.loadTitles(path, false)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if len(titles) != 2 || titles[0] != "Inception" || titles[1] != "Heat" {
			t.Errorf("unexpected titles %v", titles)
		}
	})

	t.Run("declined file falls back to collection", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		runner.prompter = &prompt.Scripted{
			Confirms: []bool{false},
			Texts:    []string{"Alien", "done"},
		}
		path := filepath.Join(t.TempDir(), "Watchlist_items.txt")

		if err := os.WriteFile(path, []byte("Inception\n"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		titles, err := runner.loadTitles(path, false)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if len(titles) != 1 || titles[0] != "Alien" {
			t.Errorf("expected the collected titles, got %v", titles)
		}

		content := tu.MustReadFile(t, path)
		if content != "Alien\n" {
			t.Errorf("declining the file should overwrite it, got %q", content)
		}
	})

	t.Run("headless reads the file without asking", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		// A scripted "no" that must never be consumed: headless mode
		// would error on the empty Texts script if it went interactive.
		runner.prompter = &prompt.Scripted{Confirms: []bool{false}}
		path := filepath.Join(t.TempDir(), "Watchlist_items.txt")

		if err := os.WriteFile(path, []byte("Inception\n"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		titles, err := runner.loadTitles(path, true)
		if err != nil {
			t.Fatalf("headless load failed: %v", err)
		}

		if len(titles) != 1 || titles[0] != "Inception" {
			t.Errorf("unexpected titles %v", titles)
		}
	})

	t.Run("headless missing file errors", func(t *testing.T) {
		runner, _ := newTestRunner(t)

		_, err := runner.loadTitles(filepath.Join(t.TempDir(), "absent.txt"), true)
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("interactive collection writes the file", func(t *testing.T) {
		runner, _ := newTestRunner(t)
		runner.prompter = &prompt.Scripted{Texts: []string{"Inception", "  ", "Heat", "DONE"}}
		path := filepath.Join(t.TempDir(), "Watchlist_items.txt")

		titles, err := runner.loadTitles(path, false)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if len(titles) != 2 {
			t.Fatalf("expected 2 titles, got %v", titles)
		}

		tu.AssertFileExists(t, path)
		content := tu.MustReadFile(t, path)
		if content != "Inception\nHeat\n" {
			t.Errorf("unexpected file content %q", content)
		}
	})
}
