package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	t.Run("writes to provided writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		logger.Info("hello")

		if !strings.Contains(buf.String(), "hello") {
			t.Errorf("expected log output to contain message, got %q", buf.String())
		}
	})

	t.Run("nil writer defaults to stdout", func(t *testing.T) {
		logger := NewLogger(nil)
		if logger == nil {
			t.Fatal("expected a logger, got nil")
		}
	})
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	child := WithLogger(logger, "component", "sync")
	child.Info("run started")

	if !strings.Contains(buf.String(), "component") {
		t.Errorf("expected child logger to carry key-value context, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	SetLogLevel(logger, log.ErrorLevel)

	logger.Info("suppressed")
	if strings.Contains(buf.String(), "suppressed") {
		t.Error("info message should be suppressed at error level")
	}

	logger.Error("reported")
	if !strings.Contains(buf.String(), "reported") {
		t.Error("error message should be reported at error level")
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}

	if a == b {
		t.Errorf("expected unique IDs, got %q twice", a)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Watchlist", "watchlist"},
		{"spaces become hyphens", "My Favorite Films", "my-favorite-films"},
		{"trims surrounding whitespace", "  Sci Fi Picks  ", "sci-fi-picks"},
		{"already a slug", "best-of-2024", "best-of-2024"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Slugify(tc.in); got != tc.want {
				t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
