// Package prompt abstracts user-facing choices behind a capability interface.
//
// The reconciliation core never performs terminal I/O directly: every
// interactive decision flows through [Prompter], so runs can be scripted for
// headless operation and deterministic tests via [Scripted].
package prompt

import (
	"fmt"
)

// Prompter collects decisions from the user.
type Prompter interface {
	// Confirm asks a yes/no question. fallback is returned when the user
	// just accepts the default.
	Confirm(message string, fallback bool) (bool, error)

	// SelectOne asks the user to pick exactly one of choices.
	SelectOne(message string, choices []string) (string, error)

	// FreeText collects a single line of input.
	FreeText(message string) (string, error)
}

// Scripted is a Prompter with canned answers, consumed in order.
// Used for headless runs and tests.
type Scripted struct {
	Confirms []bool
	Selects  []string
	Texts    []string

	confirmIdx int
	selectIdx  int
	textIdx    int
}

func (s *Scripted) Confirm(message string, fallback bool) (bool, error) {
	if s.confirmIdx >= len(s.Confirms) {
		return fallback, nil
	}
	answer := s.Confirms[s.confirmIdx]
	s.confirmIdx++
	return answer, nil
}

func (s *Scripted) SelectOne(message string, choices []string) (string, error) {
	if s.selectIdx >= len(s.Selects) {
		if len(choices) == 0 {
			return "", fmt.Errorf("no choices offered for %q", message)
		}
		return choices[0], nil
	}
	answer := s.Selects[s.selectIdx]
	s.selectIdx++
	for _, choice := range choices {
		if choice == answer {
			return answer, nil
		}
	}
	return "", fmt.Errorf("scripted answer %q is not among the choices for %q", answer, message)
}

func (s *Scripted) FreeText(message string) (string, error) {
	if s.textIdx >= len(s.Texts) {
		return "", fmt.Errorf("no scripted answer left for %q", message)
	}
	answer := s.Texts[s.textIdx]
	s.textIdx++
	return answer, nil
}
