package main

import (
	"fmt"
	"os"
	"strings"
)

// itemsFileName derives the default titles file for a list, one title per line.
func itemsFileName(listName string) string {
	return fmt.Sprintf("%s_items.txt", listName)
}

// readTitlesFile reads a titles file, dropping blank lines. Titles keep their
// exact casing; trimming whitespace is the only normalization applied.
func readTitlesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file: %w", err)
	}

	titles := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		titles = append(titles, line)
	}

	return titles, nil
}

func writeTitlesFile(path string, titles []string) error {
	content := strings.Join(titles, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write items file: %w", err)
	}
	return nil
}
