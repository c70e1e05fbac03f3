package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// latestAlias is the stable name that always points at the newest summary.
const latestAlias = "session-latest.md"

// SummaryFilename returns the timestamped file name for one run.
func SummaryFilename(timestamp string) string {
	return "session-" + timestamp + ".md"
}

// SaveSummary writes the rendered document into outDir and repoints the
// session-latest.md alias at it. The alias is a relative symlink referencing
// the summary by name, not a content copy. Returns the summary file path.
func SaveSummary(outDir, markdown, timestamp string) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	name := SummaryFilename(timestamp)
	path := filepath.Join(outDir, name)
	if err := os.WriteFile(path, []byte(markdown), 0644); err != nil {
		return "", fmt.Errorf("failed to write summary: %w", err)
	}

	// Drop whatever currently holds the alias name, whether a real file or
	// an old symlink, so a stale or dangling pointer never survives.
	aliasPath := filepath.Join(outDir, latestAlias)
	if _, err := os.Lstat(aliasPath); err == nil {
		if err := os.Remove(aliasPath); err != nil {
			return "", fmt.Errorf("failed to remove old alias: %w", err)
		}
	}
	if err := os.Symlink(name, aliasPath); err != nil {
		return "", fmt.Errorf("failed to update alias: %w", err)
	}

	return path, nil
}
