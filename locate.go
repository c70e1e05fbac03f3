package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors returned by FindLatestSessionLog. The two not-found cases
// are distinguished so the caller can tell a never-logged project apart from
// a project directory that exists but holds no session files.
var (
	ErrNoProjectDir  = errors.New("no session log directory for project")
	ErrNoSessionLogs = errors.New("no session logs for project")
)

// DefaultLogRoot returns ~/.claude/projects, where Claude Code stores
// per-project session logs.
func DefaultLogRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".claude", "projects"), nil
}

// EscapeProjectPath converts an absolute project directory to the storage key
// Claude Code uses for its log subdirectory: every path separator becomes a
// literal hyphen.
//
// Example: /Users/jw/code/proj -> -Users-jw-code-proj
func EscapeProjectPath(projectDir string) string {
	return strings.ReplaceAll(projectDir, string(os.PathSeparator), "-")
}

// FindLatestSessionLog returns the most recently modified .jsonl session log
// under logRoot for the given project directory. Selection is by file mtime
// over an explicit listing; ties keep the first entry seen.
func FindLatestSessionLog(logRoot, projectDir string) (string, error) {
	dir := filepath.Join(logRoot, EscapeProjectPath(projectDir))

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNoProjectDir, dir)
		}
		return "", fmt.Errorf("failed to list session logs: %w", err)
	}

	var latest string
	var latestMod time.Time
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".jsonl") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = filepath.Join(dir, e.Name())
			latestMod = info.ModTime()
		}
	}

	if latest == "" {
		return "", fmt.Errorf("%w: %s", ErrNoSessionLogs, dir)
	}
	return latest, nil
}
