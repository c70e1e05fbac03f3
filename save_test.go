package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveSummaryWritesFileAndAlias(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), ".context")

	path, err := SaveSummary(outDir, "# doc one\n", "2026-08-24-1030")
	if err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}
	if filepath.Base(path) != "session-2026-08-24-1030.md" {
		t.Errorf("summary file = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# doc one\n" {
		t.Errorf("file content = %q", data)
	}

	aliasPath := filepath.Join(outDir, latestAlias)
	info, err := os.Lstat(aliasPath)
	if err != nil {
		t.Fatalf("alias missing: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("alias is not a symlink")
	}
	target, err := os.Readlink(aliasPath)
	if err != nil {
		t.Fatal(err)
	}
	if target != "session-2026-08-24-1030.md" {
		t.Errorf("alias target = %q, want file name, not a copy", target)
	}
}

func TestSaveSummaryRepointsAlias(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), ".context")

	if _, err := SaveSummary(outDir, "old\n", "2026-08-24-0900"); err != nil {
		t.Fatal(err)
	}
	if _, err := SaveSummary(outDir, "new\n", "2026-08-24-1030"); err != nil {
		t.Fatal(err)
	}

	aliasPath := filepath.Join(outDir, latestAlias)
	target, err := os.Readlink(aliasPath)
	if err != nil {
		t.Fatal(err)
	}
	if target != "session-2026-08-24-1030.md" {
		t.Errorf("alias target = %q, want newest summary", target)
	}
	data, err := os.ReadFile(aliasPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Errorf("reading through alias = %q, want newest content", data)
	}
	// The older run's file stays put.
	if _, err := os.Stat(filepath.Join(outDir, "session-2026-08-24-0900.md")); err != nil {
		t.Errorf("older summary removed: %v", err)
	}
}

func TestSaveSummaryReplacesRegularFileAlias(t *testing.T) {
	outDir := t.TempDir()
	aliasPath := filepath.Join(outDir, latestAlias)
	if err := os.WriteFile(aliasPath, []byte("a stale copy"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := SaveSummary(outDir, "fresh\n", "2026-08-24-1030"); err != nil {
		t.Fatalf("SaveSummary: %v", err)
	}

	info, err := os.Lstat(aliasPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("stale regular file was not replaced by a symlink")
	}
}

func TestSaveSummaryCreatesOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "a", "b", ".context")
	if _, err := SaveSummary(outDir, "x\n", "2026-08-24-1030"); err != nil {
		t.Fatalf("SaveSummary must create missing directories: %v", err)
	}
	// Idempotent on an existing directory.
	if _, err := SaveSummary(outDir, "y\n", "2026-08-24-1031"); err != nil {
		t.Fatalf("SaveSummary on existing directory: %v", err)
	}
}

func TestSaveSummaryWriteFailure(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(outDir, []byte("not a dir"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := SaveSummary(outDir, "x\n", "2026-08-24-1030"); err == nil {
		t.Error("expected error when the output directory cannot be created")
	}
}
