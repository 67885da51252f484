// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package markdown

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPathsFiltersMarkdown(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.md", "a.md", "notes.txt", "README.MD"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}

	paths, err := Paths(dir)
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}

	want := []string{
		filepath.Join(dir, "README.MD"),
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestPathsCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "markdown")

	paths, err := Paths(dir)
	if err != nil {
		t.Fatalf("Paths: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("paths = %v, want empty", paths)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("directory was not created: %v", err)
	}
}

func TestResetDirClearsExistingContent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "html")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "stale.html"), []byte("old"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := ResetDir(dir); err != nil {
		t.Fatalf("ResetDir: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("dir not empty after reset: %d entries", len(entries))
	}
}
