package vcs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initGitRepo(t *testing.T, dir string) *git.Repository {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit() error: %v", err)
	}
	return repo
}

func writeFileAndCommit(t *testing.T, repo *git.Repository, dir, name, content string, when time.Time) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree() error: %v", err)
	}
	if _, err := wt.Add(name); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	_, err = wt.Commit("update "+name, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test Author",
			Email: "test@example.com",
			When:  when,
		},
	})
	if err != nil {
		t.Fatalf("Commit() error: %v", err)
	}
}

func TestLastTouched(t *testing.T) {
	dir := t.TempDir()
	repo := initGitRepo(t, dir)

	older := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	writeFileAndCommit(t, repo, dir, "lib.js", "export const x = 1\n", older)
	writeFileAndCommit(t, repo, dir, "app.js", "import {x} from './lib'\n", newer)
	writeFileAndCommit(t, repo, dir, "lib.js", "export const x = 2\n", newer)

	touched, err := LastTouched(dir, nil)
	if err != nil {
		t.Fatalf("LastTouched() error: %v", err)
	}

	if got := touched["lib.js"]; !got.Equal(newer) {
		t.Errorf("lib.js last touched = %v, want %v", got, newer)
	}
	if got := touched["app.js"]; !got.Equal(newer) {
		t.Errorf("app.js last touched = %v, want %v", got, newer)
	}
}

func TestLastTouchedSinceFilter(t *testing.T) {
	dir := t.TempDir()
	repo := initGitRepo(t, dir)

	old := time.Now().AddDate(0, 0, -90)
	writeFileAndCommit(t, repo, dir, "ancient.js", "old\n", old)

	since := time.Now().AddDate(0, 0, -30)
	touched, err := LastTouched(dir, &since)
	if err != nil {
		t.Fatalf("LastTouched() error: %v", err)
	}
	if _, ok := touched["ancient.js"]; ok {
		t.Error("commit older than the since cutoff should not appear")
	}
}

func TestLastTouchedNotARepo(t *testing.T) {
	if _, err := LastTouched(t.TempDir(), nil); err == nil {
		t.Error("LastTouched() should error outside a git repository")
	}
}
