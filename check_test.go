package pathkit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwantia/pathkit"
)

func TestCheck_Predicates(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "data.txt")
	if err := os.WriteFile(file, []byte("content"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if !pathkit.Exists(tmpDir) || !pathkit.Exists(file) {
		t.Error("Exists reported false for existing paths")
	}
	if pathkit.Exists(filepath.Join(tmpDir, "missing")) {
		t.Error("Exists reported true for a missing path")
	}

	if !pathkit.IsFile(file) {
		t.Error("IsFile reported false for a regular file")
	}
	if pathkit.IsFile(tmpDir) {
		t.Error("IsFile reported true for a directory")
	}

	if !pathkit.IsDir(tmpDir) {
		t.Error("IsDir reported false for a directory")
	}
	if pathkit.IsDir(file) {
		t.Error("IsDir reported true for a file")
	}
}

func TestCheck_Symlink(t *testing.T) {
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "target.txt")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	link := filepath.Join(tmpDir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if !pathkit.IsSymlink(link) {
		t.Error("IsSymlink reported false for a symlink")
	}
	if pathkit.IsSymlink(target) {
		t.Error("IsSymlink reported true for the link target")
	}

	// The link resolves to a regular file
	if !pathkit.IsFile(link) {
		t.Error("IsFile should follow the link to its target")
	}
}

func TestCheck_ContainsWord(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "notes.txt")
	if err := os.WriteFile(file, []byte("alpha beta\ngamma\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if !pathkit.ContainsWord(file, "beta") {
		t.Error("ContainsWord missed an existing substring")
	}
	// Substring semantics, not token semantics
	if !pathkit.ContainsWord(file, "amm") {
		t.Error("ContainsWord should match substrings inside words")
	}
	if pathkit.ContainsWord(file, "delta") {
		t.Error("ContainsWord matched a missing substring")
	}
	if pathkit.ContainsWord(filepath.Join(tmpDir, "missing.txt"), "alpha") {
		t.Error("ContainsWord should report false for a missing file")
	}
	if pathkit.ContainsWord(tmpDir, "alpha") {
		t.Error("ContainsWord should report false for a directory")
	}
}
