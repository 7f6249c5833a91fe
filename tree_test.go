package pathkit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mwantia/pathkit"
)

func TestTree_Create(t *testing.T) {
	tmpDir := t.TempDir()

	chain := filepath.Join(tmpDir, "a", "b", "c")
	created, err := pathkit.Create(chain)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created != chain {
		t.Errorf("Create returned %q, want %q", created, chain)
	}
	if !pathkit.IsDir(chain) {
		t.Error("Create did not produce the directory chain")
	}

	// Creating an existing directory confirms the path
	created, err = pathkit.Create(chain)
	if err != nil {
		t.Fatalf("Create on existing dir failed: %v", err)
	}
	if created != chain {
		t.Errorf("Create returned %q, want %q", created, chain)
	}

	// A path occupied by a file yields an empty result without an error
	file := filepath.Join(tmpDir, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	created, err = pathkit.Create(file)
	if err != nil {
		t.Fatalf("Create on file failed: %v", err)
	}
	if created != "" {
		t.Errorf("Expected empty result for a file path, got %q", created)
	}
}

func TestTree_ClearFiles(t *testing.T) {
	tmpDir := seedTree(t)

	if err := pathkit.ClearFiles(tmpDir); err != nil {
		t.Fatalf("ClearFiles failed: %v", err)
	}

	if pathkit.Exists(filepath.Join(tmpDir, "a.txt")) {
		t.Error("a.txt should be removed")
	}
	if pathkit.Exists(filepath.Join(tmpDir, "b.log")) {
		t.Error("b.log should be removed")
	}
	if !pathkit.IsDir(filepath.Join(tmpDir, "sub")) {
		t.Error("sub/ must survive a non-recursive clear")
	}
	if !pathkit.IsFile(filepath.Join(tmpDir, "sub", "c.txt")) {
		t.Error("sub/c.txt must survive a non-recursive clear")
	}
}

func TestTree_ClearAll(t *testing.T) {
	tmpDir := seedTree(t)

	if err := pathkit.ClearAll(tmpDir); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	if !pathkit.IsDir(tmpDir) {
		t.Fatal("the cleared directory itself must remain")
	}

	children, err := pathkit.Children(tmpDir)
	if err != nil {
		t.Fatalf("Children failed: %v", err)
	}
	if len(children) != 0 {
		t.Errorf("Expected an empty directory, got %v", children)
	}
}

func TestTree_ClearPreconditions(t *testing.T) {
	tmpDir := t.TempDir()

	// Missing directory is a no-op
	if err := pathkit.Clear(filepath.Join(tmpDir, "missing"), true); err != nil {
		t.Errorf("Clear of missing dir should be a no-op, got %v", err)
	}

	file := filepath.Join(tmpDir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := pathkit.Clear(file, false); !errors.Is(err, pathkit.ErrNotDirectory) {
		t.Errorf("Expected ErrNotDirectory, got %v", err)
	}
	if err := pathkit.ClearAll(file); !errors.Is(err, pathkit.ErrNotDirectory) {
		t.Errorf("Expected ErrNotDirectory, got %v", err)
	}
	if err := pathkit.ClearFiles(file); !errors.Is(err, pathkit.ErrNotDirectory) {
		t.Errorf("Expected ErrNotDirectory, got %v", err)
	}
}

func TestTree_ClearRecursiveRemovesSymlinks(t *testing.T) {
	tmpDir := t.TempDir()

	outside := filepath.Join(t.TempDir(), "outside.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.Symlink(outside, filepath.Join(tmpDir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	if err := pathkit.ClearAll(tmpDir); err != nil {
		t.Fatalf("ClearAll failed: %v", err)
	}

	if pathkit.Exists(filepath.Join(tmpDir, "link")) {
		t.Error("the link entry should be removed")
	}
	// Only the link is unlinked, never its target
	if !pathkit.IsFile(outside) {
		t.Error("the link target must survive")
	}
}

func TestTree_DeleteStrictMode(t *testing.T) {
	tmpDir := t.TempDir()

	dir := filepath.Join(tmpDir, "full")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if err := pathkit.Delete(dir, false); !errors.Is(err, pathkit.ErrDirectoryNotEmpty) {
		t.Errorf("Expected ErrDirectoryNotEmpty, got %v", err)
	}
	if !pathkit.IsDir(dir) {
		t.Error("strict delete must not remove a non-empty directory")
	}

	if err := pathkit.Delete(dir, true); err != nil {
		t.Fatalf("Recursive delete failed: %v", err)
	}
	if pathkit.Exists(dir) {
		t.Error("recursive delete should remove the directory itself")
	}
}

func TestTree_DeleteEmptyAndMissing(t *testing.T) {
	tmpDir := t.TempDir()

	empty := filepath.Join(tmpDir, "empty")
	if err := os.Mkdir(empty, 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	if err := pathkit.Delete(empty, false); err != nil {
		t.Fatalf("Delete of empty dir failed: %v", err)
	}
	if pathkit.Exists(empty) {
		t.Error("empty directory should be removed")
	}

	// Recursive delete tolerates a target that is already gone
	if err := pathkit.Delete(filepath.Join(tmpDir, "gone"), true); err != nil {
		t.Errorf("Recursive delete of missing target should succeed, got %v", err)
	}

	// Strict delete of a missing target reports absence
	if err := pathkit.Delete(filepath.Join(tmpDir, "gone"), false); !errors.Is(err, pathkit.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestTree_Parent(t *testing.T) {
	tmpDir := t.TempDir()

	chain := filepath.Join(tmpDir, "a", "b", "c")
	if err := os.MkdirAll(chain, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	file := filepath.Join(chain, "d.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	parent, ok := pathkit.Parent(file, 1)
	if !ok || parent != chain {
		t.Errorf("Parent depth 1 = %q ok=%v, want %q", parent, ok, chain)
	}

	parent, ok = pathkit.Parent(file, 2)
	if want := filepath.Join(tmpDir, "a", "b"); !ok || parent != want {
		t.Errorf("Parent depth 2 = %q ok=%v, want %q", parent, ok, want)
	}

	if _, ok := pathkit.Parent(filepath.Join(tmpDir, "missing"), 1); ok {
		t.Error("Parent of a missing path must report absence")
	}
}
