package pathkit_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwantia/pathkit"
	"github.com/mwantia/pathkit/codec"
)

type sample struct {
	Name  string
	Count int
	Tags  []string
}

func TestObject_GobRoundtrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "state.gob")

	in := sample{Name: "report", Count: 3, Tags: []string{"a", "b"}}
	if err := pathkit.SaveObject(path, in, false); err != nil {
		t.Fatalf("SaveObject failed: %v", err)
	}

	var out sample
	ok, err := pathkit.LoadObject(path, &out)
	if err != nil {
		t.Fatalf("LoadObject failed: %v", err)
	}
	if !ok {
		t.Fatal("LoadObject reported absence for a saved object")
	}

	if out.Name != in.Name || out.Count != in.Count || len(out.Tags) != 2 {
		t.Errorf("Roundtrip mismatch: %+v != %+v", out, in)
	}
}

func TestObject_JSONByExtension(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "state.json")

	in := sample{Name: "readable", Count: 1}
	if err := pathkit.SaveObject(path, in, false); err != nil {
		t.Fatalf("SaveObject failed: %v", err)
	}

	// The payload on disk must actually be JSON
	text, ok, err := pathkit.Read(path)
	if err != nil || !ok {
		t.Fatalf("Read failed: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(text, `"Name": "readable"`) {
		t.Errorf("Expected a JSON payload, got %q", text)
	}

	var out sample
	if ok, err := pathkit.LoadObject(path, &out); err != nil || !ok {
		t.Fatalf("LoadObject failed: ok=%v err=%v", ok, err)
	}
	if out.Name != "readable" {
		t.Errorf("Roundtrip mismatch: %+v", out)
	}
}

func TestObject_OverwriteContract(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "state.gob")

	if err := pathkit.SaveObject(path, sample{Count: 1}, false); err != nil {
		t.Fatalf("SaveObject failed: %v", err)
	}
	if err := pathkit.SaveObject(path, sample{Count: 2}, false); !errors.Is(err, pathkit.ErrExist) {
		t.Errorf("Expected ErrExist, got %v", err)
	}
	if err := pathkit.SaveObject(path, sample{Count: 2}, true); err != nil {
		t.Errorf("SaveObject with overwrite failed: %v", err)
	}

	var out sample
	if ok, err := pathkit.LoadObject(path, &out); err != nil || !ok {
		t.Fatalf("LoadObject failed: ok=%v err=%v", ok, err)
	}
	if out.Count != 2 {
		t.Errorf("Count = %d, want 2", out.Count)
	}
}

func TestObject_Sentinels(t *testing.T) {
	tmpDir := t.TempDir()

	var out sample
	ok, err := pathkit.LoadObject(filepath.Join(tmpDir, "missing.gob"), &out)
	if err != nil {
		t.Fatalf("LoadObject of missing path should not error, got %v", err)
	}
	if ok {
		t.Error("Expected the absent sentinel for a missing path")
	}

	if _, err := pathkit.LoadObject(tmpDir, &out); !errors.Is(err, pathkit.ErrIsDirectory) {
		t.Errorf("Expected ErrIsDirectory, got %v", err)
	}
	if err := pathkit.SaveObject(tmpDir, sample{}, true); !errors.Is(err, pathkit.ErrIsDirectory) {
		t.Errorf("Expected ErrIsDirectory, got %v", err)
	}
}

func TestObject_PinnedCodec(t *testing.T) {
	tmpDir := t.TempDir()
	// Extension says gob, the pinned codec says JSON
	path := filepath.Join(tmpDir, "state.gob")

	store := pathkit.NewStore(pathkit.WithCodec(codec.NewJSONCodec()))
	if err := store.Save(path, sample{Name: "pinned"}, false); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	text, ok, err := pathkit.Read(path)
	if err != nil || !ok {
		t.Fatalf("Read failed: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(text, `"Name": "pinned"`) {
		t.Errorf("Pinned codec ignored, payload = %q", text)
	}
}
