package alglib

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFlatFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pll.txt"), "t-perm:R U R' U' R' F R2 U' R' U' R U R' F'\n")

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := lib["pll.t-perm"]; !ok {
		t.Fatalf("expected key pll.t-perm, got keys %v", keys(lib))
	}
}

func TestLoadNestedDirectoriesJoinWithDots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "oll", "sune.txt"), "sune:R U R' U R U2 R'\n")

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if _, ok := lib["oll.sune.sune"]; !ok {
		t.Fatalf("expected key oll.sune.sune, got keys %v", keys(lib))
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "misc.txt"), "no-colon-here\nbad:X Y Z\ngood:R U R' U'\n")

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(lib) != 1 {
		t.Fatalf("expected exactly 1 loaded entry, got %d: %v", len(lib), keys(lib))
	}
	if _, ok := lib["misc.good"]; !ok {
		t.Fatalf("expected key misc.good, got keys %v", keys(lib))
	}
}

func keys(lib Library) []string {
	out := make([]string, 0, len(lib))
	for k := range lib {
		out = append(out, k)
	}
	return out
}
