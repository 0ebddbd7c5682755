package fileops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Application", "Repositories", "IProductRepository.cs")
	if err := WriteFile(path, "interface"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	assertFile(t, path, "interface", 0o644)
	if !DirExists(filepath.Dir(path)) {
		t.Fatalf("parent directory missing")
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ProductRepository.cs")
	writeFixtureFile(t, path, "old content that is longer", 0o644)

	if err := (Materializer{}).Write(path, "new"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	assertFile(t, path, "new", 0o644)
}

func TestWriteFileRejectsDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Taken.cs")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := WriteFile(path, "x"); err == nil {
		t.Fatalf("expected error when target is a directory")
	}
}

func TestWriteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".layergen", "config.yaml")
	if err := WriteConfigFile(path, "version: 1\n"); err != nil {
		t.Fatalf("WriteConfigFile: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "version: 1\n" {
		t.Fatalf("unexpected content %q", got)
	}
	if FileExists(path + ".tmp") {
		t.Fatalf("temporary file left behind")
	}
}

func TestExistsHelpers(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.cs")
	writeFixtureFile(t, file, "a", 0o644)

	if !FileExists(file) || FileExists(dir) {
		t.Fatalf("FileExists mismatch")
	}
	if !DirExists(dir) || DirExists(file) {
		t.Fatalf("DirExists mismatch")
	}
	if FileExists(filepath.Join(dir, "missing.cs")) {
		t.Fatalf("missing file reported as existing")
	}
}

func writeFixtureFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func assertFile(t *testing.T, path, wantContent string, wantPerm os.FileMode) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	if string(data) != wantContent {
		t.Fatalf("content mismatch for %s: got %q want %q", path, string(data), wantContent)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if got := info.Mode().Perm(); got != wantPerm {
		t.Fatalf("perm mismatch for %s: got %o want %o", path, got, wantPerm)
	}
}
