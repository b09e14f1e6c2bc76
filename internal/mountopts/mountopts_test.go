package mountopts

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseOptions(t *testing.T) {
	m := make(map[string]string)
	ParseOptions(m, "allow_other,uid=1000,gid=1000")

	if _, ok := m["allow_other"]; !ok {
		t.Errorf("allow_other missing from %v", m)
	}
	if m["uid"] != "1000" {
		t.Errorf(`m["uid"] = %q, want "1000"`, m["uid"])
	}
	if m["gid"] != "1000" {
		t.Errorf(`m["gid"] = %q, want "1000"`, m["gid"])
	}
}

func TestParseOptionsOverwritesLater(t *testing.T) {
	m := map[string]string{"uid": "0"}
	ParseOptions(m, "uid=1000")
	if m["uid"] != "1000" {
		t.Errorf(`m["uid"] = %q, want "1000"`, m["uid"])
	}
}

func TestValidateRejectsMissingPath(t *testing.T) {
	if err := Validate(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Validate(missing path): want error, got nil")
	}
}

func TestValidateRejectsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Validate(path); err == nil {
		t.Fatal("Validate(file): want error, got nil")
	}
}

func TestValidateRejectsNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Validate(dir); err == nil {
		t.Fatal("Validate(non-empty dir): want error, got nil")
	}
}

func TestValidateAcceptsEmptyDir(t *testing.T) {
	if err := Validate(t.TempDir()); err != nil {
		t.Errorf("Validate(empty dir): %v", err)
	}
}
