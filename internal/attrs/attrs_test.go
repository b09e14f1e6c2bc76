package attrs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/mediatype"
	"github.com/moses-palmer/medifs/internal/timestamp"
)

func TestForDirectory(t *testing.T) {
	ts := timestamp.NewDateTime(2021, time.March, 4, 5, 6, 7)
	a := ForDirectory(ts)

	if a.Mode != os.ModeDir|0o555 {
		t.Errorf("Mode = %v, want dir|0555", a.Mode)
	}
	if a.Size != 0 {
		t.Errorf("Size = %d, want 0", a.Size)
	}
	if !a.Time.Equal(ts.Time()) {
		t.Errorf("Time = %v, want %v", a.Time, ts.Time())
	}
}

func TestForSymlink(t *testing.T) {
	ts := timestamp.NewDateTime(2021, time.March, 4, 5, 6, 7)
	a := ForSymlink(ts)

	if a.Mode != os.ModeSymlink|0o555 {
		t.Errorf("Mode = %v, want symlink|0555", a.Mode)
	}
	if a.Size != 0 {
		t.Errorf("Size = %d, want 0", a.Size)
	}
}

func TestForItem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	ts := timestamp.NewDateTime(2021, time.March, 4, 5, 6, 7)
	it := item.New(path, ts, nil, mediatype.MediaType{Type: "image", Subtype: "jpeg"})

	a, err := ForItem(it)
	if err != nil {
		t.Fatalf("ForItem: %v", err)
	}
	if a.Size != 11 {
		t.Errorf("Size = %d, want 11", a.Size)
	}
	if a.Mode != 0o444 {
		t.Errorf("Mode = %v, want 0444", a.Mode)
	}
	if !a.Time.Equal(ts.Time()) {
		t.Errorf("Time = %v, want %v", a.Time, ts.Time())
	}
}

func TestForItemMissingFile(t *testing.T) {
	it := item.New("/does/not/exist.jpg", timestamp.Now(), nil, mediatype.MediaType{Type: "image", Subtype: "jpeg"})

	if _, err := ForItem(it); err == nil {
		t.Fatal("ForItem with missing source file: want error, got nil")
	}
}

func TestWithOwner(t *testing.T) {
	a := Attr{}.WithOwner(42, 7)
	if a.Uid != 42 || a.Gid != 7 {
		t.Errorf("owner = %d/%d, want 42/7", a.Uid, a.Gid)
	}
}
