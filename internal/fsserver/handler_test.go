package fsserver

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/moses-palmer/medifs/internal/guard"
	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/mediatype"
	"github.com/moses-palmer/medifs/internal/timestamp"
	"github.com/moses-palmer/medifs/internal/vfscache"
)

// itemDir is the timestamp-tree directory every item inserted by
// newTestCache lands under.
const itemDir = "All/2020/06/01"

// fakeSource is a source.Source whose Notify result is controlled by the
// test.
type fakeSource struct {
	err error
}

func (f *fakeSource) Start() error  { return f.err }
func (f *fakeSource) Notify() error { return f.err }

func newTestCache(t *testing.T, sourcePath string) *vfscache.Cache {
	t.Helper()
	cache := vfscache.New("All", "Tagged")
	mt := mediatype.MediaType{Type: "image", Subtype: "jpeg"}
	it := item.New(sourcePath, timestamp.NewDateTime(2020, time.June, 1, 12, 0, 0), nil, mt)
	if _, err := cache.ReplaceAll([]item.Item{it}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	return cache
}

func TestHandlerGetAttrDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := newTestCache(t, path)
	h := New(cache, &fakeSource{})

	a, err := h.GetAttr(itemDir, 1, 2)
	if err != nil {
		t.Fatalf("GetAttr: %v", err)
	}
	if a.Mode&os.ModeDir == 0 {
		t.Errorf("Mode = %v, want directory bit set", a.Mode)
	}
	if a.Uid != 1 || a.Gid != 2 {
		t.Errorf("owner = %d/%d, want 1/2", a.Uid, a.Gid)
	}
}

func TestHandlerGetAttrItem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := newTestCache(t, path)
	h := New(cache, &fakeSource{})

	entries, err := h.ReadDir(itemDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}

	itemPath := itemDir + "/" + entries[0].Name
	a, err := h.GetAttr(itemPath, 0, 0)
	if err != nil {
		t.Fatalf("GetAttr(%s): %v", itemPath, err)
	}
	if a.Size != 5 {
		t.Errorf("Size = %d, want 5", a.Size)
	}
	if a.Mode != 0o444 {
		t.Errorf("Mode = %v, want 0444", a.Mode)
	}
}

func TestHandlerGetAttrNotFound(t *testing.T) {
	cache := vfscache.New("All", "Tagged")
	h := New(cache, &fakeSource{})

	_, err := h.GetAttr("All/missing", 0, 0)
	if !errors.Is(err, syscall.ENOENT) {
		t.Errorf("err = %v, want ENOENT", err)
	}
}

func TestHandlerNotifyPoisonedMapsToEdeadlk(t *testing.T) {
	cache := vfscache.New("All", "Tagged")
	h := New(cache, &fakeSource{err: guard.ErrPoisoned})

	_, err := h.GetAttr("All", 0, 0)
	if !errors.Is(err, syscall.EDEADLK) {
		t.Errorf("err = %v, want EDEADLK", err)
	}
}

func TestHandlerOpenDirRejectsItem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := newTestCache(t, path)
	h := New(cache, &fakeSource{})

	entries, err := h.ReadDir(itemDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	itemPath := itemDir + "/" + entries[0].Name

	if err := h.OpenDir(itemPath); !errors.Is(err, syscall.ENOTDIR) {
		t.Errorf("OpenDir(item) err = %v, want ENOTDIR", err)
	}
}

func TestHandlerOpenAndRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := newTestCache(t, path)
	h := New(cache, &fakeSource{})

	entries, err := h.ReadDir(itemDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	itemPath := itemDir + "/" + entries[0].Name

	f, err := h.Open(itemPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer h.Release(f)

	data, err := h.Read(f, 6, 5)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "world" {
		t.Errorf("Read = %q, want %q", data, "world")
	}
}

func TestHandlerOpenRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := newTestCache(t, path)
	h := New(cache, &fakeSource{})

	if _, err := h.Open(itemDir); !errors.Is(err, syscall.EINVAL) {
		t.Errorf("Open(dir) err = %v, want EINVAL", err)
	}
}

func TestHandlerReadLinkRejectsNonLink(t *testing.T) {
	cache := newTestCache(t, "/photos/photo.jpg")
	h := New(cache, &fakeSource{})

	if _, err := h.ReadLink("All"); !errors.Is(err, syscall.EINVAL) {
		t.Errorf("ReadLink(dir) err = %v, want EINVAL", err)
	}
}
