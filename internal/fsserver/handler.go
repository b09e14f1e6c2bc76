// Package fsserver implements the filesystem request surface: translation
// from the kernel-facing callbacks (getattr/opendir/readdir/open/read/
// release/readlink) into cache lookups, file-handle management and error
// mapping. Handler itself is independent of any particular FUSE transport
// library — it speaks paths and *os.File, not inode numbers — so it can be
// exercised directly in tests; package fsserver also provides an adapter
// wiring Handler to github.com/jacobsa/fuse.
package fsserver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/moses-palmer/medifs/internal/attrs"
	"github.com/moses-palmer/medifs/internal/errmap"
	"github.com/moses-palmer/medifs/internal/guard"
	"github.com/moses-palmer/medifs/internal/source"
	"github.com/moses-palmer/medifs/internal/vfscache"
)

// Kind distinguishes the three entry shapes when listing a directory.
type Kind int

const (
	KindDirectory Kind = iota
	KindItem
	KindSymlink
)

// Dirent is one child returned by ReadDir.
type Dirent struct {
	Name string
	Kind Kind
}

// Handler implements the path-based request surface of section 4.4: for
// every call, it notifies the source, then looks the path up in the cache.
type Handler struct {
	Cache  *vfscache.Cache
	Source source.Source
}

// New returns a Handler backed by cache and source.
func New(cache *vfscache.Cache, src source.Source) *Handler {
	return &Handler{Cache: cache, Source: src}
}

// GetAttr projects the entry at path, then overlays uid/gid onto the
// result.
func (h *Handler) GetAttr(path string, uid, gid uint32) (attrs.Attr, error) {
	if err := h.notify(); err != nil {
		return attrs.Attr{}, err
	}

	entry, err := h.lookup(path)
	if err != nil {
		return attrs.Attr{}, err
	}

	a, err := projectAttr(entry)
	if err != nil {
		return attrs.Attr{}, errmap.FromIOError(err)
	}
	return a.WithOwner(uid, gid), nil
}

// OpenDir requires the entry at path to be a directory.
func (h *Handler) OpenDir(path string) error {
	if err := h.notify(); err != nil {
		return err
	}
	entry, err := h.lookup(path)
	if err != nil {
		return err
	}
	if _, ok := entry.(*vfscache.DirEntry); !ok {
		return syscall.ENOTDIR
	}
	return nil
}

// ReadDir returns one Dirent per child of the directory at path.
func (h *Handler) ReadDir(path string) ([]Dirent, error) {
	if err := h.notify(); err != nil {
		return nil, err
	}
	entry, err := h.lookup(path)
	if err != nil {
		return nil, err
	}
	dir, ok := entry.(*vfscache.DirEntry)
	if !ok {
		return nil, syscall.ENOTDIR
	}

	children := dir.Entries()
	result := make([]Dirent, 0, len(children))
	for name, child := range children {
		result = append(result, Dirent{Name: name, Kind: kindOf(child)})
	}
	return result, nil
}

// ReadLink requires the entry at path to be a symlink, returning its
// textual target verbatim.
func (h *Handler) ReadLink(path string) (string, error) {
	if err := h.notify(); err != nil {
		return "", err
	}
	entry, err := h.lookup(path)
	if err != nil {
		return "", err
	}
	link, ok := entry.(*vfscache.LinkEntry)
	if !ok {
		return "", syscall.EINVAL
	}
	return link.Target, nil
}

// Open requires the entry at path to be an item, and opens the underlying
// source file, transferring ownership of the returned *os.File to the
// caller.
func (h *Handler) Open(path string) (*os.File, error) {
	if err := h.notify(); err != nil {
		return nil, err
	}
	entry, err := h.lookup(path)
	if err != nil {
		return nil, err
	}
	item, ok := entry.(*vfscache.ItemEntry)
	if !ok {
		return nil, syscall.EINVAL
	}

	f, err := os.Open(item.Item.SourcePath)
	if err != nil {
		return nil, errmap.FromIOError(err)
	}
	return f, nil
}

// Read seeks f to offset and reads up to size bytes, truncating the result
// to however many bytes were actually read. f is borrowed, not owned: Read
// never closes it.
func (h *Handler) Read(f *os.File, offset int64, size int) ([]byte, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return nil, errmap.FromIOError(err)
	}

	buf := make([]byte, size)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errmap.FromIOError(err)
	}
	return buf[:n], nil
}

// Release takes ownership of f and closes it.
func (h *Handler) Release(f *os.File) error {
	_ = f.Close()
	return nil
}

// notify calls the source's freshness check, mapping a lock-acquisition
// failure to edeadlk per the error taxonomy.
func (h *Handler) notify() error {
	if err := h.Source.Notify(); err != nil {
		if errors.Is(err, guard.ErrPoisoned) {
			return syscall.EDEADLK
		}
		return syscall.EIO
	}
	return nil
}

// lookup resolves path in the cache, mapping not-found and lock failures.
func (h *Handler) lookup(path string) (vfscache.Entry, error) {
	entry, err := h.Cache.Lookup(path)
	if err != nil {
		if errors.Is(err, vfscache.ErrNotFound) {
			return nil, syscall.ENOENT
		}
		if errors.Is(err, guard.ErrPoisoned) {
			return nil, syscall.EDEADLK
		}
		return nil, syscall.EIO
	}
	return entry, nil
}

func projectAttr(entry vfscache.Entry) (attrs.Attr, error) {
	switch e := entry.(type) {
	case *vfscache.DirEntry:
		return attrs.ForDirectory(e.Timestamp()), nil
	case *vfscache.ItemEntry:
		return attrs.ForItem(e.Item)
	case *vfscache.LinkEntry:
		return attrs.ForSymlink(e.Timestamp()), nil
	default:
		return attrs.Attr{}, fmt.Errorf("fsserver: unknown entry type %T", entry)
	}
}

func kindOf(entry vfscache.Entry) Kind {
	switch entry.(type) {
	case *vfscache.DirEntry:
		return KindDirectory
	case *vfscache.LinkEntry:
		return KindSymlink
	default:
		return KindItem
	}
}
