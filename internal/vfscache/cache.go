// Package vfscache implements the in-memory virtual directory tree: a
// single-owner map of path to directory/item/symlink entry, insert-with-
// suffix collision handling, and the timestamp- and tag-tree composition
// rules that organise items under two synthetic hierarchies.
package vfscache

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moses-palmer/medifs/internal/guard"
	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/pathsynth"
)

// ErrNotFound is returned by Lookup when no entry exists at the given path.
var ErrNotFound = errors.New("vfscache: not found")

// RejectedItemError reports that an insert could not proceed because an
// ancestor directory component already exists as a non-directory entry. The
// item is returned so the caller (typically a full replace_all) can report
// exactly which item failed.
type RejectedItemError struct {
	Item item.Item
}

func (e *RejectedItemError) Error() string {
	return fmt.Sprintf("vfscache: %s: an ancestor exists as a non-directory entry", e.Item.SourcePath)
}

// Cache is the virtual directory tree: a single root directory plus the two
// configured top-level bucket names. It holds no other state.
type Cache struct {
	lock          guard.RWMutex
	root          *DirEntry
	timestampRoot string
	tagRoot       string
}

// New returns an empty cache. timestampRoot and tagRoot are the names of the
// two top-level buckets (e.g. "All" and "Tagged").
func New(timestampRoot, tagRoot string) *Cache {
	return &Cache{
		root:          NewDirEntry(),
		timestampRoot: timestampRoot,
		tagRoot:       tagRoot,
	}
}

// Lookup walks path, descending only through directory entries. Root- and
// current-directory components are skipped; any parent-directory component
// fails the lookup outright, as does encountering a non-directory interior
// entry.
func (c *Cache) Lookup(path string) (Entry, error) {
	var result Entry
	err := c.lock.WithRLock(func() error {
		components, ok := splitPath(path)
		if !ok {
			return ErrNotFound
		}

		var cur Entry = c.root
		for _, name := range components {
			dir, ok := cur.(*DirEntry)
			if !ok {
				return ErrNotFound
			}
			child, ok := dir.Lookup(name)
			if !ok {
				return ErrNotFound
			}
			cur = child
		}
		result = cur
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// assertExists creates any missing ancestor directories along path,
// returning the terminal directory. It fails if any existing ancestor is
// not a directory. Must be called with the write lock held.
func (c *Cache) assertExists(path string) (*DirEntry, error) {
	components, ok := splitPath(path)
	if !ok {
		return nil, fmt.Errorf("vfscache: %q is not a valid directory path", path)
	}

	dir := c.root
	for _, name := range components {
		child, ok := dir.Lookup(name)
		if !ok {
			next := NewDirEntry()
			dir.insert(name, next)
			dir = next
			continue
		}
		next, ok := child.(*DirEntry)
		if !ok {
			return nil, fmt.Errorf("vfscache: %q already exists as a non-directory entry", joinPath(components...))
		}
		dir = next
	}
	return dir, nil
}

// addWithIndex generates names from nameFn(0), nameFn(1), ... until one is
// free in dir, then inserts entry under it. Must never be called with a
// directory entry. Must be called with the write lock held.
func addWithIndex(dir *DirEntry, nameFn func(index int) string, entry Entry) string {
	if _, ok := entry.(*DirEntry); ok {
		panic("vfscache: addWithIndex must not be called with a directory entry")
	}

	index := 0
	name := nameFn(index)
	for dir.has(name) {
		index++
		name = nameFn(index)
	}
	dir.insert(name, entry)
	return name
}

// itemNameFn returns the naming function shared by an item's own entry in
// the timestamp tree and every symlink pointing at it in the tag tree: both
// are named from the item's display timestamp and media type extension.
func itemNameFn(it item.Item) func(index int) string {
	base, ext := it.Display(), it.Extension()
	return func(index int) string {
		return pathsynth.Name(base, ext, index)
	}
}

// AddItem creates directory (and its missing ancestors) if needed, then
// inserts it as a uniquely-named child, returning the full path
// "directory/<name>". Must be called with the write lock held.
func (c *Cache) AddItem(directory string, it item.Item) (string, error) {
	dir, err := c.assertExists(directory)
	if err != nil {
		return "", &RejectedItemError{Item: it}
	}

	name := addWithIndex(dir, itemNameFn(it), &ItemEntry{Item: it})
	if directory == "" {
		return name, nil
	}
	return directory + "/" + name, nil
}

// relativeTarget computes the textual relative path from directory (a
// "/"-joined path with no leading slash) to itemPath: one ".." per
// component of directory, then itemPath appended. This is a purely textual
// construction; it does not require itemPath to currently resolve.
func relativeTarget(directory, itemPath string) string {
	components, _ := splitPath(directory)
	if len(components) == 0 {
		return itemPath
	}
	ups := make([]string, len(components))
	for i := range ups {
		ups[i] = ".."
	}
	return strings.Join(ups, "/") + "/" + itemPath
}

// AddLink creates directory if needed and inserts a symlink to itemPath
// under it. Tag links are best-effort: if directory cannot be created
// because an ancestor exists as a non-directory entry, the link is silently
// skipped rather than surfaced as an error. Must be called with the write
// lock held.
func (c *Cache) AddLink(directory, itemPath string, it item.Item) {
	dir, err := c.assertExists(directory)
	if err != nil {
		return
	}

	target := relativeTarget(directory, itemPath)
	link := &LinkEntry{ts: it.Timestamp, Target: target}
	addWithIndex(dir, itemNameFn(it), link)
}

// add is the high-level single-item insert: it places it under the
// timestamp tree and links it in under every one of its tags. Must be
// called with the write lock held.
func (c *Cache) add(it item.Item) error {
	ts := it.Timestamp
	timestampDir := fmt.Sprintf("%s/%d/%02d/%02d", c.timestampRoot, ts.Year(), int(ts.Month()), ts.Day())

	itemPath, err := c.AddItem(timestampDir, it)
	if err != nil {
		return err
	}

	for _, t := range it.Tags {
		tagDir := c.tagRoot + "/" + strings.Join(t.Parts(), "/")
		c.AddLink(tagDir, itemPath, it)
	}
	return nil
}

// AddIter folds add over items, aborting at the first rejected item and
// returning it. Lock-acquisition failure is reported via err.
func (c *Cache) AddIter(items []item.Item) (rejected *item.Item, err error) {
	err = c.lock.WithLock(func() error {
		for i := range items {
			it := items[i]
			if addErr := c.add(it); addErr != nil {
				var re *RejectedItemError
				if errors.As(addErr, &re) {
					rejected = &re.Item
					return nil
				}
				return addErr
			}
		}
		return nil
	})
	return rejected, err
}

// ReplaceAll clears the root directory and then behaves as AddIter. The
// cache is left in its post-clear, partially-populated state if an item is
// rejected partway through.
func (c *Cache) ReplaceAll(items []item.Item) (rejected *item.Item, err error) {
	err = c.lock.WithLock(func() error {
		c.root = NewDirEntry()
		for i := range items {
			it := items[i]
			if addErr := c.add(it); addErr != nil {
				var re *RejectedItemError
				if errors.As(addErr, &re) {
					rejected = &re.Item
					return nil
				}
				return addErr
			}
		}
		return nil
	})
	return rejected, err
}
