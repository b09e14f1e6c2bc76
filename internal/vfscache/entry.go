package vfscache

import (
	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/timestamp"
)

// Entry is the closed sum of the three shapes a tree node can take:
// directory, item or symlink. It is a tagged union by construction — callers
// type-switch on the concrete type rather than reaching for any form of
// dynamic dispatch beyond Timestamp.
type Entry interface {
	// Timestamp returns the entry's own timestamp for items and symlinks, or
	// the rollup (max of descendants, zero if empty) for directories.
	Timestamp() timestamp.Timestamp

	isEntry()
}

// DirEntry is an unordered mapping from entry name to child entry. Only
// DirEntry may hold children; inserting under an ItemEntry or LinkEntry is a
// programming error.
type DirEntry struct {
	children map[string]Entry
}

// NewDirEntry returns an empty directory entry.
func NewDirEntry() *DirEntry {
	return &DirEntry{children: make(map[string]Entry)}
}

func (d *DirEntry) isEntry() {}

// Timestamp returns the maximum of the directory's children's timestamps,
// or the zero timestamp if the directory is empty.
func (d *DirEntry) Timestamp() timestamp.Timestamp {
	max := timestamp.Zero
	for _, child := range d.children {
		max = timestamp.Max(max, child.Timestamp())
	}
	return max
}

// Lookup returns the named child, if any.
func (d *DirEntry) Lookup(name string) (Entry, bool) {
	e, ok := d.children[name]
	return e, ok
}

// Names returns every child name currently present. Order is unspecified.
func (d *DirEntry) Names() []string {
	names := make([]string, 0, len(d.children))
	for name := range d.children {
		names = append(names, name)
	}
	return names
}

// Entries returns the directory's own name -> entry mapping, not a copy.
// Callers must not mutate the returned map.
func (d *DirEntry) Entries() map[string]Entry {
	return d.children
}

// has reports whether name is already taken in this directory.
func (d *DirEntry) has(name string) bool {
	_, ok := d.children[name]
	return ok
}

// insert places entry under name, overwriting nothing: callers are expected
// to have already checked has(name) is false, typically via addWithIndex.
func (d *DirEntry) insert(name string, entry Entry) {
	d.children[name] = entry
}

// ItemEntry wraps a single indexed media file.
type ItemEntry struct {
	Item item.Item
}

func (*ItemEntry) isEntry() {}

// Timestamp returns the item's own timestamp.
func (e *ItemEntry) Timestamp() timestamp.Timestamp {
	return e.Item.Timestamp
}

// LinkEntry is a symlink: a textual relative path from the link's parent to
// the real item, which need not currently exist in the cache.
type LinkEntry struct {
	ts     timestamp.Timestamp
	Target string
}

func (*LinkEntry) isEntry() {}

// Timestamp returns the symlink's own (copied) timestamp.
func (e *LinkEntry) Timestamp() timestamp.Timestamp {
	return e.ts
}
