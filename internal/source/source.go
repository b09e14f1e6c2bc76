// Package source implements the pluggable source side of the system: the
// Source interface every mount configures exactly one of, the recursive
// directory scanner that walks a root and snapshots it into the cache, and
// the generator abstraction that turns a surviving path into an Item.
package source

import (
	"os"

	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/mediatype"
)

// Source is the external-collaborator contract a mount is configured with:
// an initial full scan, and a cheap freshness check that may trigger a
// re-scan. The filesystem request surface calls them without a lock of its
// own; FileSystemSource runs each call under its own write lock.
type Source interface {
	// Start performs the initial full scan.
	Start() error

	// Notify reconsiders freshness, re-scanning only if the root directory
	// has been modified since the last scan.
	Notify() error
}

// Generator turns a surviving file (one the scan already determined to be
// an image) into an Item. The directory source and the tags source each
// provide one.
type Generator interface {
	Generate(path string, fi os.FileInfo, mt mediatype.MediaType) item.Item
}

// detectMediaType sniffs the media type of the file at path. Files that
// cannot be sniffed are reported as application/octet-stream so that the
// populate loop's image filter reliably drops them.
func detectMediaType(path string) mediatype.MediaType {
	m, err := sniff(path)
	if err != nil {
		return mediatype.MediaType{Type: "application", Subtype: "octet-stream"}
	}
	return m
}
