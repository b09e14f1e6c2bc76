package source

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/moses-palmer/medifs/internal/clock"
	"github.com/moses-palmer/medifs/internal/guard"
	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/logger"
	"github.com/moses-palmer/medifs/internal/vfscache"
)

// FileSystemSource is the Source that walks a directory tree on disk,
// filters out everything whose sniffed media type is not image/*, and
// feeds the survivors through a Generator. It re-scans lazily: Notify only
// re-walks the tree when the root directory's modification time has moved
// forward since the last scan.
type FileSystemSource struct {
	lock guard.RWMutex

	cache     *vfscache.Cache
	root      string
	generator Generator
	clock     clock.Clock

	lastSeen    os.FileInfo
	haveScanned bool
}

// NewFileSystemSource returns a source rooted at root, populating cache via
// generator.
func NewFileSystemSource(cache *vfscache.Cache, root string, generator Generator, clk clock.Clock) *FileSystemSource {
	return &FileSystemSource{
		cache:     cache,
		root:      root,
		generator: generator,
		clock:     clk,
	}
}

// Start performs the initial full scan.
func (s *FileSystemSource) Start() error {
	return s.Notify()
}

// Notify stats the root directory. If its modification time is unreadable,
// this is a no-op. Otherwise, if the root has not yet been scanned or its
// modification time has moved forward since the last scan, populate runs
// and the last-seen value is updated.
func (s *FileSystemSource) Notify() error {
	return s.lock.WithLock(func() error {
		fi, err := os.Stat(s.root)
		if err != nil {
			return nil
		}

		if s.haveScanned && !fi.ModTime().After(s.lastSeen.ModTime()) {
			return nil
		}

		if err := s.populate(); err != nil {
			return err
		}
		s.lastSeen = fi
		s.haveScanned = true
		return nil
	})
}

// populate performs a full recursive walk of root, drops everything whose
// sniffed media type is not image/*, converts each survivor to an Item via
// the generator, and replaces the cache's entire contents with the result.
// Must be called with the source's write lock held.
func (s *FileSystemSource) populate() error {
	var items []item.Item

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}

		mt := detectMediaType(path)
		if !mt.IsImage() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			fi = nil
		}
		items = append(items, s.generator.Generate(path, fi, mt))
		return nil
	})
	if err != nil {
		return err
	}

	logger.Infof("scanned %s items under %s", humanize.Comma(int64(len(items))), s.root)

	rejected, err := s.cache.ReplaceAll(items)
	if rejected != nil {
		logger.Warnf("item %s rejected: an ancestor exists as a non-directory entry", rejected.SourcePath)
	}
	return err
}
