package metadata

import (
	"os"
	"time"

	"github.com/moses-palmer/medifs/internal/clock"
	"github.com/moses-palmer/medifs/internal/guard"
	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/mediatype"
	"github.com/moses-palmer/medifs/internal/source"
)

var _ source.Generator = (*Generator)(nil)

// Generator is the tags source's Generator: it reads the EXIF timestamp and
// IPTC keywords of each file, memoising the result per path so a rescan of
// an unchanged tree does not re-decode every file's metadata. The map is
// never invalidated by a later populate; this mirrors the original
// implementation's behaviour and is called out as an open policy question
// in the design notes rather than silently "fixed" here.
type Generator struct {
	lock  guard.RWMutex
	cache map[string]Record
	clock clock.Clock
}

// NewGenerator returns a tags Generator using clk to produce the fallback
// timestamp when neither EXIF nor the file's own modification time can be
// read.
func NewGenerator(clk clock.Clock) *Generator {
	return &Generator{
		cache: make(map[string]Record),
		clock: clk,
	}
}

// Generate implements source.Generator.
func (g *Generator) Generate(path string, fi os.FileInfo, mt mediatype.MediaType) item.Item {
	rec := g.recordFor(path, fi)
	return item.New(path, rec.Timestamp, rec.Tags, mt)
}

// recordFor returns the memoised record for path, decoding and caching it
// on first access.
func (g *Generator) recordFor(path string, fi os.FileInfo) Record {
	var rec Record
	var found bool
	_ = g.lock.WithRLock(func() error {
		rec, found = g.cache[path]
		return nil
	})
	if found {
		return rec
	}

	fallback := g.fallbackTime(fi)
	rec = Record{
		Timestamp: readExifTimestamp(path, fallback),
		Tags:      readIptcKeywords(path),
	}

	_ = g.lock.WithLock(func() error {
		g.cache[path] = rec
		return nil
	})
	return rec
}

func (g *Generator) fallbackTime(fi os.FileInfo) time.Time {
	if fi != nil {
		return fi.ModTime()
	}
	return g.clock.Now()
}
