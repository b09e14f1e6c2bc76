package source

import (
	"os"

	"github.com/moses-palmer/medifs/internal/clock"
	"github.com/moses-palmer/medifs/internal/item"
	"github.com/moses-palmer/medifs/internal/mediatype"
	"github.com/moses-palmer/medifs/internal/timestamp"
)

// DirGenerator is the plain directory source's Generator: it derives an
// item's timestamp from the file's own modification time and attaches no
// tags.
type DirGenerator struct {
	Clock clock.Clock
}

var _ Generator = (*DirGenerator)(nil)

// NewDirGenerator returns a DirGenerator using clk to produce the fallback
// timestamp when a file's modification time cannot be read.
func NewDirGenerator(clk clock.Clock) *DirGenerator {
	return &DirGenerator{Clock: clk}
}

// Generate implements Generator.
func (g *DirGenerator) Generate(path string, fi os.FileInfo, mt mediatype.MediaType) item.Item {
	ts := g.modTime(fi)
	return item.New(path, ts, nil, mt)
}

func (g *DirGenerator) modTime(fi os.FileInfo) timestamp.Timestamp {
	if fi == nil {
		return timestamp.FromTime(g.Clock.Now())
	}
	return timestamp.FromTime(fi.ModTime())
}
