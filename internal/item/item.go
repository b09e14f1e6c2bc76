// Package item models a single indexed source file: its absolute source
// path, timestamp, tag set and media type.
package item

import (
	"github.com/moses-palmer/medifs/internal/mediatype"
	"github.com/moses-palmer/medifs/internal/tag"
	"github.com/moses-palmer/medifs/internal/timestamp"
)

// Item is an immutable description of a media file discovered by a source.
// Equality is defined by SourcePath alone.
type Item struct {
	SourcePath string
	Timestamp  timestamp.Timestamp
	Tags       []tag.Tag
	MediaType  mediatype.MediaType
}

// New constructs an Item. The returned value owns its own copy of tags.
func New(sourcePath string, ts timestamp.Timestamp, tags []tag.Tag, mt mediatype.MediaType) Item {
	owned := make([]tag.Tag, len(tags))
	copy(owned, tags)
	return Item{
		SourcePath: sourcePath,
		Timestamp:  ts,
		Tags:       owned,
		MediaType:  mt,
	}
}

// Equal reports whether two items refer to the same source file. This is
// the only equality this package defines: timestamps, tags and media type
// are not compared.
func (it Item) Equal(other Item) bool {
	return it.SourcePath == other.SourcePath
}

// Display renders the item's timestamp the way synthesized names do.
func (it Item) Display() string {
	return it.Timestamp.Display()
}

// Extension returns the file extension synthesized names for this item use.
func (it Item) Extension() string {
	return it.MediaType.Extension()
}
