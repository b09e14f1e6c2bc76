// Package metadata extracts the EXIF timestamp and IPTC keywords used by
// the tags source to enrich items beyond the bare file modification time
// the directory source falls back to.
package metadata

import (
	"github.com/moses-palmer/medifs/internal/tag"
	"github.com/moses-palmer/medifs/internal/timestamp"
)

// Record is the result of decoding a single file's metadata: the best
// timestamp the decoders could determine and the tags read from its
// keywords. Every file gets a Record, whether or not it could be opened:
// when it cannot be opened or decoded, the timestamp is the fallback (file
// modification time, else the clock) and the tag set is empty. There is no
// separate "missing" record.
type Record struct {
	Timestamp timestamp.Timestamp
	Tags      []tag.Tag
}
