package metadata

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/moses-palmer/medifs/internal/timestamp"
)

// readExifTimestamp decodes the Exif.Photo.DateTimeOriginal field of the
// file at path, formatted "%Y:%m:%d %H:%M:%S". If the file cannot be opened
// or decoded, or it carries no such field, fallback is used instead.
func readExifTimestamp(path string, fallback time.Time) timestamp.Timestamp {
	f, err := os.Open(path)
	if err != nil {
		return timestamp.FromTime(fallback)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return timestamp.FromTime(fallback)
	}

	tag, err := x.Get(exif.DateTimeOriginal)
	if err != nil {
		return timestamp.FromTime(fallback)
	}
	s, err := tag.StringVal()
	if err != nil {
		return timestamp.FromTime(fallback)
	}

	t, err := time.ParseInLocation("2006:01:02 15:04:05", s, time.Local)
	if err != nil {
		return timestamp.FromTime(fallback)
	}
	return timestamp.FromTime(t)
}
