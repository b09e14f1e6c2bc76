package source

import (
	"github.com/gabriel-vasile/mimetype"

	"github.com/moses-palmer/medifs/internal/mediatype"
)

// sniff detects the media type of the file at path by reading its content,
// the same approach gcsfuse-style tooling uses to avoid trusting file
// extensions.
func sniff(path string) (mediatype.MediaType, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return mediatype.MediaType{}, err
	}
	return mediatype.Parse(m.String())
}
