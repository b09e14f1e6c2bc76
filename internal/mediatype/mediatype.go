// Package mediatype models the "type/subtype" media type pairs attached to
// items and derives the file extension used when synthesizing names.
package mediatype

import (
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MediaType is a parsed "type/subtype" pair, e.g. image/jpeg.
type MediaType struct {
	Type    string
	Subtype string
}

// Parse splits a "type/subtype" string. Parameters (e.g. "; charset=...")
// are discarded.
func Parse(s string) (MediaType, error) {
	s, _, _ = strings.Cut(s, ";")
	s = strings.TrimSpace(s)
	typ, subtype, ok := strings.Cut(s, "/")
	if !ok || typ == "" || subtype == "" {
		return MediaType{}, fmt.Errorf("mediatype: %q is not a type/subtype pair", s)
	}
	return MediaType{Type: typ, Subtype: subtype}, nil
}

// String renders the media type as "type/subtype".
func (mt MediaType) String() string {
	return mt.Type + "/" + mt.Subtype
}

// IsImage reports whether the media type's top-level part is "image". The
// directory source uses this to drop non-image files while scanning.
func (mt MediaType) IsImage() bool {
	return mt.Type == "image"
}

// extensionOverrides resolves the two cases the general mimetype table
// cannot: gcsfuse and most of the ecosystem treat jpeg/jpg and png as
// special-cased fast paths rather than table lookups, and callers of this
// package expect the same two canonical spellings regardless of how the
// underlying sniffer normalizes them.
var extensionOverrides = map[MediaType]string{
	{"image", "jpeg"}: "jpeg",
	{"image", "png"}:  "png",
}

// defaultExtension is used when neither an override nor the mimetype table
// recognises the media type.
const defaultExtension = "bin"

// Extension returns the file extension (without leading dot) to use for a
// file of this media type.
func (mt MediaType) Extension() string {
	if ext, ok := extensionOverrides[mt]; ok {
		return ext
	}

	if m := mimetype.Lookup(mt.String()); m != nil {
		return strings.TrimPrefix(m.Extension(), ".")
	}

	return defaultExtension
}
