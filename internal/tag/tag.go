// Package tag implements the hierarchical tag model used to organise items
// under the tag tree: a tag is an ordered list of non-empty name parts,
// rendered joined by "/".
package tag

import (
	"fmt"
	"strings"
)

// Tag is an ordered, non-empty list of name parts.
type Tag struct {
	parts []string
}

// Parse splits s on "/" into parts. It rejects the empty string and any
// string with a leading or trailing "/", since those would produce an empty
// part.
func Parse(s string) (Tag, error) {
	if s == "" {
		return Tag{}, fmt.Errorf("tag: empty tag")
	}
	if strings.HasPrefix(s, "/") || strings.HasSuffix(s, "/") {
		return Tag{}, fmt.Errorf("tag: %q has a leading or trailing slash", s)
	}

	parts := strings.Split(s, "/")
	for _, p := range parts {
		if p == "" {
			return Tag{}, fmt.Errorf("tag: %q contains an empty part", s)
		}
	}

	return Tag{parts: parts}, nil
}

// MustParse is like Parse but panics on error. Useful for static tags.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Single returns a tag whose sole part is s, without the validation Parse
// performs. It exists for callers falling back to a raw, unparseable string
// (e.g. an IPTC keyword that is not a well-formed tag) that must still be
// usable as a tag.
func Single(s string) Tag {
	return Tag{parts: []string{s}}
}

// String renders the tag joined by "/".
func (t Tag) String() string {
	return strings.Join(t.parts, "/")
}

// Parts returns the tag's name parts. The returned slice must not be
// mutated by the caller.
func (t Tag) Parts() []string {
	return t.parts
}

// Leaf returns the last part of the tag.
func (t Tag) Leaf() string {
	return t.parts[len(t.parts)-1]
}

// IsRoot reports whether the tag has a single part.
func (t Tag) IsRoot() bool {
	return len(t.parts) == 1
}

// IsParentOf reports whether t's parts are a strict prefix of other's parts.
func (t Tag) IsParentOf(other Tag) bool {
	if len(t.parts) >= len(other.parts) {
		return false
	}
	for i, p := range t.parts {
		if other.parts[i] != p {
			return false
		}
	}
	return true
}

// Equal reports whether t and other have identical parts.
func (t Tag) Equal(other Tag) bool {
	if len(t.parts) != len(other.parts) {
		return false
	}
	for i, p := range t.parts {
		if other.parts[i] != p {
			return false
		}
	}
	return true
}
