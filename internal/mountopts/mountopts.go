// Package mountopts implements the small pieces of mount-time plumbing a
// CLI needs that are independent of any particular source: parsing
// repeatable, comma-splittable "-o" options into the map the FUSE transport
// expects, and validating that a candidate mount point is usable.
package mountopts

import (
	"fmt"
	"os"
	"strings"
)

// ParseOptions splits s on commas and merges each "key" or "key=value" pair
// into m. Later occurrences of the same key overwrite earlier ones.
func ParseOptions(m map[string]string, s string) {
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			continue
		}
		if key, value, ok := strings.Cut(part, "="); ok {
			m[key] = value
		} else {
			m[part] = ""
		}
	}
}

// Validate checks that path exists, is a directory, is empty and is
// readable, returning an informative error describing which of those
// conditions failed.
func Validate(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("mount point %q: %w", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("mount point %q: not a directory", path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("mount point %q: cannot be read: %w", path, err)
	}
	if len(entries) != 0 {
		return fmt.Errorf("mount point %q: not empty", path)
	}
	return nil
}
