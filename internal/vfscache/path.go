package vfscache

import "strings"

// splitPath decomposes a lookup path into the ordered sequence of real
// components to descend through. Root-directory and current-directory
// components ("" from a leading/doubled slash, and ".") are skipped;
// any parent-directory component ("..") causes the whole lookup to fail.
func splitPath(path string) (components []string, ok bool) {
	for _, c := range strings.Split(path, "/") {
		switch c {
		case "", ".":
			continue
		case "..":
			return nil, false
		default:
			components = append(components, c)
		}
	}
	return components, true
}

// joinPath renders components back into a single "/"-separated path with no
// leading slash, the same form AddItem returns.
func joinPath(components ...string) string {
	return strings.Join(components, "/")
}
