// Command medifs mounts a synthetic, read-only filesystem over a tree of
// image files, organised by timestamp and by tag.
package main

import "github.com/moses-palmer/medifs/cmd"

func main() {
	cmd.Execute()
}
