package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moses-palmer/medifs/internal/clock"
	"github.com/moses-palmer/medifs/internal/metadata"
	"github.com/moses-palmer/medifs/internal/source"
	"github.com/moses-palmer/medifs/internal/vfscache"
)

var tagsCmd = &cobra.Command{
	Use:   "tags ROOT MOUNT_POINT",
	Short: "Serve items timestamped and tagged from EXIF/IPTC metadata, falling back to file mtime",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, mountPoint := args[0], args[1]
		return runMount(mountPoint, func(cache *vfscache.Cache) (source.Source, error) {
			generator := metadata.NewGenerator(clock.RealClock{})
			return source.NewFileSystemSource(cache, root, generator, clock.RealClock{}), nil
		})
	},
}
