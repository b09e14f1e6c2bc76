package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moses-palmer/medifs/internal/clock"
	"github.com/moses-palmer/medifs/internal/source"
	"github.com/moses-palmer/medifs/internal/vfscache"
)

var directoryCmd = &cobra.Command{
	Use:   "directory ROOT MOUNT_POINT",
	Short: "Serve items named and timestamped from the file system alone, with no tags",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, mountPoint := args[0], args[1]
		return runMount(mountPoint, func(cache *vfscache.Cache) (source.Source, error) {
			generator := source.NewDirGenerator(clock.RealClock{})
			return source.NewFileSystemSource(cache, root, generator, clock.RealClock{}), nil
		})
	},
}
