// Package cmd implements the medifs command line: mount point validation,
// "-o" option parsing, logger configuration and the per-source subcommands
// (directory, tags) that each construct a Source and hand it, together with
// a freshly built cache, to the filesystem request surface.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/moses-palmer/medifs/internal/logger"
)

var (
	mountOptions  []string
	timestampRoot string
	tagRoot       string
	logFile       string
	logFormat     string
	logSeverity   string
)

var rootCmd = &cobra.Command{
	Use:   "medifs",
	Short: "Expose a tree of media files as a read-only, tag- and date-organised filesystem",
	Long: `medifs mounts a synthetic, read-only filesystem that organises a tree of
image files under two views: a timestamp tree (YYYY/MM/DD) and a tag tree
built from each image's EXIF/IPTC metadata.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringArrayVarP(&mountOptions, "option", "o", nil, "a comma-separated list of mount options, passed through to the FUSE transport (repeatable)")
	rootCmd.PersistentFlags().StringVar(&timestampRoot, "timestamp-root", "All", "name of the top-level bucket holding the YYYY/MM/DD timestamp tree")
	rootCmd.PersistentFlags().StringVar(&tagRoot, "tag-root", "Tagged", "name of the top-level bucket holding the tag tree")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", `log rendering, "text" or "json"`)
	rootCmd.PersistentFlags().StringVar(&logSeverity, "log-severity", "info", "minimum log severity: off, error, warning, info, debug, trace")

	rootCmd.AddCommand(directoryCmd)
	rootCmd.AddCommand(tagsCmd)
}

// Execute runs the medifs command line, exiting the process with status 1 on
// any failure (argument parsing, mount point validation or a failed mount).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func severityFromFlag(s string) logger.Severity {
	switch s {
	case "off":
		return logger.OFF
	case "error":
		return logger.ERROR
	case "warning", "warn":
		return logger.WARNING
	case "debug":
		return logger.DEBUG
	case "trace":
		return logger.TRACE
	default:
		return logger.INFO
	}
}
