package cmd

import (
	"context"
	"fmt"

	"github.com/moses-palmer/medifs/internal/fsserver"
	"github.com/moses-palmer/medifs/internal/logger"
	"github.com/moses-palmer/medifs/internal/mountopts"
	"github.com/moses-palmer/medifs/internal/perms"
	"github.com/moses-palmer/medifs/internal/source"
	"github.com/moses-palmer/medifs/internal/vfscache"
)

// sourceFactory builds the Source a subcommand was invoked to configure,
// bound to cache.
type sourceFactory func(cache *vfscache.Cache) (source.Source, error)

// runMount is the orchestration shared by every source subcommand: validate
// the mount point, configure logging, build the cache and source, perform
// the initial scan, mount and block until the kernel tears the mount down.
func runMount(mountPoint string, build sourceFactory) error {
	closer := logger.Configure(logger.Config{
		File:     logFile,
		Format:   logFormat,
		Severity: severityFromFlag(logSeverity),
	})
	defer closer.Close()

	if err := mountopts.Validate(mountPoint); err != nil {
		return err
	}

	options := make(map[string]string)
	for _, o := range mountOptions {
		mountopts.ParseOptions(options, o)
	}

	cache := vfscache.New(timestampRoot, tagRoot)
	src, err := build(cache)
	if err != nil {
		return fmt.Errorf("configuring source: %w", err)
	}

	if err := src.Start(); err != nil {
		logger.Warnf("initial scan failed, will retry on first request: %v", err)
	}

	uid, gid, err := perms.MyUserAndGroup()
	if err != nil {
		return fmt.Errorf("determining owner: %w", err)
	}

	handler := fsserver.New(cache, src)
	fs := fsserver.NewFS(handler, uid, gid)

	logger.Infof("mounting at %s", mountPoint)

	mfs, err := fsserver.Mount(mountPoint, fs, options)
	if err != nil {
		return fmt.Errorf("mounting: %w", err)
	}

	logger.Infof("mounted at %s", mountPoint)
	if err := mfs.Join(context.Background()); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
