package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"

	"github.com/osse101/ContentRegistry_Go/internal/logger"
)

const (
	stagingDirPattern = ".fetch-*"
	stagingSubdir     = "content"
)

// Fetch downloads a directory of content files from src and installs its
// top-level files into dst, replacing files of the same name. src is any
// go-getter address: a local path, git::, http(s) archives, s3:: and so on.
// dst may already exist; it is created if it does not. Dot entries (such as
// a cloned .git) and subdirectories are not installed.
func Fetch(ctx context.Context, src, dst string) error {
	log := logger.FromContext(ctx)

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf(ErrMsgWorkingDir, err)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf(ErrMsgPrepareDestination, dst, err)
	}

	// go-getter wants a destination that does not exist yet, so fetch into
	// a staging dir inside dst and copy the files across.
	staging, err := os.MkdirTemp(dst, stagingDirPattern)
	if err != nil {
		return fmt.Errorf(ErrMsgPrepareDestination, dst, err)
	}
	defer os.RemoveAll(staging)

	log.Info(LogMsgFetchingContent, "source", src, "destination", dst)

	fetched := filepath.Join(staging, stagingSubdir)
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  fetched,
		Pwd:  pwd,
		Mode: getter.ClientModeDir,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf(ErrMsgFetchFailed, src, err)
	}

	installed, err := install(ctx, fetched, dst)
	if err != nil {
		return fmt.Errorf(ErrMsgInstallFailed, dst, err)
	}

	log.Info(LogMsgFetchedContent, "source", src, "destination", dst, "files", installed)
	return nil
}

// install copies the regular top-level files of from into to and returns how
// many were copied. from may be a symlink to the source itself, so nothing is
// moved out of it.
func install(ctx context.Context, from, to string) (int, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(from)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || !entry.Type().IsRegular() {
			log.Debug(LogMsgSkippedFetchedEntry, "name", name)
			continue
		}

		data, err := os.ReadFile(filepath.Join(from, name))
		if err != nil {
			return copied, err
		}
		if err := os.WriteFile(filepath.Join(to, name), data, 0644); err != nil {
			return copied, err
		}
		copied++
	}
	return copied, nil
}
