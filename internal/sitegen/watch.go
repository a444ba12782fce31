package sitegen

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// Watch rebuilds the site whenever a file under the content or static
// directory changes. Bursts of events are coalesced: a build starts once
// no event arrived for Options.Debounce. onBuild receives every rebuild
// outcome. Watch returns nil when ctx is cancelled.
//
// Watch does not run an initial build.
func (g *Generator) Watch(ctx context.Context, onBuild func(*Report, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	defer func() { _ = w.Close() }()

	for _, root := range g.watchRoots() {
		if err := addTree(w, root); err != nil {
			return fmt.Errorf("%w: %v", ErrWatch, err)
		}
		g.log.Debug().Str("dir", root).Msg("watching")
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if fileutil.IsWithin(ev.Name, g.opts.OutputDir) {
				continue
			}
			// New directories are not covered by their parent's watch.
			if ev.Has(fsnotify.Create) && fileutil.DirExists(ev.Name) {
				if err := addTree(w, ev.Name); err != nil {
					g.log.Warn().Err(err).Str("dir", ev.Name).Msg("cannot watch new directory")
				}
			}
			g.log.Debug().Str("path", ev.Name).Stringer("op", ev.Op).Msg("change detected")

			if timer == nil {
				timer = time.NewTimer(g.opts.Debounce)
			} else {
				timer.Reset(g.opts.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			report, err := g.Build(ctx)
			if onBuild != nil {
				onBuild(report, err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			g.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// watchRoots returns the existing source directories.
func (g *Generator) watchRoots() []string {
	roots := []string{g.opts.ContentDir}
	if g.opts.StaticDir != "" && fileutil.DirExists(g.opts.StaticDir) {
		roots = append(roots, g.opts.StaticDir)
	}
	return roots
}

// addTree watches root and every directory below it.
func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.Add(path)
	})
}
