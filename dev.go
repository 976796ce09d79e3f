package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"
	"github.com/retroenv/retrogolib/log"

	"github.com/nf/c8/host"
)

// watch swaps romFile into r each time the file is written, until ctx is
// done or stop is called.
func watch(ctx context.Context, logger *log.Logger, r *host.Runner, romFile string) (stop func(), err error) {
	romFile = filepath.Clean(romFile)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(filepath.Dir(romFile)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		var reload <-chan time.Time
		for {
			select {
			case <-reload:
				rom, err := os.ReadFile(romFile)
				if err != nil {
					logger.Error("Reading program", log.Err(err))
					break
				}
				logger.Debug("Reloading program",
					log.String("file", filepath.Base(romFile)),
					log.Int("size", len(rom)))
				r.Swap(rom)
			case ev, ok := <-watcher.Event:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) == romFile && !ev.IsAttrib() {
					reload = time.After(100 * time.Millisecond)
				}
			case err, ok := <-watcher.Error:
				if !ok {
					return
				}
				logger.Error("Watching program", log.Err(err))
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		watcher.Close()
	}, nil
}
