package catalog

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"
)

// Watch reloads catalog files when they change on disk, until ctx is done.
// Editor save bursts for the same file collapse into a single reload. A file
// that fails to parse is logged and the previous table stays published.
//
// If ready is non-nil, a value is sent once the watcher is registered,
// allowing callers to synchronize without time.Sleep.
func (c *Catalog) Watch(ctx context.Context, dir string, ready chan<- struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if ready != nil {
		ready <- struct{}{}
	}

	var flight singleflight.Group
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(event.Name) != ".ftl" {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			name := event.Name
			go func() {
				for {
					_, err, shared := flight.Do(name, func() (any, error) {
						return nil, c.loadFromDisk(name)
					})
					if shared {
						// Joined a reload whose file read may predate this
						// event; go again so the last write of a save burst
						// is never skipped.
						continue
					}
					if err != nil {
						log.Printf("⚠️ catalog: reload %s rejected: %v", name, err)
					} else {
						log.Printf("✅ catalog: reloaded %s", name)
					}
					return
				}
			}()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("⚠️ catalog watcher: %v", err)
		}
	}
}

func (c *Catalog) loadFromDisk(path string) error {
	namespace, locale, err := SplitFileName(filepath.Base(path))
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}
	return c.Load(locale, namespace, string(data))
}
