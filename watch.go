package main

import (
	"database/sql"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchAndRebuild regenerates the guide whenever a YAML document in the
// data directory changes. Events are debounced so editors that write in
// several steps trigger one rebuild. Blocks until the watcher fails.
func WatchAndRebuild(cfg Config, db *sql.DB, buildName string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.DataDir); err != nil {
		return err
	}
	log.Printf("Watching %s for changes (build: %s)", cfg.DataDir, buildName)

	const debounce = 300 * time.Millisecond
	var timer *time.Timer
	rebuild := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".yaml") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			log.Printf("Change detected: %s (%s)", filepath.Base(event.Name), event.Op)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})

		case <-rebuild:
			if _, err := GenerateGuide(db, cfg.DataDir, buildName, cfg.OutputPath); err != nil {
				log.Printf("Rebuild error: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}
