// File: watch.go
// Title: Configuration Hot Reload
// Description: Watches the configuration file with fsnotify, debounces
//              bursts of write events and swaps in the re-parsed data.
//              Change handlers receive snapshots of the old and new data,
//              error handlers receive reload failures.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-01
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-01 v0.1.0: Initial polling implementation
// - 2026-10-07 v0.2.0: Replaced polling with fsnotify directory watch
// - 2026-10-15 v0.2.1: Close waits for debounced reloads in flight

package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	tuerror "github.com/msto63/typeutils/core/error"
	"github.com/msto63/typeutils/core/log"
	"github.com/msto63/typeutils/utils/stringx"
)

// DebounceInterval is the quiet period after the last file event before a
// reload is attempted
var DebounceInterval = 100 * time.Millisecond

// OnChange registers a handler called after every successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	if handler == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.changeHandlers = append(c.changeHandlers, handler)
}

// OnError registers a handler called when a reload fails
func (c *Config) OnError(handler ErrorHandler) {
	if handler == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errorHandlers = append(c.errorHandlers, handler)
}

// Watch starts watching the configuration file until ctx is cancelled or
// Close is called. The parent directory is watched so that editors which
// replace the file by rename are picked up. Calling Watch while already
// watching is a no-op.
func (c *Config) Watch(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stringx.IsBlank(c.filePath) {
		return tuerror.New("file path required for watching").
			WithCode(tuerror.CodeValidationFailed).
			WithOperation("config.Watch")
	}
	if c.watcher != nil {
		return nil
	}

	absPath, err := filepath.Abs(c.filePath)
	if err != nil {
		return tuerror.Wrap(err, "failed to resolve config path").
			WithCode(tuerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return tuerror.Wrap(err, "failed to create file watcher").
			WithCode(tuerror.CodeOperationFailed).
			WithOperation("config.Watch")
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		_ = watcher.Close()
		return tuerror.Wrap(err, "failed to watch config directory").
			WithCode(tuerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("directory", filepath.Dir(absPath))
	}

	if ctx == nil {
		ctx = context.Background()
	}
	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.watcher = watcher
	c.stopWatch = cancel
	c.watchDone = done

	go c.watchLoop(watchCtx, watcher, absPath, done)

	c.logger.Info("watching configuration", log.String("path", absPath))
	return nil
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watcher != nil
}

// Close stops watching and waits for the watch goroutine and any reload it
// scheduled to finish, so no handler runs after Close returns. Close must not
// be called from a change or error handler. Close on a configuration that is
// not watching does nothing.
func (c *Config) Close() error {
	c.mu.Lock()
	watcher, cancel, done := c.watcher, c.stopWatch, c.watchDone
	c.watcher, c.stopWatch, c.watchDone = nil, nil, nil
	c.mu.Unlock()

	if watcher == nil {
		return nil
	}
	cancel()
	err := watcher.Close()
	<-done
	c.reloads.Wait()
	return err
}

func (c *Config) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, done chan struct{}) {
	defer close(done)

	// Every scheduled reload holds one count on c.reloads until its callback
	// returns or its timer is stopped before firing.
	var debounce *time.Timer
	cancelPending := func() {
		if debounce != nil && debounce.Stop() {
			c.reloads.Done()
		}
	}
	defer cancelPending()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cancelPending()
			c.reloads.Add(1)
			debounce = time.AfterFunc(DebounceInterval, func() {
				defer c.reloads.Done()
				if ctx.Err() != nil {
					return
				}
				_ = c.Reload()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.logger.WarnWithErr("config watcher error", err)
		}
	}
}

// Reload re-reads the configuration file. On failure the current data is
// kept, error handlers are notified and the error is returned. On success
// change handlers are called in registration order.
func (c *Config) Reload() error {
	path := c.FilePath()
	format := c.Format()
	timer := c.logger.StartTimer("config reload").WithField("path", path)

	content, err := os.ReadFile(path)
	if err != nil {
		reloadErr := tuerror.Wrap(err, "failed to read config file during reload").
			WithCode(tuerror.CodeConfigError).
			WithOperation("config.Reload").
			WithDetail("filePath", path)
		timer.StopWithError(reloadErr)
		c.notifyError(reloadErr)
		return reloadErr
	}

	newData, err := parseContent(content, format)
	if err != nil {
		reloadErr := tuerror.Wrap(err, "failed to parse config file during reload").
			WithCode(tuerror.CodeInvalidFormat).
			WithOperation("config.Reload").
			WithDetail("filePath", path).
			WithDetail("format", format.String())
		timer.StopWithError(reloadErr)
		c.notifyError(reloadErr)
		return reloadErr
	}

	oldConfig := c.snapshot()

	c.mu.Lock()
	c.data = newData
	if info, statErr := os.Stat(path); statErr == nil {
		c.lastModified = info.ModTime()
	}
	handlers := append([]ChangeHandler(nil), c.changeHandlers...)
	c.mu.Unlock()

	newConfig := c.snapshot()
	timer.Stop()

	for _, handler := range handlers {
		handler(oldConfig, newConfig)
	}
	return nil
}

func (c *Config) notifyError(err error) {
	c.mu.RLock()
	handlers := append([]ErrorHandler(nil), c.errorHandlers...)
	c.mu.RUnlock()

	for _, handler := range handlers {
		handler(err)
	}
}
