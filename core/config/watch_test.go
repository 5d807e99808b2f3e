// File: watch_test.go
// Title: Configuration Hot Reload Tests
// Description: Tests for fsnotify based reloading, change and error
//              handlers and watcher shutdown.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-15

package config

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tuerror "github.com/msto63/typeutils/core/error"
)

func fastDebounce(t *testing.T) {
	t.Helper()
	previous := DebounceInterval
	DebounceInterval = 10 * time.Millisecond
	t.Cleanup(func() { DebounceInterval = previous })
}

// replaceFile swaps content in with a rename so the watcher never sees a
// truncated file
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o600))
	require.NoError(t, os.Rename(tmp, path))
}

func TestWatchReloadsOnWrite(t *testing.T) {
	fastDebounce(t)
	path := writeFile(t, "typeutils.toml", "[stringx]\nellipsis = \"...\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{Watch: true, Logger: quietLogger()})
	require.NoError(t, err)
	defer cfg.Close()
	require.True(t, cfg.IsWatching())

	var mu sync.Mutex
	var oldValue, newValue string
	cfg.OnChange(func(oldConfig, newConfig *Config) {
		mu.Lock()
		defer mu.Unlock()
		oldValue = oldConfig.GetString(KeyEllipsis)
		newValue = newConfig.GetString(KeyEllipsis)
	})

	replaceFile(t, path, "[stringx]\nellipsis = \" >>\"\n")

	require.Eventually(t, func() bool {
		return cfg.StringxOptions().Ellipsis == " >>"
	}, 5*time.Second, 20*time.Millisecond)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return newValue == " >>"
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	assert.Equal(t, "...", oldValue)
	mu.Unlock()
}

func TestWatchKeepsDataOnParseError(t *testing.T) {
	fastDebounce(t)
	path := writeFile(t, "typeutils.yaml", "stringx:\n  separator: \"|\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{Logger: quietLogger()})
	require.NoError(t, err)
	require.NoError(t, cfg.Watch(context.Background()))
	defer cfg.Close()

	errs := make(chan error, 4)
	cfg.OnError(func(err error) {
		select {
		case errs <- err:
		default:
		}
	})

	replaceFile(t, path, "stringx: [unclosed\n")

	select {
	case err := <-errs:
		assert.True(t, tuerror.HasCode(err, tuerror.CodeInvalidFormat))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload error reported")
	}
	assert.Equal(t, "|", cfg.GetString(KeySeparator))
}

func TestWatchStopsWithContext(t *testing.T) {
	path := writeFile(t, "typeutils.toml", "")
	cfg, err := LoadWithOptions(path, LoadOptions{Logger: quietLogger()})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, cfg.Watch(ctx))
	require.NoError(t, cfg.Watch(ctx), "second Watch is a no-op")

	cancel()
	assert.NoError(t, cfg.Close())
	assert.False(t, cfg.IsWatching())
	assert.NoError(t, cfg.Close(), "Close is idempotent")
}

func TestCloseWaitsForReloadInFlight(t *testing.T) {
	fastDebounce(t)
	path := writeFile(t, "typeutils.toml", "[stringx]\nseparator = \"-\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{Watch: true, Logger: quietLogger()})
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	var finished atomic.Bool
	cfg.OnChange(func(_, _ *Config) {
		once.Do(func() { close(started) })
		<-release
		finished.Store(true)
	})

	replaceFile(t, path, "[stringx]\nseparator = \"+\"\n")
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("reload did not start")
	}

	closed := make(chan error, 1)
	go func() { closed <- cfg.Close() }()

	select {
	case <-closed:
		t.Fatal("Close returned while a change handler was running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
	assert.True(t, finished.Load())
}

func TestWatchRequiresFile(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	require.NoError(t, err)

	err = cfg.Watch(context.Background())
	assert.True(t, tuerror.HasCode(err, tuerror.CodeValidationFailed))
}

func TestReloadManually(t *testing.T) {
	path := writeFile(t, "typeutils.toml", "[log]\nlevel = \"info\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{Logger: quietLogger()})
	require.NoError(t, err)

	calls := 0
	cfg.OnChange(func(_, _ *Config) { calls++ })
	cfg.OnChange(nil)

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o600))
	require.NoError(t, cfg.Reload())
	assert.Equal(t, "warn", cfg.GetString("log.level"))
	assert.Equal(t, 1, calls)

	require.NoError(t, os.Remove(path))
	err = cfg.Reload()
	assert.True(t, tuerror.HasCode(err, tuerror.CodeConfigError))
	assert.Equal(t, "warn", cfg.GetString("log.level"))
}
