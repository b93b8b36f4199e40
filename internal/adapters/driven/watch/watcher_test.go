package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

func TestHandleFsEvent(t *testing.T) {
	path := "/images/lena.png"

	tests := []struct {
		name  string
		event fsnotify.Event
		want  *domain.FileEvent
	}{
		{"write", fsnotify.Event{Name: path, Op: fsnotify.Write}, &domain.FileEvent{Path: path}},
		{"create", fsnotify.Event{Name: path, Op: fsnotify.Create}, &domain.FileEvent{Path: path}},
		{"remove", fsnotify.Event{Name: path, Op: fsnotify.Remove}, &domain.FileEvent{Path: path, Removed: true}},
		{"rename", fsnotify.Event{Name: path, Op: fsnotify.Rename}, &domain.FileEvent{Path: path, Removed: true}},
		{"chmod", fsnotify.Event{Name: path, Op: fsnotify.Chmod}, nil},
		{"other file", fsnotify.Event{Name: "/images/other.png", Op: fsnotify.Write}, nil},
		{"unclean name", fsnotify.Event{Name: "/images/./lena.png", Op: fsnotify.Write}, &domain.FileEvent{Path: path}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handleFsEvent(path, tt.event))
		})
	}
}

func TestWatcher_Watch_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w := New()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.png"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0600))

	select {
	case ev := <-events:
		assert.Equal(t, path, ev.Path)
		assert.False(t, ev.Removed)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for write event")
	}
}

func TestWatcher_Watch_Remove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w := New()
	defer w.Close()

	events, err := w.Watch(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Removed {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for remove event")
		}
	}
}

func TestWatcher_Watch_CancelClosesChannel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w := New()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())

	events, err := w.Watch(ctx, path)
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
	assert.Zero(t, w.active(), "cancelled watch is released")
}

func TestWatcher_Watch_ReleasesOnlyCancelledWatch(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.png")
	second := filepath.Join(dir, "second.png")
	require.NoError(t, os.WriteFile(first, []byte("v1"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("v1"), 0600))

	w := New()
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	keep, stop := context.WithCancel(context.Background())
	defer stop()

	events, err := w.Watch(ctx, first)
	require.NoError(t, err)
	_, err = w.Watch(keep, second)
	require.NoError(t, err)
	require.Equal(t, 2, w.active())

	cancel()
	for range events {
	}

	assert.Equal(t, 1, w.active())
}

func TestWatcher_Watch_MissingDirectory(t *testing.T) {
	w := New()
	defer w.Close()

	_, err := w.Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "image.png"))
	assert.Error(t, err)
}

func TestWatcher_Close(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w := New()
	events, err := w.Watch(context.Background(), path)
	require.NoError(t, err)

	require.NoError(t, w.Close())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after Close")
	}

	_, err = w.Watch(context.Background(), path)
	assert.ErrorIs(t, err, ErrClosed)
	assert.Zero(t, w.active())
}
