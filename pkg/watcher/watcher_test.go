package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsDebouncedWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roomplan.toml")
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fw, err := NewFileWatcher(50*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	var got atomic.Value
	require.NoError(t, fw.Watch([]string{path}, func(changed string) {
		got.Store(changed)
		calls.Add(1)
	}))
	fw.Start()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('b' + i)}, 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, got.Load())

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst of writes is debounced into one callback")
}

func TestWatchSeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roomplan.toml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fw, err := NewFileWatcher(20*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer fw.Close()

	var calls atomic.Int32
	require.NoError(t, fw.Watch([]string{path}, func(string) { calls.Add(1) }))
	fw.Start()

	tmp := filepath.Join(dir, "roomplan.toml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("b"), 0o644))
	require.NoError(t, os.Rename(tmp, path))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestRemoveAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roomplan.toml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	fw, err := NewFileWatcher(10*time.Millisecond, zerolog.Nop())
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, fw.Watch([]string{path}, func(string) {}))
	assert.NoError(t, fw.RemoveAll())
}
