package worker

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "worker.lock")
}

func TestFileLock_AcquireRelease(t *testing.T) {
	path := lockPath(t)
	lock := NewFileLock(path, time.Minute, nil)

	require.NoError(t, lock.Acquire())
	_, err := os.Stat(path)
	require.NoError(t, err, "marker file exists while held")

	// reacquiring from the same holder is a no-op
	require.NoError(t, lock.Acquire())

	lock.Release()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "marker removed on release")

	// release twice is safe
	lock.Release()
}

func TestFileLock_SecondInstanceRejected(t *testing.T) {
	path := lockPath(t)
	first := NewFileLock(path, time.Minute, nil)
	require.NoError(t, first.Acquire())
	defer first.Release()

	second := NewFileLock(path, time.Minute, nil)
	err := second.Acquire()
	require.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestFileLock_MarkerContents(t *testing.T) {
	path := lockPath(t)
	lock := NewFileLock(path, time.Minute, nil)
	require.NoError(t, lock.Acquire())
	defer lock.Release()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var marker lockMarker
	require.NoError(t, json.Unmarshal(b, &marker))
	assert.Equal(t, os.Getpid(), marker.PID)
	assert.False(t, marker.AcquiredAt.IsZero())
}

func TestFileLock_StaleMarkerReclaimed(t *testing.T) {
	path := lockPath(t)

	stale := lockMarker{PID: 999999, Hostname: "gone", AcquiredAt: time.Now().Add(-2 * time.Hour)}
	b, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	lock := NewFileLock(path, 30*time.Minute, nil)
	require.NoError(t, lock.Acquire(), "stale marker should be reclaimed")
	lock.Release()
}

func TestFileLock_FreshMarkerNotReclaimed(t *testing.T) {
	path := lockPath(t)

	fresh := lockMarker{PID: 999999, Hostname: "other", AcquiredAt: time.Now().Add(-time.Minute)}
	b, err := json.Marshal(fresh)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o644))

	lock := NewFileLock(path, 30*time.Minute, nil)
	require.ErrorIs(t, lock.Acquire(), ErrAlreadyRunning)
}

func TestFileLock_CorruptMarkerUsesMtime(t *testing.T) {
	path := lockPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	// fresh mtime: treated as a live holder
	lock := NewFileLock(path, 30*time.Minute, nil)
	require.ErrorIs(t, lock.Acquire(), ErrAlreadyRunning)

	// age the file past the threshold
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))
	require.NoError(t, lock.Acquire())
	lock.Release()
}
