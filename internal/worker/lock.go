package worker

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// ErrAlreadyRunning means another worker instance holds the lock. Callers
// treat it as a clean, silent exit, not a failure.
var ErrAlreadyRunning = errors.New("another worker instance is already running")

// Locker is the single-instance guard the runner acquires before touching
// the queue.
type Locker interface {
	Acquire() error
	Release()
}

type lockMarker struct {
	PID        int       `json:"pid"`
	Hostname   string    `json:"hostname"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// FileLock is a filesystem-marker lock with staleness detection: a marker
// older than StaleAfter is treated as abandoned by a crashed worker and
// reclaimed.
type FileLock struct {
	path       string
	staleAfter time.Duration
	log        *slog.Logger

	mu   sync.Mutex
	held bool
}

func NewFileLock(path string, staleAfter time.Duration, logger *slog.Logger) *FileLock {
	if staleAfter <= 0 {
		staleAfter = 30 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileLock{path: path, staleAfter: staleAfter, log: logger}
}

// Acquire takes the lock or returns ErrAlreadyRunning immediately; it
// never blocks waiting for the holder. A stale marker is removed and
// acquisition retried once.
func (l *FileLock) Acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		return nil
	}

	err := l.tryCreate()
	if err == nil {
		l.held = true
		return nil
	}
	if !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create lock file: %w", err)
	}

	age, readErr := l.markerAge()
	if readErr != nil {
		// unreadable marker: fall back to file mtime, else treat as live
		if st, serr := os.Stat(l.path); serr == nil {
			age = time.Since(st.ModTime())
		} else {
			return ErrAlreadyRunning
		}
	}
	if age < l.staleAfter {
		return ErrAlreadyRunning
	}

	l.log.Warn("removing stale worker lock", "path", l.path, "age", age)
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale lock: %w", err)
	}
	if err := l.tryCreate(); err != nil {
		if errors.Is(err, os.ErrExist) {
			return ErrAlreadyRunning
		}
		return fmt.Errorf("create lock file: %w", err)
	}
	l.held = true
	return nil
}

// Release is idempotent and safe to defer on every exit path.
func (l *FileLock) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.held {
		return
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		l.log.Error("failed to remove worker lock", "path", l.path, "error", err)
	}
	l.held = false
}

func (l *FileLock) tryCreate() error {
	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	hostname, _ := os.Hostname()
	marker := lockMarker{
		PID:        os.Getpid(),
		Hostname:   hostname,
		AcquiredAt: time.Now().UTC(),
	}
	if err := json.NewEncoder(f).Encode(marker); err != nil {
		_ = f.Close()
		_ = os.Remove(l.path)
		return err
	}
	return f.Close()
}

func (l *FileLock) markerAge() (time.Duration, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		return 0, err
	}
	var marker lockMarker
	if err := json.Unmarshal(b, &marker); err != nil {
		return 0, err
	}
	if marker.AcquiredAt.IsZero() {
		return 0, errors.New("lock marker has no timestamp")
	}
	return time.Since(marker.AcquiredAt), nil
}
