package index

import (
	"fmt"
	"os"
	"path/filepath"
)

// RebuildLock guards the index against concurrent rebuilds from other
// processes (a build racing a watch, typically).
type RebuildLock struct {
	file *os.File
}

// AcquireRebuildLock takes the site's rebuild lock without blocking.
// Returns ErrIndexLocked when another process holds it.
func AcquireRebuildLock(sitePath string) (*RebuildLock, error) {
	dbDir := filepath.Join(sitePath, Dir)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", Dir, err)
	}

	lockFile, err := os.OpenFile(filepath.Join(dbDir, "index.lock"), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open index lock: %w", err)
	}

	if err := lockFileExclusiveNonBlocking(lockFile); err != nil {
		lockFile.Close()
		if isWouldBlockError(err) {
			return nil, ErrIndexLocked
		}
		return nil, fmt.Errorf("failed to acquire index lock: %w", err)
	}

	return &RebuildLock{file: lockFile}, nil
}

// Release drops the lock.
func (l *RebuildLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	if unlockErr != nil {
		return unlockErr
	}
	return closeErr
}
