package fleet

import "sync"

// pathLocks serializes work on one working copy while letting different
// working copies proceed independently.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPathLocks() *pathLocks {
	return &pathLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// Lock acquires the lock for path and returns its release function.
func (l *pathLocks) Lock(path string) func() {
	l.mu.Lock()
	lock, ok := l.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[path] = lock
	}
	l.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
