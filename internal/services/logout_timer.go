package services

import (
	"sync"
	"time"
)

// logoutTimer is a single cancellable countdown decremented once per tick.
// Reaching zero fires the expiry callback exactly once; a countdown that was
// stopped or superseded never fires. At most one countdown is live at a time.
type logoutTimer struct {
	mu        sync.Mutex
	interval  time.Duration
	remaining int
	stop      chan struct{}
	onExpire  func()
}

func newLogoutTimer(interval time.Duration, onExpire func()) *logoutTimer {
	return &logoutTimer{
		interval: interval,
		onExpire: onExpire,
	}
}

// Start begins a fresh countdown of the given number of ticks, cancelling any
// countdown already running.
func (t *logoutTimer) Start(ticks int) {
	t.mu.Lock()
	t.cancelLocked()
	t.remaining = ticks
	stop := make(chan struct{})
	t.stop = stop
	t.mu.Unlock()

	go t.run(stop)
}

// Stop cancels the running countdown. A pending expiry will not fire.
func (t *logoutTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.remaining = 0
}

// Remaining reports the ticks left before expiry.
func (t *logoutTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *logoutTimer) cancelLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *logoutTimer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			expired, live := t.tick(stop)
			if !live {
				return
			}
			if expired {
				t.onExpire()
				return
			}
		}
	}
}

// tick decrements the countdown. The stop channel identifies the countdown
// this goroutine belongs to; a Start that raced in between supersedes it.
func (t *logoutTimer) tick(stop chan struct{}) (expired, live bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stop != stop {
		return false, false
	}

	t.remaining--
	if t.remaining <= 0 {
		t.remaining = 0
		t.stop = nil
		return true, true
	}
	return false, true
}
