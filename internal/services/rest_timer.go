package services

import (
	"sync"
	"time"
)

// RestTimer is a second-granularity countdown for resting between sets. It
// lives entirely outside the data model: its only tie to the rest of the app
// is the configured default duration it is constructed with. Start spawns a
// ticking goroutine; Pause and Reset stop it.
type RestTimer struct {
	mu        sync.Mutex
	duration  int // seconds
	remaining int
	running   bool
	stop      chan struct{}
}

func NewRestTimer(duration int) *RestTimer {
	if duration <= 0 {
		duration = 1
	}
	return &RestTimer{duration: duration, remaining: duration}
}

func (t *RestTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return
	}
	if t.remaining <= 0 {
		t.remaining = t.duration
	}
	t.running = true
	t.stop = make(chan struct{})
	go t.run(t.stop)
}

func (t *RestTimer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.halt()
}

// Reset stops the countdown and puts the full duration back on the clock.
func (t *RestTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.halt()
	t.remaining = t.duration
}

// SetDuration changes the duration and restarts the countdown from it,
// paused.
func (t *RestTimer) SetDuration(duration int) {
	if duration <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.halt()
	t.duration = duration
	t.remaining = duration
}

func (t *RestTimer) Duration() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duration
}

func (t *RestTimer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

func (t *RestTimer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// halt must be called with the lock held.
func (t *RestTimer) halt() {
	if !t.running {
		return
	}
	t.running = false
	close(t.stop)
	t.stop = nil
}

func (t *RestTimer) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if !t.tick() {
				return
			}
		}
	}
}

// tick counts one second down and reports whether the countdown keeps going.
func (t *RestTimer) tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.running = false
		t.stop = nil
		return false
	}
	return true
}
