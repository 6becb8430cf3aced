package app

import (
	"log"
	"time"
)

// Start launches the long press polling loop for the live stream. Hosts
// whose touch source delivers stationary phase events do not need it;
// the loop exists for sources that only report began/moved/ended.
// Calling Start twice is a no-op.
func (a *App) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return
	}

	a.stopCh = make(chan struct{})
	go a.runPolling(a.stopCh)

	log.Println("Long press polling started")
}

// Stop halts the polling loop.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	log.Println("Long press polling stopped")
}

// runPolling drives the polling activation path of the long press
// recognizers. The cadence adapts to the stream: fast while a press is
// down, slow when nothing is happening, mirroring how the recognizers
// themselves only care about time while a press is live.
func (a *App) runPolling(stopCh chan struct{}) {
	interval := IdlePollIntervalMs * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	active := false

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			a.mu.Lock()
			if a.enabled && a.pressDown {
				now := time.Now().UnixMilli()
				for _, r := range a.manager.LongPresses() {
					if r.Pressing() {
						r.Update(now, r.StartPosition())
					}
				}
			}
			pressDown := a.pressDown
			a.mu.Unlock()

			// Retune the cadence when press activity flips
			if pressDown != active {
				active = pressDown
				if active {
					interval = ActivePollIntervalMs * time.Millisecond
				} else {
					interval = IdlePollIntervalMs * time.Millisecond
				}
				ticker.Reset(interval)
			}
		}
	}
}
