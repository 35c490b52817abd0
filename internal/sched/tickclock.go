// internal/sched/tickclock.go

package sched

import (
	"sync"
	"sync/atomic"
	"time"
)

// TickClock emits ticks and counts them atomically.
type TickClock struct {
	Ch       chan struct{}
	count    atomic.Int64
	stop     chan struct{}
	stopOnce sync.Once
}

// NewTickClock creates a clock but does not share it.
func NewTickClock(buffer int) *TickClock {
	return &TickClock{
		Ch:   make(chan struct{}, buffer),
		stop: make(chan struct{}),
	}
}

// Start begins emitting ticks at the given interval.
func (c *TickClock) Start(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		defer close(c.Ch)
		for {
			select {
			case <-ticker.C:
				c.count.Add(1)
				select {
				case c.Ch <- struct{}{}:
				case <-c.stop:
					return
				}
			case <-c.stop:
				return
			}
		}
	}()
}

// Stop signals the clock to stop emitting ticks. Safe to call twice.
func (c *TickClock) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}

// Count returns the current tick count atomically.
func (c *TickClock) Count() int64 {
	return c.count.Load()
}
