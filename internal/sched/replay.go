package sched

import (
	"context"
	"errors"
)

// ErrClockStopped is returned by Replay when the clock closes early.
var ErrClockStopped = errors.New("tick clock stopped")

// Replay walks events in simulated time, waiting for one clock tick per
// simulated tick, and hands each event to fn once its time is reached.
// The clock must already be started; Replay does not stop it.
func Replay(ctx context.Context, events []StatusEvent, clock *TickClock, fn func(StatusEvent)) error {
	now, i := 0, 0
	for i < len(events) {
		for i < len(events) && events[i].Time <= now {
			fn(events[i])
			i++
		}
		if i == len(events) {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-clock.Ch:
			if !ok {
				return ErrClockStopped
			}
			now++
		}
	}
	return nil
}
