package event

import (
	"time"

	"duskline/term"
)

// IdleWindow is how long the buffer waits for another event before
// flushing what it has collected so far, per
// original_source/promkit-async/src/event_buffer.rs.
const IdleWindow = 10 * time.Millisecond

// Run reads raw events from in, batches whatever arrives within each
// IdleWindow-wide burst, coalesces each burst with Coalesce, and sends
// the resulting WrappedEvents to out. It returns when in is closed,
// after closing out.
func Run(in <-chan term.Event, out chan<- []WrappedEvent) {
	defer close(out)
	var pending []term.Event
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	timerActive := false

	flush := func() {
		if len(pending) == 0 {
			return
		}
		out <- Coalesce(pending)
		pending = nil
	}

	for {
		if timerActive {
			select {
			case e, ok := <-in:
				if !ok {
					if !timer.Stop() {
						<-timer.C
					}
					flush()
					return
				}
				pending = append(pending, e)
				if !timer.Stop() {
					<-timer.C
				}
				timer.Reset(IdleWindow)
			case <-timer.C:
				timerActive = false
				flush()
			}
		} else {
			e, ok := <-in
			if !ok {
				flush()
				return
			}
			pending = append(pending, e)
			timer.Reset(IdleWindow)
			timerActive = true
		}
	}
}
