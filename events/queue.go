// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "iter"

// Queue is a FIFO of pending events. Window callbacks push onto it
// and the frame loop drains it on the same thread, so it is not
// safe for concurrent use.
type Queue struct {
	pending []Event
}

// Send adds the event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.pending = append(q.pending, ev)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain returns a sequence that removes and yields pending events in
// the order they were sent. If iteration stops early, the remaining
// events stay queued for the next Drain.
func (q *Queue) Drain() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for len(q.pending) > 0 {
			ev := q.pending[0]
			q.pending[0] = nil
			q.pending = q.pending[1:]
			if len(q.pending) == 0 {
				q.pending = nil
			}
			if !yield(ev) {
				return
			}
		}
	}
}
