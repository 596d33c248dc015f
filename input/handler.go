// This file is part of Atom.
//
// Atom is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Atom is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Atom.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"sync/atomic"

	"github.com/fpedrolucas95/Atom/logger"
)

// Handler implementations receive decoded events from the driver.
//
// Delivery is best-effort. An implementation that cannot accept an event
// should drop it and return quickly rather than block the drain loop.
type Handler interface {
	HandleInput(ev Event) error
}

// Queue is a Handler that forwards events over a buffered channel. Events
// that arrive while the channel is full are dropped and counted.
type Queue struct {
	events  chan Event
	dropped uint32
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(size int) *Queue {
	return &Queue{
		events: make(chan Event, size),
	}
}

// HandleInput implements the Handler interface. It never blocks.
func (q *Queue) HandleInput(ev Event) error {
	select {
	case q.events <- ev:
	default:
		atomic.AddUint32(&q.dropped, 1)
		logger.Logf("input", "dropped %s event", ev.Source())
	}
	return nil
}

// Events returns the channel the queue forwards to.
func (q *Queue) Events() <-chan Event {
	return q.events
}

// Dropped returns the number of events dropped because the channel was full.
func (q *Queue) Dropped() int {
	return int(atomic.LoadUint32(&q.dropped))
}
