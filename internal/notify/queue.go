// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package notify holds the single user-facing status message. Despite the
// Queue name only one message is visible at a time: Show replaces it and
// arms an auto-dismiss timer.
package notify

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/toeirei/roster/internal/logging"
)

// DefaultDuration is how long a message stays visible.
const DefaultDuration = 3 * time.Second

type Kind int

const (
	Success Kind = iota + 1
	Error
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "none"
	}
}

// Message is the content of the slot. The zero Message is an empty slot.
type Message struct {
	Text string
	Kind Kind
	Seq  uint64
}

// Empty reports whether m represents an empty slot.
func (m Message) Empty() bool { return m.Text == "" }

// Notifier is what the directory core reports outcomes to.
type Notifier interface {
	Show(text string, kind Kind)
}

type Queue struct {
	clock    clockwork.Clock
	duration time.Duration

	mu      sync.Mutex
	current Message
	seq     uint64
	timers  map[uint64]clockwork.Timer
	subs    map[int]chan Message
	nextSub int
	closed  bool
}

// *Queue implements Notifier
var _ Notifier = (*Queue)(nil)

type Option func(*Queue)

// WithClock replaces the real clock (tests pass a fake one).
func WithClock(c clockwork.Clock) Option {
	return func(q *Queue) { q.clock = c }
}

// WithDuration sets the auto-dismiss delay. Non-positive values keep the
// default.
func WithDuration(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.duration = d
		}
	}
}

func New(opts ...Option) *Queue {
	q := &Queue{
		clock:    clockwork.NewRealClock(),
		duration: DefaultDuration,
		timers:   map[uint64]clockwork.Timer{},
		subs:     map[int]chan Message{},
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Show replaces the current message and arms a dismiss timer for it.
// Earlier timers keep running: when one fires it clears whatever message is
// visible at that moment, which may be a newer one.
func (q *Queue) Show(text string, kind Kind) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.seq++
	seq := q.seq
	q.current = Message{Text: text, Kind: kind, Seq: seq}
	q.timers[seq] = q.clock.AfterFunc(q.duration, func() { q.expire(seq) })
	q.publishLocked(q.current)
	q.mu.Unlock()

	logging.Debugf("notify: %s %q", kind, text)
}

// Dismiss clears the slot immediately.
func (q *Queue) Dismiss() {
	q.mu.Lock()
	if q.current.Empty() {
		q.mu.Unlock()
		return
	}
	q.current = Message{}
	q.publishLocked(q.current)
	q.mu.Unlock()
}

// Current returns the visible message, if any.
func (q *Queue) Current() (Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current, !q.current.Empty()
}

// Pending returns the number of armed timers.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.timers)
}

// Subscribe returns a channel receiving every slot change (an empty Message
// when the slot is cleared) and a function to stop the subscription. Slow
// readers only see the latest change.
func (q *Queue) Subscribe() (<-chan Message, func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	ch := make(chan Message, 1)
	if q.closed {
		close(ch)
		return ch, func() {}
	}
	id := q.nextSub
	q.nextSub++
	q.subs[id] = ch
	return ch, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		if c, ok := q.subs[id]; ok {
			delete(q.subs, id)
			close(c)
		}
	}
}

// Close stops outstanding timers and ends all subscriptions.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	for seq, t := range q.timers {
		t.Stop()
		delete(q.timers, seq)
	}
	for id, c := range q.subs {
		delete(q.subs, id)
		close(c)
	}
}

func (q *Queue) expire(seq uint64) {
	q.mu.Lock()
	delete(q.timers, seq)
	if q.closed || q.current.Empty() {
		q.mu.Unlock()
		return
	}
	q.current = Message{}
	q.publishLocked(q.current)
	q.mu.Unlock()
}

// publishLocked hands m to every subscriber without blocking. q.mu must be
// held so subscribers observe changes in slot order.
func (q *Queue) publishLocked(m Message) {
	for _, c := range q.subs {
		select {
		case c <- m:
		default:
			// drop the stale value so the reader sees the latest state
			select {
			case <-c:
			default:
			}
			select {
			case c <- m:
			default:
			}
		}
	}
}
