// Package errlog keeps failures as plain values in an append-only, ordered
// log owned by the caller. The validation packages never write to it.
package errlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zoobzio/clockz"

	"github.com/ib-77/ropsignup/pkg/rop"
)

type Entry struct {
	ID        uuid.UUID
	Timestamp time.Time
	Err       error
}

type Log struct {
	mu      sync.Mutex
	clock   clockz.Clock
	entries []Entry
}

func New() *Log {
	return &Log{}
}

// WithClock sets a custom clock for testing.
func (l *Log) WithClock(clock clockz.Clock) *Log {
	l.clock = clock
	return l
}

func (l *Log) getClock() clockz.Clock {
	if l.clock == nil {
		return clockz.RealClock
	}
	return l.clock
}

// Append records err and returns the stored entry. A nil err is ignored.
func (l *Log) Append(err error) (Entry, bool) {
	if rop.IsNil(err) {
		return Entry{}, false
	}

	entry := Entry{ID: uuid.New(), Timestamp: l.getClock().Now().UTC(), Err: err}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return entry, true
}

// Entries returns a copy of the log in append order.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Observe appends the error of a failed result, one entry per joined error,
// and returns the result unchanged.
func Observe[T any, E error](l *Log, r rop.Result[T, E]) rop.Result[T, E] {
	if r.IsFailure() {
		for _, err := range rop.GetErrors(r.Err()) {
			l.Append(err)
		}
	}
	return r
}
