// Package lookup provides the duplicate-email collaborator used after local
// validation succeeds.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Checker answers whether an email address is already registered.
// Failures to answer are reported as errors, never as a missing answer.
type Checker interface {
	Exists(ctx context.Context, email string) (bool, error)
}

var ErrAlreadyRegistered = errors.New("already registered")

// DefaultDelay is the simulated round trip of Delayed.
const DefaultDelay = 100 * time.Millisecond

// Directory keeps registered addresses in memory.
type Directory struct {
	mu     sync.RWMutex
	emails map[string]struct{}
}

// New constructs a directory seeded with emails.
func New(emails ...string) *Directory {
	d := &Directory{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		d.emails[normalize(e)] = struct{}{}
	}
	return d
}

func (d *Directory) Add(_ context.Context, email string) error {
	key := normalize(email)

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.emails[key]; ok {
		return fmt.Errorf("email %s: %w", key, ErrAlreadyRegistered)
	}
	d.emails[key] = struct{}{}
	return nil
}

func (d *Directory) Exists(ctx context.Context, email string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.emails[normalize(email)]
	return ok, nil
}

func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.emails)
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Delayed simulates a remote checker by waiting before each call.
type Delayed struct {
	next  Checker
	delay time.Duration
	clock clockz.Clock
}

func NewDelayed(next Checker, delay time.Duration) *Delayed {
	return &Delayed{next: next, delay: delay}
}

// WithClock sets a custom clock for testing.
func (d *Delayed) WithClock(clock clockz.Clock) *Delayed {
	d.clock = clock
	return d
}

func (d *Delayed) getClock() clockz.Clock {
	if d.clock == nil {
		return clockz.RealClock
	}
	return d.clock
}

func (d *Delayed) Exists(ctx context.Context, email string) (bool, error) {
	if d.delay > 0 {
		select {
		case <-d.getClock().After(d.delay):
		case <-ctx.Done():
			return false, fmt.Errorf("lookup %s: %w", email, ctx.Err())
		}
	}
	return d.next.Exists(ctx, email)
}
