package lookup

//go:generate mockgen -source=lookup.go -destination=mocks/checker_mock.go -package=mocks Checker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/zoobzio/clockz"
)

type DirectorySuite struct {
	suite.Suite
	dir *Directory
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) SetupTest() {
	s.dir = New("taken@example.com")
}

func (s *DirectorySuite) TestExists() {
	ctx := context.Background()

	s.Run("finds seeded email", func() {
		ok, err := s.dir.Exists(ctx, "taken@example.com")
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("compares normalized addresses", func() {
		ok, err := s.dir.Exists(ctx, "  Taken@Example.COM ")
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("reports unknown email as absent", func() {
		ok, err := s.dir.Exists(ctx, "free@example.com")
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("returns context error when canceled", func() {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.dir.Exists(canceled, "taken@example.com")
		s.Require().ErrorIs(err, context.Canceled)
	})
}

func (s *DirectorySuite) TestAdd() {
	ctx := context.Background()

	s.Run("adds new email", func() {
		s.Require().NoError(s.dir.Add(ctx, "new@example.com"))
		ok, err := s.dir.Exists(ctx, "new@example.com")
		s.Require().NoError(err)
		s.True(ok)
		s.Equal(2, s.dir.Len())
	})

	s.Run("rejects duplicate", func() {
		err := s.dir.Add(ctx, "TAKEN@example.com")
		s.Require().ErrorIs(err, ErrAlreadyRegistered)
	})
}

type stubChecker struct {
	calls int
	found bool
	err   error
}

func (c *stubChecker) Exists(context.Context, string) (bool, error) {
	c.calls++
	return c.found, c.err
}

func TestDelayed_WaitsForClock(t *testing.T) {
	t.Parallel()
	clock := clockz.NewFakeClock()
	next := &stubChecker{found: true}
	checker := NewDelayed(next, 50*time.Millisecond).WithClock(clock)

	done := make(chan struct{})
	var found bool
	var err error
	go func() {
		found, err = checker.Exists(context.Background(), "a@b.com")
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("lookup finished before the delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	clock.Advance(50 * time.Millisecond)
	clock.BlockUntilReady()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("test timed out")
	}

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || next.calls != 1 {
		t.Fatalf("expected delegated lookup to report found once, got found=%v calls=%d", found, next.calls)
	}
}

func TestDelayed_ContextCanceled(t *testing.T) {
	t.Parallel()
	next := &stubChecker{}
	checker := NewDelayed(next, time.Hour).WithClock(clockz.NewFakeClock())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := checker.Exists(ctx, "a@b.com")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if next.calls != 0 {
		t.Fatalf("delegate must not be called after cancellation")
	}
}

func TestDelayed_ZeroDelayDelegates(t *testing.T) {
	t.Parallel()
	boom := errors.New("down")
	checker := NewDelayed(&stubChecker{err: boom}, 0)

	_, err := checker.Exists(context.Background(), "a@b.com")
	if !errors.Is(err, boom) {
		t.Fatalf("expected delegate error, got %v", err)
	}
}
