// Package batch registers many requests concurrently on a lite pipeline.
// Each request still runs the fail-fast order: local checks first, then the
// duplicate lookup.
package batch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ib-77/ropsignup/pkg/errlog"
	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/registration"
	"github.com/ib-77/ropsignup/pkg/rop"
	"github.com/ib-77/ropsignup/pkg/rop/core"
	"github.com/ib-77/ropsignup/pkg/rop/lite"
	"github.com/ib-77/ropsignup/pkg/stats"
)

const (
	DefaultLanes = 2

	MsgCanceled = "Registration canceled"
)

type Request struct {
	Email    string
	Password string
	Age      int
}

type Outcome struct {
	Request Request
	Result  rop.Result[registration.Payload, regerrors.Error]
}

type Runner struct {
	registrar *registration.Registrar
	lanes     int
	log       *errlog.Log
	recorder  stats.Recorder
	logger    *slog.Logger
}

type Option func(*Runner)

// WithLanes sets how many registrations run at once.
func WithLanes(n int) Option {
	return func(r *Runner) {
		r.lanes = n
	}
}

func WithErrorLog(log *errlog.Log) Option {
	return func(r *Runner) {
		r.log = log
	}
}

func WithRecorder(recorder stats.Recorder) Option {
	return func(r *Runner) {
		r.recorder = recorder
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func New(registrar *registration.Registrar, opts ...Option) (*Runner, error) {
	if registrar == nil {
		return nil, errors.New("registrar is required")
	}

	r := &Runner{
		registrar: registrar,
		lanes:     DefaultLanes,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

type job struct {
	index int
	req   Request
}

type done struct {
	index   int
	outcome Outcome
}

// Run registers every request and returns one outcome per request in input
// order. Outcomes are logged and recorded in that order too. A worker limit
// stored in ctx with core.WithWorkerOptions overrides the configured lanes.
func (r *Runner) Run(ctx context.Context, reqs []Request) []Outcome {
	jobs := make([]job, len(reqs))
	for i, req := range reqs {
		jobs[i] = job{index: i, req: req}
	}

	register := lite.Map[job, done, regerrors.Error](func(ctx context.Context, j job) done {
		res := r.registrar.Register(ctx, j.req.Email, j.req.Password, j.req.Age)
		return done{index: j.index, outcome: Outcome{Request: j.req, Result: res}}
	})

	lanes := core.GetWorkerMaxCount(ctx, r.lanes)
	finished := core.FromChanMany(ctx,
		lite.Turnout(ctx, core.ToChanManyResults[job, regerrors.Error](ctx, jobs), register, lanes))

	outcomes := make([]Outcome, len(reqs))
	seen := make([]bool, len(reqs))
	for _, f := range finished {
		d := f.Result()
		outcomes[d.index] = d.outcome
		seen[d.index] = true
	}

	for i, req := range reqs {
		if !seen[i] {
			res := rop.Fail[registration.Payload, regerrors.Error](regerrors.DatabaseError{Message: MsgCanceled, Err: ctx.Err()})
			outcomes[i] = Outcome{Request: req, Result: res}
		}
		r.observe(ctx, outcomes[i])
	}

	return outcomes
}

func (r *Runner) observe(ctx context.Context, o Outcome) {
	if r.log != nil {
		errlog.Observe(r.log, o.Result)
	}
	if r.recorder != nil {
		r.recorder.Record(stats.Outcome(o.Result))
	}
	if r.logger != nil {
		if o.Result.IsFailure() {
			r.logger.DebugContext(ctx, "registration rejected",
				"email", o.Request.Email, "kind", o.Result.Err().Kind(), "error", o.Result.Err().Error())
		} else {
			r.logger.DebugContext(ctx, "registration accepted", "email", o.Result.Result().Email)
		}
	}
}
