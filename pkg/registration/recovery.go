package registration

import (
	"context"
	"strings"

	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/rop"
	"github.com/ib-77/ropsignup/pkg/rop/solo"
)

const (
	DefaultEmail   = "user@default.com"
	SuggestedEmail = "user@suggested.com"
)

// WithFallback substitutes DefaultEmail for an email failure whose message
// mentions "Missing @". Any other failure is returned unchanged.
func WithFallback(ctx context.Context, r rop.Result[string, regerrors.EmailError]) rop.Result[string, regerrors.EmailError] {
	return solo.Recover(ctx, r, substituteOn("Missing @", DefaultEmail))
}

// WithConditionalHandling substitutes SuggestedEmail when the failure message
// mentions "domain" and propagates everything else.
func WithConditionalHandling(ctx context.Context, r rop.Result[string, regerrors.EmailError]) rop.Result[string, regerrors.EmailError] {
	return solo.Recover(ctx, r, substituteOn("domain", SuggestedEmail))
}

// Matching is on message text, so a reworded message silently disables
// recovery.
func substituteOn(fragment, email string) func(context.Context, regerrors.EmailError) (string, bool) {
	return func(_ context.Context, err regerrors.EmailError) (string, bool) {
		if strings.Contains(err.Message, fragment) {
			return email, true
		}
		return "", false
	}
}
