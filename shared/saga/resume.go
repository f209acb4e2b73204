package saga

import (
	"context"

	"github.com/pkg/errors"
)

// ErrTokenConsumed is returned by a Resumer when the orchestrator no longer
// accepts the token (it timed out, was already used, or never existed).
// Retrying with the same token is pointless.
var ErrTokenConsumed = errors.New("resume token expired or already consumed")

// Resumer signals the outcome of a suspended task back to the orchestrator.
// Exactly one of the two methods may be called per token.
type Resumer interface {
	ResumeSuccess(ctx context.Context, token string, output interface{}) error
	ResumeFailure(ctx context.Context, token string, errorName, cause string) error
}
