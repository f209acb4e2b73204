package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/bookstore/fulfillment-saga/shared/logging"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SFNActivityRunner serves registered saga steps as Step Functions activities.
// Each step gets one long-polling loop; the task result is reported back over
// the task token.
type SFNActivityRunner struct {
	client   SFNAPI
	resumer  saga.Resumer
	registry *saga.Registry
	logger   *zap.Logger
	options  *activityRunnerOptions
}

type activityRunnerOptions struct {
	workerName          string
	activityARNs        map[string]string
	sleepTimeAfterError time.Duration
}

type ActivityRunnerOption func(*activityRunnerOptions)

// WithActivityARN binds a step name to the activity ARN it is polled from
func WithActivityARN(step, arn string) ActivityRunnerOption {
	return func(o *activityRunnerOptions) {
		o.activityARNs[step] = arn
	}
}

// WithWorkerName sets the worker name reported to Step Functions
func WithWorkerName(name string) ActivityRunnerOption {
	return func(o *activityRunnerOptions) {
		o.workerName = name
	}
}

// WithSleepTimeAfterError sets the pause after a failed poll
func WithSleepTimeAfterError(d time.Duration) ActivityRunnerOption {
	return func(o *activityRunnerOptions) {
		o.sleepTimeAfterError = d
	}
}

// NewSFNActivityRunner creates a new SFNActivityRunner
func NewSFNActivityRunner(client SFNAPI, resumer saga.Resumer, registry *saga.Registry, logger *zap.Logger, opts ...ActivityRunnerOption) *SFNActivityRunner {
	options := &activityRunnerOptions{
		workerName:          "saga-steps",
		activityARNs:        make(map[string]string),
		sleepTimeAfterError: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &SFNActivityRunner{
		client:   client,
		resumer:  resumer,
		registry: registry,
		logger:   logger,
		options:  options,
	}
}

// Run polls every bound activity until ctx is cancelled
func (r *SFNActivityRunner) Run(ctx context.Context) error {
	gr, ctx := errgroup.WithContext(ctx)

	for _, step := range r.registry.Names() {
		arn, ok := r.options.activityARNs[step]
		if !ok {
			r.logger.Warn("step_without_activity", zap.String("step", step))
			continue
		}

		step, arn := step, arn
		gr.Go(func() error {
			r.poll(ctx, step, arn)
			return nil
		})
	}

	return gr.Wait()
}

func (r *SFNActivityRunner) poll(ctx context.Context, step, arn string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := r.PollOnce(ctx, step, arn); err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.Error("activity_poll_failed", zap.String("step", step), zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(r.options.sleepTimeAfterError):
			}
		}
	}
}

// PollOnce fetches at most one task for step and runs it. It reports false when
// the long poll returned no task.
func (r *SFNActivityRunner) PollOnce(ctx context.Context, step, arn string) (bool, error) {
	out, err := r.client.GetActivityTask(ctx, &sfn.GetActivityTaskInput{
		ActivityArn: aws.String(arn),
		WorkerName:  aws.String(r.options.workerName),
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to get activity task")
	}

	token := aws.ToString(out.TaskToken)
	if token == "" {
		return false, nil
	}

	return true, r.runTask(ctx, step, token, json.RawMessage(aws.ToString(out.Input)))
}

func (r *SFNActivityRunner) runTask(ctx context.Context, step, token string, input json.RawMessage) error {
	logger := logging.WithTrace(ctx, r.logger).With(zap.String("step", step))

	output, stepErr := r.registry.Invoke(ctx, step, input)
	if stepErr != nil {
		name := saga.NameOf(stepErr)
		logger.Warn("step_failed", zap.String("error_name", name), zap.Error(stepErr))

		if err := r.resumer.ResumeFailure(ctx, token, name, stepErr.Error()); err != nil {
			return r.resumeError(logger, err)
		}
		return nil
	}

	if err := r.resumer.ResumeSuccess(ctx, token, output); err != nil {
		return r.resumeError(logger, err)
	}

	logger.Info("step_succeeded")
	return nil
}

func (r *SFNActivityRunner) resumeError(logger *zap.Logger, err error) error {
	if errors.Is(err, saga.ErrTokenConsumed) {
		logger.Warn("activity_token_consumed", zap.Error(err))
		return nil
	}
	return err
}
