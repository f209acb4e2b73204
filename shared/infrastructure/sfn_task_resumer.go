package infrastructure

import (
	"context"
	"encoding/json"
	"unicode/utf8"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sfn/types"
	"github.com/bookstore/fulfillment-saga/shared/saga"
	"github.com/pkg/errors"
)

// Step Functions limits on SendTaskFailure fields
const (
	maxErrorNameLength = 256
	maxCauseLength     = 32768
)

// SFNAPI is the subset of the Step Functions client used for task tokens and activities
type SFNAPI interface {
	SendTaskSuccess(ctx context.Context, params *sfn.SendTaskSuccessInput, optFns ...func(*sfn.Options)) (*sfn.SendTaskSuccessOutput, error)
	SendTaskFailure(ctx context.Context, params *sfn.SendTaskFailureInput, optFns ...func(*sfn.Options)) (*sfn.SendTaskFailureOutput, error)
	GetActivityTask(ctx context.Context, params *sfn.GetActivityTaskInput, optFns ...func(*sfn.Options)) (*sfn.GetActivityTaskOutput, error)
}

var _ SFNAPI = (*sfn.Client)(nil)

var _ saga.Resumer = (*SFNTaskResumer)(nil)

// SFNTaskResumer resumes Step Functions executions waiting on a task token
type SFNTaskResumer struct {
	client SFNAPI
}

// NewSFNTaskResumer creates a new SFNTaskResumer
func NewSFNTaskResumer(client SFNAPI) *SFNTaskResumer {
	return &SFNTaskResumer{client: client}
}

// ResumeSuccess completes the task with output encoded as JSON
func (r *SFNTaskResumer) ResumeSuccess(ctx context.Context, token string, output interface{}) error {
	payload, err := json.Marshal(output)
	if err != nil {
		return errors.Wrap(err, "failed to marshal task output")
	}

	_, err = r.client.SendTaskSuccess(ctx, &sfn.SendTaskSuccessInput{
		TaskToken: aws.String(token),
		Output:    aws.String(string(payload)),
	})
	if err != nil {
		return translateTaskError(err, "failed to send task success")
	}

	return nil
}

// ResumeFailure fails the task with the given error name and cause
func (r *SFNTaskResumer) ResumeFailure(ctx context.Context, token string, errorName, cause string) error {
	_, err := r.client.SendTaskFailure(ctx, &sfn.SendTaskFailureInput{
		TaskToken: aws.String(token),
		Error:     aws.String(truncate(errorName, maxErrorNameLength)),
		Cause:     aws.String(truncate(cause, maxCauseLength)),
	})
	if err != nil {
		return translateTaskError(err, "failed to send task failure")
	}

	return nil
}

func translateTaskError(err error, message string) error {
	var (
		timedOut     *types.TaskTimedOut
		doesNotExist *types.TaskDoesNotExist
		invalidToken *types.InvalidToken
	)
	if errors.As(err, &timedOut) || errors.As(err, &doesNotExist) || errors.As(err, &invalidToken) {
		return errors.Wrap(saga.ErrTokenConsumed, err.Error())
	}
	return errors.Wrap(err, message)
}

// truncate caps s at max bytes without splitting a multi-byte rune
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
