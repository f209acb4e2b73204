package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAssignmentRequest(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expected        AssignmentInput
		expectedVersion string
		expectedErr     error
	}{
		{
			name:            "current body",
			body:            `{"version":"1","input":{"bookId":"B1","quantity":3},"token":"tok-1"}`,
			expected:        AssignmentInput{BookID: "B1", Quantity: 3},
			expectedVersion: "1",
		},
		{
			name:            "legacy body without version",
			body:            `{"Input":{"bookId":"B1","quantity":2},"Token":"tok-1"}`,
			expected:        AssignmentInput{BookID: "B1", Quantity: 2},
			expectedVersion: "1",
		},
		{
			name:            "quantity as string keeps the token",
			body:            `{"input":{"bookId":"B1","quantity":"3"},"token":"tok-1"}`,
			expected:        AssignmentInput{BookID: "B1"},
			expectedVersion: "1",
			expectedErr:     ErrInvalidAssignment,
		},
		{
			name:            "input as string keeps the token",
			body:            `{"input":"oops","token":"tok-1"}`,
			expectedVersion: "1",
			expectedErr:     ErrInvalidAssignment,
		},
		{
			name:            "unknown version",
			body:            `{"version":"2","input":{"bookId":"B1","quantity":1},"token":"tok-1"}`,
			expected:        AssignmentInput{BookID: "B1", Quantity: 1},
			expectedVersion: "2",
			expectedErr:     ErrUnsupportedVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := DecodeAssignmentRequest([]byte(tt.body))

			require.NoError(t, err)
			assert.Equal(t, "tok-1", req.Token)
			assert.Equal(t, tt.expectedVersion, req.Version)
			assert.Equal(t, tt.expected, req.Input)

			err = req.Validate()
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeAssignmentRequest_WithoutToken(t *testing.T) {
	bodies := []string{
		`not json`,
		`null`,
		`["tok-1"]`,
		`{"input":{"bookId":"B1","quantity":1}}`,
		`{"input":{"bookId":"B1","quantity":1},"token":"  "}`,
		`{"input":{"bookId":"B1"},"token":42}`,
	}

	for _, body := range bodies {
		_, err := DecodeAssignmentRequest([]byte(body))

		assert.True(t, errors.Is(err, ErrUndecodableRequest), "body %s: got %v", body, err)
	}
}
