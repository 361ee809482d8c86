package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty input", NewEmptyInputError(), "EMPTY_INPUT"},
		{"io", NewIOError("write", errors.New("x")), "IO_ERROR"},
		{"index", NewIndexError(-4), "INDEX_OUT_OF_BOUNDS"},
		{"nesting", NewNestingError(8), "NESTING_TOO_DEEP"},
		{"wrapped", fmt.Errorf("backend: %w", NewEmptyInputError()), "EMPTY_INPUT"},
		{"steps", &StepsExceededError{Steps: 2, Limit: 1}, KindStepsExceeded},
		{"other", errors.New("boom"), KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestExecutionError_Messages(t *testing.T) {
	assert.Equal(t, "EMPTY_INPUT: read with input exhausted", NewEmptyInputError().Error())
	assert.Equal(t, "INDEX_OUT_OF_BOUNDS: index 30000 outside tape", NewIndexError(30000).Error())
	assert.Equal(t, "IO_ERROR: write failed: closed", NewIOError("write", errors.New("closed")).Error())
}

func TestStepsExceededError_Error(t *testing.T) {
	err := &StepsExceededError{Steps: 1001, Limit: 1000}
	assert.Equal(t, "exceeded max steps quota: 1001 steps > 1000 limit", err.Error())
}
