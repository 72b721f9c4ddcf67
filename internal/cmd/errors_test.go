package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	derrors "github.com/dashcraft/cli/internal/errors"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"config sentinel", derrors.ErrConfig, ExitConfigError},
		{"conflict sentinel", derrors.ErrConflict, ExitConflictError},
		{"filesystem sentinel", derrors.ErrFilesystem, ExitFilesystemError},
		{"unsafe purge sentinel", derrors.ErrUnsafePurge, ExitUnsafePurge},
		{"wrapped config error", fmt.Errorf("loading: %w", derrors.ErrConfig), ExitConfigError},
		{"detail error carries its cause", derrors.NewConflictError("dup", "id", ""), ExitConflictError},
		{"explicit exit error wins", NewExitError(derrors.ErrConfig, ExitGeneralError), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Config Error", ExitCodeName(ExitConfigError))
	assert.Equal(t, "Conflict Error", ExitCodeName(ExitConflictError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}

func TestExitErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := NewExitError(inner, ExitFilesystemError)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "boom", err.Error())
}
