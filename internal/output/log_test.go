package output

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestLogOptions(t *testing.T) {
	tests := []struct {
		name           string
		verbose        bool
		timestamps     bool
		wantLevel      log.Level
		wantTimestamps bool
	}{
		{"quiet", false, true, log.InfoLevel, false},
		{"verbose with timestamps", true, true, log.DebugLevel, true},
		{"verbose without timestamps", true, false, log.DebugLevel, false},
		{"quiet without timestamps", false, false, log.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := logOptions(tt.verbose, tt.timestamps)
			assert.Equal(t, tt.wantLevel, opts.Level)
			assert.Equal(t, tt.wantTimestamps, opts.ReportTimestamp)
			assert.Equal(t, tt.verbose, opts.ReportCaller)
		})
	}
}

func TestSetupLoggingReplacesGlobalLogger(t *testing.T) {
	before := Logger
	t.Cleanup(func() { Logger = before })

	SetupLogging(true, false)
	assert.NotSame(t, before, Logger)
	assert.Equal(t, log.DebugLevel, Logger.GetLevel())
}
