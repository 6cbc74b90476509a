package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsCommandNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "exec.ErrNotFound", err: exec.ErrNotFound, want: true},
		{name: "wrapped exec.ErrNotFound", err: fmt.Errorf("run: %w", exec.ErrNotFound), want: true},
		{name: "flattened by sh", err: errors.New(`failed to run "staticcheck": exec: "staticcheck": executable file not found in $PATH`), want: true},
		{name: "missing file", err: errors.New("fork/exec ./tool: no such file or directory"), want: true},
		{name: "other error", err: errors.New("exit status 1"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCommandNotFound(tt.err))
		})
	}
}

func TestLDFlags_StampsVersionPackage(t *testing.T) {
	t.Parallel()

	built := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	flags := LDFlags("v1.2.0", "abc123", built)

	assert.Contains(t, flags, "-X 'github.com/dkoosis/windcfg/internal/version.Version=v1.2.0'")
	assert.Contains(t, flags, "-X 'github.com/dkoosis/windcfg/internal/version.CommitHash=abc123'")
	assert.Contains(t, flags, "-X 'github.com/dkoosis/windcfg/internal/version.BuildDate=2026-03-01T12:00:00Z'")
}
