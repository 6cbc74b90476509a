package magetasks

import (
	"errors"
	"os/exec"
	"strings"
)

// IsCommandNotFound reports whether err means the executable is missing.
// mage's sh package flattens exec errors into strings, so the message is
// checked as well.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}
