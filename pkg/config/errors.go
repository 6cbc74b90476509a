package config

import (
	"errors"
	"fmt"
	"strings"
)

// Problem classes. Use errors.Is on a Load error to test for them.
var (
	ErrUnknownKey       = errors.New("unknown key")
	ErrInvalidGlob      = errors.New("invalid glob")
	ErrUnresolvedPlugin = errors.New("unresolved plugin")
	ErrEmptyContentSet  = errors.New("empty content set")
	ErrSchemaMismatch   = errors.New("schema mismatch")
)

var codes = map[error]string{
	ErrUnknownKey:       "UnknownKey",
	ErrInvalidGlob:      "InvalidGlob",
	ErrUnresolvedPlugin: "UnresolvedPlugin",
	ErrEmptyContentSet:  "EmptyContentSet",
	ErrSchemaMismatch:   "SchemaMismatch",
}

// FieldError is a single problem found at a key path such as
// "theme.extend.colors" or "plugins[2]".
type FieldError struct {
	Path    string
	Kind    error
	Message string
}

func (e *FieldError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Path, e.Kind, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Code returns the problem class name, e.g. "UnknownKey".
func (e *FieldError) Code() string {
	if c, ok := codes[e.Kind]; ok {
		return c
	}
	return "Error"
}

// ValidationError bundles every problem found in one Load pass.
type ValidationError struct {
	problems []*FieldError
}

// Problems returns the individual problems in discovery order.
func (e *ValidationError) Problems() []*FieldError {
	out := make([]*FieldError, len(e.problems))
	copy(out, e.problems)
	return out
}

func (e *ValidationError) Error() string {
	switch len(e.problems) {
	case 0:
		return "invalid configuration"
	case 1:
		return "invalid configuration: " + e.problems[0].Error()
	}
	msgs := make([]string, len(e.problems))
	for i, p := range e.problems {
		msgs[i] = p.Error()
	}
	return fmt.Sprintf("invalid configuration (%d problems): %s", len(e.problems), strings.Join(msgs, "; "))
}

// Unwrap exposes every problem to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	out := make([]error, len(e.problems))
	for i, p := range e.problems {
		out[i] = p
	}
	return out
}

// Problems extracts the field problems from an error returned by Load. It
// returns nil for errors of any other kind.
func Problems(err error) []*FieldError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Problems()
	}
	return nil
}

// validator accumulates problems during a Load pass.
type validator struct {
	problems []*FieldError
}

func (v *validator) add(path string, kind error, format string, args ...any) {
	v.problems = append(v.problems, &FieldError{
		Path:    path,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) unknown(path string) {
	v.problems = append(v.problems, &FieldError{Path: path, Kind: ErrUnknownKey})
}

func (v *validator) mismatch(path, want string, got any) {
	v.add(path, ErrSchemaMismatch, "expected %s, got %s", want, describe(got))
}

func (v *validator) count() int {
	return len(v.problems)
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{problems: v.problems}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "list"
	case map[string]any:
		return "mapping"
	case int, int64, uint64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
