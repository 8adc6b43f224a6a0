package types

import "fmt"

// InvalidInputError marks note text that cannot be analyzed at all. Empty
// text is not invalid; it degrades to empty results.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// UnsupportedTemplateError marks an unknown extraction template or summary
// mode name.
type UnsupportedTemplateError struct {
	Name string
}

func (e *UnsupportedTemplateError) Error() string {
	return fmt.Sprintf("unsupported template %q", e.Name)
}

// StageFailureError wraps an unexpected failure from one pipeline stage so
// the caller can tell which stage broke.
type StageFailureError struct {
	Stage string
	Err   error
}

func (e *StageFailureError) Error() string {
	return fmt.Sprintf("stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageFailureError) Unwrap() error {
	return e.Err
}
