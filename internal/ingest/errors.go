package ingest

import "fmt"

// RequiredFieldError reports a required json rule whose path resolved
// to nothing.
type RequiredFieldError struct {
	Path string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Path)
}

// ValidationError reports a resolved value that broke one of its
// validation rules. Field is filled in by the caller that knows the
// output field name.
type ValidationError struct {
	Field  string
	Reason string
	Value  interface{}
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %s: %s: %v", e.Field, e.Reason, e.Value)
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Value)
}

// UnknownSourceError reports a rule with an unrecognized source tag.
// This is a configuration mistake and is never silently skipped.
type UnknownSourceError struct {
	Source string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown mapping source: %q", e.Source)
}

// PersistenceError wraps a storage failure. The in-flight transaction
// is rolled back before this is returned.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
