package domain

import (
	"errors"
	"fmt"
)

// ErrNoData marks the business-expected absence of reportable data. It is not
// a defect: the orchestrator routes it to the cancellation path.
var ErrNoData = errors.New("no data to report")

// InvalidDataError signals that the inbound rows violate a precondition of
// report generation. Never retried by the pipeline.
type InvalidDataError struct {
	Reason string
}

func (e *InvalidDataError) Error() string {
	return "invalid report data: " + e.Reason
}

// MappingError names a mandatory field the mapper could not populate, together
// with the entity owning it.
type MappingError struct {
	Entity string
	Field  string
	Cause  error
}

func (e *MappingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mapping %s: field %s: %v", e.Entity, e.Field, e.Cause)
	}
	return fmt.Sprintf("mapping %s: missing mandatory field %s", e.Entity, e.Field)
}

func (e *MappingError) Unwrap() error { return e.Cause }

// InitializationError is raised when a report generator cannot compile its
// schema or build its serialization context. Fatal for the affected instance.
type InitializationError struct {
	Stage string
	Cause error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("failed to initialize %s: %v", e.Stage, e.Cause)
}

func (e *InitializationError) Unwrap() error { return e.Cause }

// GenerationError wraps a serialization or schema-validation failure for one
// document. Subsequent invocations of the same generator are unaffected.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate CAMT XML report: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }
