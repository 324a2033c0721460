// Package report provides the schema-validating report generation engine and
// the registry of supported CAMT schema versions.
//
// The engine is split in two: a version-specific build step producing an
// external document model, and a generic serialize-and-validate step. Adding a
// schema revision means registering a new build function and schema path; the
// engine itself never changes.
package report

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/vikunalabs/camt-reporter/internal/domain"
	"github.com/vikunalabs/camt-reporter/internal/notification"
)

// Context carries the per-invocation values the build step needs.
type Context struct {
	ReportType domain.ReportType
	ReportID   string
	Seq        *notification.Sequence
}

// BuildFunc produces the version-specific external document from validated
// rows.
type BuildFunc[T any] func(rows []domain.ReportRow, ctx Context) (*T, error)

// ReportGenerator is the version-erased generation capability held by the
// registry.
type ReportGenerator interface {
	GenerateReport(rows []domain.ReportRow, ctx Context) ([]byte, error)
}

// Generator serializes documents of one external model type against one
// compiled schema. Instances are immutable after construction and safe to
// share across concurrent invocations.
type Generator[T any] struct {
	schema SchemaValidator
	build  BuildFunc[T]
}

// NewGenerator compiles the schema at schemaPath and wires the build step.
// A compile failure is fatal for the instance: the returned
// domain.InitializationError means no Generator exists.
func NewGenerator[T any](schemaPath string, build BuildFunc[T]) (*Generator[T], error) {
	schema, err := CompileSchema(schemaPath)
	if err != nil {
		return nil, &domain.InitializationError{Stage: "schema validator", Cause: err}
	}
	return &Generator[T]{schema: schema, build: build}, nil
}

// NewGeneratorWithValidator wires a pre-built validator instead of compiling a
// schema path. Used by tests and by callers that manage schema lifecycle
// themselves.
func NewGeneratorWithValidator[T any](schema SchemaValidator, build BuildFunc[T]) *Generator[T] {
	return &Generator[T]{schema: schema, build: build}
}

// GenerateReport builds the external document, serializes it with indentation
// and validates the result against the compiled schema. Any failure past the
// build step is wrapped in a domain.GenerationError; build errors propagate
// unwrapped so the orchestrator can classify them.
func (g *Generator[T]) GenerateReport(rows []domain.ReportRow, ctx Context) ([]byte, error) {
	doc, err := g.build(rows, ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, &domain.GenerationError{Cause: fmt.Errorf("marshal document: %w", err)}
	}
	if err := enc.Close(); err != nil {
		return nil, &domain.GenerationError{Cause: fmt.Errorf("marshal document: %w", err)}
	}
	buf.WriteByte('\n')

	out := buf.Bytes()
	if err := g.schema.Validate(out); err != nil {
		return nil, &domain.GenerationError{Cause: fmt.Errorf("schema validation: %w", err)}
	}

	return out, nil
}
