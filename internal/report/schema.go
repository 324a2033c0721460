package report

import (
	"fmt"
	"os"
	"sync"

	xsdvalidate "github.com/terminalstatic/go-xsd-validate"
)

// SchemaValidator checks a serialized document against a compiled schema.
// Implementations must be safe for concurrent use after construction.
type SchemaValidator interface {
	Validate(doc []byte) error
}

var xsdInit sync.Once

// CompileSchema compiles the XSD at path into a reusable validator. The
// underlying libxml2 parser is initialized once per process and the compiled
// schema is read-only afterwards, so one validator may serve concurrent
// invocations.
func CompileSchema(path string) (SchemaValidator, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("schema resource %s: %w", path, err)
	}

	var initErr error
	xsdInit.Do(func() {
		initErr = xsdvalidate.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("init xsd parser: %w", initErr)
	}

	handler, err := xsdvalidate.NewXsdHandlerUrl(path, xsdvalidate.ParsErrDefault)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}

	return &xsdSchema{handler: handler}, nil
}

type xsdSchema struct {
	handler *xsdvalidate.XsdHandler
}

func (s *xsdSchema) Validate(doc []byte) error {
	return s.handler.ValidateMem(doc, xsdvalidate.ValidErrDefault)
}
