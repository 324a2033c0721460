package report

import (
	"fmt"

	"github.com/vikunalabs/camt-reporter/internal/camt/v02"
	"github.com/vikunalabs/camt-reporter/internal/camt/v08"
	"github.com/vikunalabs/camt-reporter/internal/domain"
	"github.com/vikunalabs/camt-reporter/internal/notification"
)

// SchemaVersion names one supported CAMT schema revision.
type SchemaVersion string

const (
	VersionV02 SchemaVersion = "camt.054.001.02"
	VersionV08 SchemaVersion = "camt.054.001.08"
)

// ParseVersion resolves a version string from configuration.
func ParseVersion(s string) (SchemaVersion, error) {
	switch SchemaVersion(s) {
	case VersionV02, VersionV08:
		return SchemaVersion(s), nil
	default:
		return "", fmt.Errorf("unsupported schema version %q", s)
	}
}

// Registry holds one ReportGenerator per supported schema version, each bound
// to its own schema path and translation function. Built once at startup and
// read-only afterwards.
type Registry struct {
	generators map[SchemaVersion]ReportGenerator
}

// NewRegistry compiles the schema of every entry in schemaPaths and registers
// the matching translator. Unknown versions in schemaPaths are rejected so a
// typo in configuration fails at startup rather than at first message.
func NewRegistry(mapper *notification.Mapper, schemaPaths map[SchemaVersion]string) (*Registry, error) {
	r := &Registry{generators: make(map[SchemaVersion]ReportGenerator)}

	for version, path := range schemaPaths {
		var (
			gen ReportGenerator
			err error
		)
		switch version {
		case VersionV02:
			gen, err = NewGenerator(path, buildV02(mapper))
		case VersionV08:
			gen, err = NewGenerator(path, buildV08(mapper))
		default:
			return nil, fmt.Errorf("unsupported schema version %q", version)
		}
		if err != nil {
			return nil, fmt.Errorf("version %s: %w", version, err)
		}
		r.generators[version] = gen
	}

	return r, nil
}

// Generator returns the generator registered for the version.
func (r *Registry) Generator(version SchemaVersion) (ReportGenerator, error) {
	gen, ok := r.generators[version]
	if !ok {
		return nil, fmt.Errorf("no generator registered for schema version %q", version)
	}
	return gen, nil
}

// Versions lists the registered schema versions.
func (r *Registry) Versions() []SchemaVersion {
	versions := make([]SchemaVersion, 0, len(r.generators))
	for v := range r.generators {
		versions = append(versions, v)
	}
	return versions
}

func buildV02(mapper *notification.Mapper) BuildFunc[v02.Document] {
	return func(rows []domain.ReportRow, ctx Context) (*v02.Document, error) {
		generic, err := mapper.BuildDocument(rows, ctx.ReportType, ctx.Seq)
		if err != nil {
			return nil, err
		}
		return v02.FromNotification(generic), nil
	}
}

func buildV08(mapper *notification.Mapper) BuildFunc[v08.Document] {
	return func(rows []domain.ReportRow, ctx Context) (*v08.Document, error) {
		generic, err := mapper.BuildDocument(rows, ctx.ReportType, ctx.Seq)
		if err != nil {
			return nil, err
		}
		return v08.FromNotification(generic), nil
	}
}
