package config

import (
	"strconv"

	"github.com/arthur-debert/appkit/pkg/errors"
	"github.com/arthur-debert/appkit/pkg/layout"
)

// VersionKey is the document key carrying the schema version stamp.
const VersionKey = "__version__"

// Field names of the default schema.
const (
	FieldDataPath  = "data_path"
	FieldLogPath   = "log_path"
	FieldCachePath = "cache_path"
)

// Field describes one config entry: its document key and the factory
// producing its default value from the resolved user paths.
type Field struct {
	Name    string
	Default func(layout.UserPaths) string
}

// Schema is the declarative description of a config document. Adding a
// field here and bumping Version is the complete schema change: the
// serializer and the migrator both consume the descriptor.
type Schema struct {
	// Version is dotted-numeric with a single decimal point, e.g. "0.1".
	Version string
	// Fields in document order.
	Fields []Field
}

// DefaultSchema returns the schema the kit ships: version 0.1 with the
// three directory fields defaulting to the resolved user paths.
func DefaultSchema() *Schema {
	return &Schema{
		Version: "0.1",
		Fields: []Field{
			{Name: FieldDataPath, Default: func(p layout.UserPaths) string { return p.DataDir }},
			{Name: FieldLogPath, Default: func(p layout.UserPaths) string { return p.LogDir }},
			{Name: FieldCachePath, Default: func(p layout.UserPaths) string { return p.CacheDir }},
		},
	}
}

// DefaultFiles returns the files seeded into the config directory on
// first run.
func DefaultFiles() []string {
	return []string{"logging.yml", "compose.yml"}
}

// Has reports whether the schema declares a field with the given name.
func (s *Schema) Has(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// validate rejects schemas the migrator cannot handle.
func (s *Schema) validate() error {
	if _, err := strconv.ParseFloat(s.Version, 64); err != nil {
		return errors.Newf(errors.ErrInvalidInput, "schema version %q is not dotted-numeric", s.Version)
	}
	seen := make(map[string]struct{}, len(s.Fields))
	for _, f := range s.Fields {
		if f.Name == "" {
			return errors.New(errors.ErrInvalidInput, "schema field name must not be empty")
		}
		if f.Name == VersionKey {
			return errors.Newf(errors.ErrInvalidInput, "schema field name %s is reserved", VersionKey)
		}
		if _, dup := seen[f.Name]; dup {
			return errors.Newf(errors.ErrInvalidInput, "schema field %s declared twice", f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}
