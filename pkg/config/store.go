package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/appkit/pkg/codec"
	"github.com/arthur-debert/appkit/pkg/filesystem"
	"github.com/arthur-debert/appkit/pkg/layout"
	"github.com/arthur-debert/appkit/pkg/logging"
	"github.com/arthur-debert/appkit/pkg/style"
)

// Options composes a store. The zero value works: every field has a
// default derived from the resolved layout.
type Options struct {
	// ProjectName overrides the name detected from the reference file.
	ProjectName string

	// Schema describes the config document. Nil means DefaultSchema().
	Schema *Schema

	// Codec serializes the document. Nil means YAML. The config file
	// extension follows the codec, so a TOML store persists
	// <project>_config.toml.
	Codec codec.Codec

	// DefaultFiles are seeded into the config directory on first run.
	// Nil means DefaultFiles(). An explicit empty slice disables
	// seeding.
	DefaultFiles []string

	// AssetSource is where default files are copied from. Nil means
	// the resolved package directory on the real filesystem.
	AssetSource fs.FS

	// FS is the target filesystem. Nil means the real OS.
	FS filesystem.FS

	// Console receives user-visible messages (resets, migrations,
	// seeded files). Nil means stderr with auto-detected format.
	Console *style.Console
}

// Store is a ready configuration store: directories exist, the config
// file is saved at the current schema version and default files are
// seeded. Mutations stay in memory until Save.
type Store struct {
	layout       layout.Layout
	paths        layout.UserPaths
	schema       *Schema
	codec        codec.Codec
	fs           filesystem.FS
	console      *style.Console
	assets       fs.FS
	defaultFiles []string
	configFile   string
	values       map[string]string
}

// Open resolves the project layout from referenceFile and constructs
// the store: load the document, reconcile its version (reset when
// unversioned, migrate when older), ensure the user directories and
// seed default files. Callers typically pass the path of their own
// invoking file.
func Open(referenceFile string, opts Options) (*Store, error) {
	logger := logging.GetLogger("config")
	defer logging.LogOperationStart(logger, "open config store")()

	var layoutOpts []layout.Option
	if opts.ProjectName != "" {
		layoutOpts = append(layoutOpts, layout.WithProjectName(opts.ProjectName))
	}
	l, err := layout.Resolve(referenceFile, layoutOpts...)
	if err != nil {
		return nil, err
	}

	s := &Store{
		layout:       l,
		paths:        l.UserPaths(),
		schema:       opts.Schema,
		codec:        opts.Codec,
		fs:           opts.FS,
		console:      opts.Console,
		assets:       opts.AssetSource,
		defaultFiles: opts.DefaultFiles,
	}
	if s.schema == nil {
		s.schema = DefaultSchema()
	}
	if err := s.schema.validate(); err != nil {
		return nil, err
	}
	if s.codec == nil {
		s.codec = codec.YAML()
	}
	if s.fs == nil {
		s.fs = filesystem.NewOS()
	}
	if s.console == nil {
		s.console = style.NewConsole(os.Stderr)
	}
	if s.defaultFiles == nil {
		s.defaultFiles = DefaultFiles()
	}
	s.configFile = filepath.Join(s.paths.ConfigDir,
		layout.ConfigFileNameWithExt(l.ProjectName, s.codec.Ext()))

	doc, err := codec.Load(s.fs, s.codec, s.configFile)
	if err != nil {
		return nil, err
	}

	s.populate(doc)

	if err := s.reconcileVersion(doc); err != nil {
		return nil, err
	}

	if err := s.EnsureDirs(); err != nil {
		return nil, err
	}

	if err := s.seedDefaultFiles(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("project", l.ProjectName).
		Str("configFile", s.configFile).
		Msg("Config store ready")

	return s, nil
}

// populate fills the in-memory values from the document where present,
// else from the schema defaults. Values are normalized as paths no
// matter how the document stored them.
func (s *Store) populate(doc map[string]interface{}) {
	s.values = make(map[string]string, len(s.schema.Fields))
	for _, f := range s.schema.Fields {
		if raw, ok := doc[f.Name]; ok {
			s.values[f.Name] = layout.CleanPath(stringValue(raw))
			continue
		}
		value := ""
		if f.Default != nil {
			value = f.Default(s.paths)
		}
		s.values[f.Name] = layout.CleanPath(value)
	}
}

// reconcileVersion applies the version state machine: no version stamp
// resets the file to the current schema, an older stamp migrates, a
// matching stamp is a no-op.
func (s *Store) reconcileVersion(doc map[string]interface{}) error {
	raw, ok := doc[VersionKey]
	if !ok {
		s.console.Warningf("Config file %s is corrupted or missing, resetting to default", s.configFile)
		return s.Save()
	}
	if docVersion := stringValue(raw); docVersion != s.schema.Version {
		return s.migrate(docVersion, doc)
	}
	return nil
}

// stringValue renders a document value as a string. Codecs hand back
// typed scalars (the version stamp is a bare float in YAML), so numbers
// format the way strconv would write them.
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return fmt.Sprint(v)
	}
}
