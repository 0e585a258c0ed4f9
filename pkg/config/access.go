package config

import (
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/appkit/pkg/codec"
	"github.com/arthur-debert/appkit/pkg/errors"
	"github.com/arthur-debert/appkit/pkg/layout"
)

// ToMap returns the authoritative document: the version stamp plus
// every schema field with its current value. Save serializes exactly
// this.
func (s *Store) ToMap() map[string]string {
	out := make(map[string]string, len(s.schema.Fields)+1)
	out[VersionKey] = s.schema.Version
	for _, f := range s.schema.Fields {
		out[f.Name] = s.values[f.Name]
	}
	return out
}

// Save writes the current document to the config file, creating parent
// directories as needed. The version stamp is written as a bare number
// when that prints back to the same spelling, so a reload sees the
// version it was saved with.
func (s *Store) Save() error {
	doc := make(map[string]interface{}, len(s.schema.Fields)+1)
	for _, f := range s.schema.Fields {
		doc[f.Name] = s.values[f.Name]
	}
	version := s.schema.Version
	if v, err := strconv.ParseFloat(version, 64); err == nil &&
		strconv.FormatFloat(v, 'g', -1, 64) == version {
		doc[VersionKey] = v
	} else {
		doc[VersionKey] = version
	}
	return codec.Dump(s.fs, s.codec, s.configFile, doc)
}

// EnsureDirs creates the given directories recursively. With no
// arguments it creates the standard four: config, data, log and cache.
func (s *Store) EnsureDirs(dirs ...string) error {
	if len(dirs) == 0 {
		dirs = []string{s.paths.ConfigDir, s.paths.DataDir, s.paths.LogDir, s.paths.CacheDir}
	}
	for _, dir := range dirs {
		if dir == "" {
			return errors.New(errors.ErrInvalidInput, "directory path must not be empty")
		}
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
		}
	}
	return nil
}

// Value returns the current value of a schema field.
func (s *Store) Value(field string) (string, error) {
	if !s.schema.Has(field) {
		return "", errors.Newf(errors.ErrInvalidInput, "unknown config field %s", field)
	}
	return s.values[field], nil
}

// SetValue updates a schema field in memory. The value is normalized
// as a path. Persisting requires an explicit Save.
func (s *Store) SetValue(field, value string) error {
	if !s.schema.Has(field) {
		return errors.Newf(errors.ErrInvalidInput, "unknown config field %s", field)
	}
	s.values[field] = layout.CleanPath(value)
	return nil
}

// DataDir returns the configured data directory.
func (s *Store) DataDir() string { return s.values[FieldDataPath] }

// SetDataDir updates the data directory in memory.
func (s *Store) SetDataDir(path string) { _ = s.SetValue(FieldDataPath, path) }

// LogDir returns the configured log directory.
func (s *Store) LogDir() string { return s.values[FieldLogPath] }

// SetLogDir updates the log directory in memory.
func (s *Store) SetLogDir(path string) { _ = s.SetValue(FieldLogPath, path) }

// CacheDir returns the configured cache directory.
func (s *Store) CacheDir() string { return s.values[FieldCachePath] }

// SetCacheDir updates the cache directory in memory.
func (s *Store) SetCacheDir(path string) { _ = s.SetValue(FieldCachePath, path) }

// ProjectName returns the resolved project name.
func (s *Store) ProjectName() string { return s.layout.ProjectName }

// PackagePath returns the resolved package directory.
func (s *Store) PackagePath() string { return s.layout.PackagePath }

// ConfigDir returns the per-user config directory.
func (s *Store) ConfigDir() string { return s.paths.ConfigDir }

// ConfigFilePath returns the full path of the config file.
func (s *Store) ConfigFilePath() string { return s.configFile }

// ConfigFileName returns the bare config file name.
func (s *Store) ConfigFileName() string {
	return layout.ConfigFileNameWithExt(s.layout.ProjectName, s.codec.Ext())
}

// UserPaths returns the resolved per-user directories.
func (s *Store) UserPaths() layout.UserPaths { return s.paths }

// LoggingConfigPath returns the path of the seeded logging.yml.
func (s *Store) LoggingConfigPath() string {
	return filepath.Join(s.paths.ConfigDir, "logging.yml")
}

// ComposeFilePath returns the path of the seeded compose.yml.
func (s *Store) ComposeFilePath() string {
	return filepath.Join(s.paths.ConfigDir, "compose.yml")
}
