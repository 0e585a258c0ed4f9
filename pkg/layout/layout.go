// Package layout resolves a project's on-disk layout and per-user
// directories. Given a reference source file it determines the package
// directory and project name; given a project name it derives the four
// user-scoped directories (data, log, cache, config) following the XDG
// Base Directory convention, with per-project environment overrides.
package layout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/appkit/pkg/errors"
)

// Environment variable suffixes for per-project directory overrides.
// The full variable name is the project name uppercased (non-alphanumerics
// mapped to underscores) plus the suffix, e.g. MYAPP_DATA_DIR.
const (
	EnvSuffixDataDir   = "_DATA_DIR"
	EnvSuffixLogDir    = "_LOG_DIR"
	EnvSuffixCacheDir  = "_CACHE_DIR"
	EnvSuffixConfigDir = "_CONFIG_DIR"
)

// Fixed path segments
const (
	// ConfigSubdir is the subdirectory under the config base that holds
	// the config document and seeded default files
	ConfigSubdir = "config"

	// LogSubdir is the subdirectory under the project state directory
	// that holds log files
	LogSubdir = "log"
)

// Layout identifies a project from a reference source file.
// It is derived once and not modified afterwards.
type Layout struct {
	// ProjectName is the logical project name, defaulting to the base
	// name of the package directory
	ProjectName string

	// PackagePath is the directory containing the reference file
	PackagePath string
}

// UserPaths holds the per-user directories derived for a project name.
type UserPaths struct {
	DataDir   string
	LogDir    string
	CacheDir  string
	ConfigDir string

	// ConfigFile is the config document path inside ConfigDir
	ConfigFile string
}

// Option adjusts layout resolution
type Option func(*options)

type options struct {
	projectName string
}

// WithProjectName overrides the detected project name. The package path
// is unaffected.
func WithProjectName(name string) Option {
	return func(o *options) {
		o.projectName = name
	}
}

// Resolve determines the project layout from a reference file path.
// The path is made absolute and symlinks are resolved when they exist;
// the file itself does not need to exist. The parent directory of the
// reference file is the package path, and its base name is the project
// name unless overridden.
//
// The same rule covers the three deployment shapes: a package under a
// src/ directory, a package directly under the project root, and a
// package installed into a shared library directory.
func Resolve(referenceFile string, opts ...Option) (Layout, error) {
	if referenceFile == "" {
		return Layout{}, errors.New(errors.ErrInvalidInput, "reference file path is empty")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	abs, err := filepath.Abs(expandHome(referenceFile))
	if err != nil {
		return Layout{}, errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve reference file %s", referenceFile)
	}

	// Resolve symlinks as far as the filesystem allows. A reference file
	// that does not exist yet still resolves through its directory.
	if resolved, rerr := filepath.EvalSymlinks(abs); rerr == nil {
		abs = resolved
	} else if dir, derr := filepath.EvalSymlinks(filepath.Dir(abs)); derr == nil {
		abs = filepath.Join(dir, filepath.Base(abs))
	}

	packagePath := filepath.Dir(abs)

	name := o.projectName
	if name == "" {
		name = filepath.Base(packagePath)
	}

	return Layout{
		ProjectName: name,
		PackagePath: packagePath,
	}, nil
}

// UserPaths derives the per-user directories for the layout's project name.
func (l Layout) UserPaths() UserPaths {
	return UserPathsFor(l.ProjectName)
}

// UserPathsFor computes the four user directories for a project name.
// Each directory can be overridden wholesale through its environment
// variable; otherwise it is the XDG base directory joined with the
// project name. Log files live under the XDG state home, the config
// directory gets a fixed "config" subdirectory, and the config file is
// named after the lowercased project name.
//
// The result is deterministic for a given project name and environment.
// No directories are created or checked here.
func UserPathsFor(projectName string) UserPaths {
	prefix := EnvPrefix(projectName)

	p := UserPaths{}

	if dir := os.Getenv(prefix + EnvSuffixDataDir); dir != "" {
		p.DataDir = expandHome(dir)
	} else {
		p.DataDir = filepath.Join(xdg.DataHome, projectName)
	}

	if dir := os.Getenv(prefix + EnvSuffixCacheDir); dir != "" {
		p.CacheDir = expandHome(dir)
	} else {
		p.CacheDir = filepath.Join(xdg.CacheHome, projectName)
	}

	if dir := os.Getenv(prefix + EnvSuffixLogDir); dir != "" {
		p.LogDir = expandHome(dir)
	} else {
		p.LogDir = filepath.Join(xdg.StateHome, projectName, LogSubdir)
	}

	if dir := os.Getenv(prefix + EnvSuffixConfigDir); dir != "" {
		p.ConfigDir = expandHome(dir)
	} else {
		p.ConfigDir = filepath.Join(xdg.ConfigHome, projectName, ConfigSubdir)
	}

	p.ConfigFile = filepath.Join(p.ConfigDir, ConfigFileName(projectName))

	return p
}

// ConfigFileName returns the config document filename for a project,
// e.g. "myapp_config.yml".
func ConfigFileName(projectName string) string {
	return ConfigFileNameWithExt(projectName, "yml")
}

// ConfigFileNameWithExt returns the config document filename for a
// project using the given extension, e.g. "myapp_config.toml".
func ConfigFileNameWithExt(projectName, ext string) string {
	return strings.ToLower(projectName) + "_config." + ext
}

// EnvPrefix returns the environment variable prefix for a project name:
// uppercased with every non-alphanumeric rune mapped to an underscore.
func EnvPrefix(projectName string) string {
	upper := strings.ToUpper(projectName)
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, upper)
}

// CleanPath normalizes a path value from a config document: expands a
// leading ~ and cleans redundant separators. Relative paths stay
// relative.
func CleanPath(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(expandHome(path))
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv("HOME")
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the current user's home)
		return path
	}

	return path
}
