// Package config implements the versioned configuration store.
// It resolves a project's layout from a reference file, loads the
// per-user config document, reconciles its schema version (resetting
// or migrating as needed), ensures the user directories exist and
// seeds default files on first run.
package config
