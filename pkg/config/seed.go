package config

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/appkit/pkg/errors"
	"github.com/arthur-debert/appkit/pkg/logging"
)

// seedDefaultFiles copies each configured default file into the config
// directory unless it already exists there. Existing files are never
// touched, so user edits survive every startup.
func (s *Store) seedDefaultFiles() error {
	logger := logging.GetLogger("config")

	for _, filename := range s.defaultFiles {
		dest := filepath.Join(s.paths.ConfigDir, filename)
		if _, err := s.fs.Stat(dest); err == nil {
			logger.Debug().Str("file", dest).Msg("Default file already present")
			continue
		}

		data, err := s.readAsset(filename)
		if err != nil {
			return err
		}

		if err := s.fs.WriteFile(dest, data, 0644); err != nil {
			return errors.Wrapf(err, errors.ErrAssetCopy, "failed to copy %s to %s", filename, dest)
		}

		s.console.Successf("Copied %s to %s", filename, s.paths.ConfigDir)
		logger.Debug().Str("file", dest).Msg("Seeded default file")
	}

	return nil
}

// readAsset fetches a default file from the configured asset source,
// or from the resolved package directory when none was given.
func (s *Store) readAsset(filename string) ([]byte, error) {
	if s.assets != nil {
		data, err := fs.ReadFile(s.assets, filename)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrAssetMissing,
				"%s not found in asset source", filename)
		}
		return data, nil
	}

	src := filepath.Join(s.layout.PackagePath, filename)
	if _, err := s.fs.Stat(src); err != nil {
		return nil, errors.Newf(errors.ErrAssetMissing,
			"%s not found in package directory %s", filename, s.layout.PackagePath)
	}

	data, err := s.fs.ReadFile(src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", src)
	}
	return data, nil
}
