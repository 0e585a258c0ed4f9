// Package codec provides the load/dump pair the configuration store
// persists documents through. A document is a flat string-keyed mapping;
// the YAML and TOML backends are interchangeable.
package codec

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/appkit/pkg/errors"
	"github.com/arthur-debert/appkit/pkg/filesystem"
)

// Codec serializes config documents to and from bytes
type Codec interface {
	// Ext is the filename extension without the dot, e.g. "yml"
	Ext() string
	Marshal(doc map[string]interface{}) ([]byte, error)
	Unmarshal(data []byte, doc *map[string]interface{}) error
}

// Load reads a document from path. A missing file yields a nil document
// and no error; parse failures propagate with the file named.
func Load(fsys filesystem.FS, c Codec, path string) (map[string]interface{}, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read config file %s", path)
	}

	var doc map[string]interface{}
	if err := c.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	return doc, nil
}

// Dump serializes a document to path, creating parent directories and
// overwriting any existing file.
func Dump(fsys filesystem.FS, c Codec, path string, doc map[string]interface{}) error {
	data, err := c.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to serialize config document")
	}

	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write config file %s", path)
	}

	return nil
}
