package config

import (
	"sort"
	"strconv"

	"github.com/arthur-debert/appkit/pkg/errors"
	"github.com/arthur-debert/appkit/pkg/logging"
)

// migrate rebuilds the document at the current schema version. Values
// for surviving fields were already carried forward by populate, new
// fields hold their defaults, and obsolete keys drop out because the
// save derives from the schema. Only upgrades are allowed: a document
// version that is not strictly older than the schema version fails.
func (s *Store) migrate(docVersion string, doc map[string]interface{}) error {
	logger := logging.GetLogger("config")

	docV, docErr := strconv.ParseFloat(docVersion, 64)
	curV, curErr := strconv.ParseFloat(s.schema.Version, 64)
	if docErr != nil || curErr != nil || docV >= curV {
		return errors.Newf(errors.ErrConfigVersion,
			"cannot migrate from version %s to %s", docVersion, s.schema.Version)
	}

	s.console.Infof("Migrating config from version %s to %s", docVersion, s.schema.Version)

	expected := make(map[string]struct{}, len(s.schema.Fields)+1)
	expected[VersionKey] = struct{}{}
	for _, f := range s.schema.Fields {
		expected[f.Name] = struct{}{}
	}

	var added, removed []string
	for name := range expected {
		if _, ok := doc[name]; !ok {
			added = append(added, name)
		}
	}
	for name := range doc {
		if _, ok := expected[name]; !ok {
			removed = append(removed, name)
		}
	}
	sort.Strings(added)
	sort.Strings(removed)

	if len(added) > 0 {
		s.console.Printf("  Adding new fields: %v", added)
	}
	if len(removed) > 0 {
		s.console.Printf("  Removing obsolete fields: %v", removed)
	}

	logger.Info().
		Str("from", docVersion).
		Str("to", s.schema.Version).
		Strs("added", added).
		Strs("removed", removed).
		Msg("Migrating config schema")

	return s.Save()
}
