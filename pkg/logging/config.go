package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/appkit/pkg/errors"
)

// Config controls logger destinations and levels. It is loaded from
// logging.yml in the project's config directory, the same file the
// config store seeds on first run.
type Config struct {
	// Level is the base log level used when verbosity is zero.
	Level   string        `koanf:"level"`
	Console ConsoleConfig `koanf:"console"`
	File    FileConfig    `koanf:"file"`
	// Levels overrides the level per component name, e.g. config: debug.
	Levels map[string]string `koanf:"levels"`
}

// ConsoleConfig controls the stderr console writer.
type ConsoleConfig struct {
	Enabled bool `koanf:"enabled"`
	// Color is auto, always or never.
	Color string `koanf:"color"`
}

// FileConfig controls the log file sink.
type FileConfig struct {
	Enabled bool `koanf:"enabled"`
	// Name overrides the log file name. Empty means <project>.log.
	Name string `koanf:"name"`
}

// DefaultConfig returns the configuration used when no logging.yml
// exists yet.
func DefaultConfig() *Config {
	return &Config{
		Level:   "warn",
		Console: ConsoleConfig{Enabled: true, Color: "auto"},
		File:    FileConfig{Enabled: true},
	}
}

func defaultsMap() map[string]interface{} {
	return map[string]interface{}{
		"level":           "warn",
		"console.enabled": true,
		"console.color":   "auto",
		"file.enabled":    true,
		"file.name":       "",
	}
}

// LoadConfig reads the logging configuration from path. A missing file
// is not an error: defaults apply. Environment variables prefixed with
// <envPrefix>_LOG_ override file values, so MYAPP_LOG_LEVEL=debug or
// MYAPP_LOG_FILE_ENABLED=false work without touching the file.
func LoadConfig(path, envPrefix string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load logging defaults")
	}

	// 2. Load the logging config file if it exists
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse logging config %s", path)
			}
		}
	}

	// 3. Load env overrides
	prefix := envPrefix + "_LOG_"
	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load logging env overrides")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal logging config %s", path)
	}

	return &cfg, nil
}

var (
	componentMu     sync.RWMutex
	componentLevels map[string]zerolog.Level
)

func setComponentLevels(levels map[string]string) {
	parsed := make(map[string]zerolog.Level, len(levels))
	for name, level := range levels {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			continue
		}
		parsed[name] = lvl
	}

	componentMu.Lock()
	componentLevels = parsed
	componentMu.Unlock()
}

func componentLevel(name string) (zerolog.Level, bool) {
	componentMu.RLock()
	defer componentMu.RUnlock()
	lvl, ok := componentLevels[name]
	return lvl, ok
}
