// Package logging configures zerolog for applications built on appkit.
//
// Setup wires a console writer and a per-project log file into the
// global logger, honoring the project's logging.yml when one exists.
// Components obtain named loggers through GetLogger, and uncaught
// panics are routed through the Registry returned by Setup.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arthur-debert/appkit/pkg/layout"
)

// Options controls logger construction. The zero value is usable:
// everything derives from the project name.
type Options struct {
	// ProjectName scopes the log file location, the logging config
	// file, and the environment prefix. Empty defaults to "appkit".
	ProjectName string

	// Verbosity raises the log level: 0 uses the configured level
	// (warn by default), 1 info, 2 debug, 3 and above trace. Caller
	// information is attached at 2 and above.
	Verbosity int

	// ConfigFile points at the logging config. Empty resolves to
	// logging.yml inside the project's user config directory.
	ConfigFile string

	// LogDir overrides the log file directory. Empty resolves to the
	// project's user log directory.
	LogDir string

	// ConsoleOut overrides the console writer. Defaults to os.Stderr.
	ConsoleOut io.Writer
}

// Setup configures the global logger for the project at the given
// verbosity and returns the panic registry wired to it.
func Setup(projectName string, verbosity int) *Registry {
	return SetupWithOptions(Options{ProjectName: projectName, Verbosity: verbosity})
}

// SetupWithOptions configures the global logger. It sets up dual output
// to both console and a per-project log file, applies the logging
// config when present, and returns the panic registry wired to the
// resulting logger.
func SetupWithOptions(opts Options) *Registry {
	if opts.ProjectName == "" {
		opts.ProjectName = "appkit"
	}
	if opts.ConsoleOut == nil {
		opts.ConsoleOut = os.Stderr
	}

	paths := layout.UserPathsFor(opts.ProjectName)
	if opts.ConfigFile == "" {
		opts.ConfigFile = filepath.Join(paths.ConfigDir, "logging.yml")
	}
	if opts.LogDir == "" {
		opts.LogDir = paths.LogDir
	}

	cfg, cfgErr := LoadConfig(opts.ConfigFile, layout.EnvPrefix(opts.ProjectName))
	if cfgErr != nil {
		cfg = DefaultConfig()
	}

	zerolog.SetGlobalLevel(effectiveLevel(cfg.Level, opts.Verbosity))
	setComponentLevels(cfg.Levels)

	var writers []io.Writer
	if cfg.Console.Enabled {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.ConsoleOut,
			TimeFormat: time.Kitchen,
			NoColor:    noColor(cfg.Console.Color),
		})
	}

	var logFile string
	var fileErr error
	if cfg.File.Enabled {
		name := cfg.File.Name
		if name == "" {
			name = opts.ProjectName + ".log"
		}
		logFile = filepath.Join(opts.LogDir, name)
		handle, err := setupLogFile(logFile)
		if err != nil {
			fileErr = err
		} else {
			writers = append(writers, handle)
		}
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	// Create multi-writer
	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		zerolog.CallerMarshalFunc = marshalCaller
		log.Logger = log.Logger.With().Caller().Logger()
	}

	// Report setup problems now that the new logger is in place
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Str("path", opts.ConfigFile).Msg("Failed to load logging config, using defaults")
	}
	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}

	log.Debug().
		Int("verbosity", opts.Verbosity).
		Str("project", opts.ProjectName).
		Str("logFile", logFile).
		Msg("Logger initialized")

	return NewRegistry(log.Logger)
}

// effectiveLevel maps verbosity to a zerolog level, deferring to the
// configured level when verbosity is zero.
func effectiveLevel(configured string, verbosity int) zerolog.Level {
	switch {
	case verbosity >= 3:
		return zerolog.TraceLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	}
	if configured != "" {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(configured)); err == nil {
			return lvl
		}
	}
	return zerolog.WarnLevel
}

func noColor(color string) bool {
	switch color {
	case "never":
		return true
	case "always":
		return false
	default:
		return os.Getenv("NO_COLOR") != ""
	}
}

// GetLogger returns a contextualized logger with the given name.
// Component level overrides from the logging config apply here, so a
// noisy component can be silenced without lowering the global level.
func GetLogger(name string) zerolog.Logger {
	logger := log.With().Str("component", name).Logger()
	if lvl, ok := componentLevel(name); ok {
		logger = logger.Level(lvl)
	}
	return logger
}

// WithFields returns a logger with additional fields
func WithFields(fields map[string]interface{}) zerolog.Logger {
	logger := log.Logger
	for k, v := range fields {
		logger = logger.With().Interface(k, v).Logger()
	}
	return logger
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	return os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}

// Must logs a fatal error and exits if err is not nil
func Must(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
