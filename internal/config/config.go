// Package config reads the library's environment configuration.
//
// The shared library has no other way to receive settings: it is loaded by
// an arbitrary C program that knows nothing about Go.
//
//	GOEGL_LOG_LEVEL       debug|info|warn|error|off (default off)
//	GOEGL_LOG_FORMAT      console|json (default console)
//	GOEGL_DEBUG_MESSAGES  comma separated kinds enabled at startup, or "none"
//	                      (default critical,error,warning)
//	GOEGL_LIB_DIR         directory searched first for libgoegl
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/obinnaokechukwu/egl/internal/khrdebug"
)

// Environment variable names.
const (
	EnvLogLevel      = "GOEGL_LOG_LEVEL"
	EnvLogFormat     = "GOEGL_LOG_FORMAT"
	EnvDebugMessages = "GOEGL_DEBUG_MESSAGES"
	EnvLibDir        = "GOEGL_LIB_DIR"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the parsed environment configuration.
type Config struct {
	LogEnabled bool
	LogLevel   zapcore.Level
	LogFormat  string

	// DebugMessages lists the message kinds enabled at startup.
	// Nil keeps the router defaults.
	DebugMessages []khrdebug.Kind

	LibDir string
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, which has the
// signature of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		LogLevel:  zapcore.InfoLevel,
		LogFormat: FormatConsole,
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" && !strings.EqualFold(v, "off") {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogEnabled = true
		cfg.LogLevel = level
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		switch strings.ToLower(v) {
		case FormatConsole, FormatJSON:
			cfg.LogFormat = strings.ToLower(v)
		default:
			return cfg, fmt.Errorf("%s: unknown format %q", EnvLogFormat, v)
		}
	}

	if v, ok := lookup(EnvDebugMessages); ok && v != "" {
		kinds, err := parseKinds(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDebugMessages, err)
		}
		cfg.DebugMessages = kinds
	}

	if v, ok := lookup(EnvLibDir); ok {
		cfg.LibDir = v
	}

	return cfg, nil
}

func parseKinds(s string) ([]khrdebug.Kind, error) {
	kinds := []khrdebug.Kind{}
	if strings.EqualFold(strings.TrimSpace(s), "none") {
		return kinds, nil
	}
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := khrdebug.ParseKind(part)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// DebugMessageEnabled reports whether kind k should be enabled at startup,
// and whether the configuration says anything about it at all.
func (c Config) DebugMessageEnabled(k khrdebug.Kind) (on, set bool) {
	if c.DebugMessages == nil {
		return false, false
	}
	for _, want := range c.DebugMessages {
		if want == k {
			return true, true
		}
	}
	return false, true
}

// Logger builds the logger described by the configuration, writing to
// stderr. A disabled configuration yields a no-op logger.
func (c Config) Logger() (*zap.Logger, error) {
	if !c.LogEnabled {
		return zap.NewNop(), nil
	}

	var zc zap.Config
	if c.LogFormat == FormatJSON {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build(zap.Fields(zap.String("lib", "goegl")))
}
