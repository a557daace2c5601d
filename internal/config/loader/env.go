package loader

import (
	"os"
	"strconv"
	"strings"
)

// ValueKind selects how an environment variable's text is converted.
type ValueKind uint8

const (
	// KindAuto guesses bools and integers, falling back to the raw string.
	KindAuto ValueKind = iota
	// KindString keeps the raw text.
	KindString
	// KindBool accepts true/yes/on/1 and false/no/off/0. Other text is kept
	// as a string so the setting reports a type mismatch.
	KindBool
)

// EnvVar maps one environment variable onto a config path.
type EnvVar struct {
	Path string
	Kind ValueKind
}

// EnvLoader loads configuration from environment variables.
// Only mapped variables are read; unknown prefixed variables are ignored.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "HECTO_")
	mapping map[string]EnvVar // Env var -> config path
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "HECTO_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, DefaultEnvMapping(prefix))
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]EnvVar) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		lookup:  os.LookupEnv,
	}
}

// DefaultEnvMapping returns the default environment variable mappings.
func DefaultEnvMapping(prefix string) map[string]EnvVar {
	return map[string]EnvVar{
		prefix + "LOG_LEVEL":    {Path: "logging.level", Kind: KindString},
		prefix + "LOG_FILE":     {Path: "logging.file", Kind: KindString},
		prefix + "CONFIRM_QUIT": {Path: "editor.confirmQuit", Kind: KindBool},
		prefix + "WELCOME":      {Path: "ui.welcome", Kind: KindBool},
	}
}

// Prefix returns the environment variable prefix.
func (l *EnvLoader) Prefix() string {
	return l.prefix
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for env, v := range l.mapping {
		if val, ok := l.lookup(env); ok {
			SetByPath(config, v.Path, convertValue(val, v.Kind))
		}
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping whose value type is
// guessed.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.AddTypedMapping(envVar, configPath, KindAuto)
}

// AddTypedMapping adds a custom environment variable mapping of a fixed kind.
func (l *EnvLoader) AddTypedMapping(envVar, configPath string, kind ValueKind) {
	if l.mapping == nil {
		l.mapping = make(map[string]EnvVar)
	}
	l.mapping[envVar] = EnvVar{Path: configPath, Kind: kind}
}

func convertValue(s string, kind ValueKind) any {
	switch kind {
	case KindString:
		return s
	case KindBool:
		if b, ok := parseBool(s); ok {
			return b
		}
		return s
	default:
		return parseValue(s)
	}
}

func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	if b, ok := parseBool(s); ok {
		return b
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	return s
}

// SetByPath sets a value in a nested map using a dot-separated path.
func SetByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// GetByPath returns the value at a dot-separated path.
func GetByPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	val, ok := current[parts[len(parts)-1]]
	return val, ok
}
