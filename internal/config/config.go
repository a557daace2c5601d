package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/xolve/hecto/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "HECTO_"

// Config is the resolved editor configuration.
type Config struct {
	Logging LoggingConfig
	Editor  EditorConfig
	UI      UIConfig

	// Source is the configuration file that was read, or "" if none.
	Source string
}

// Option configures Load.
type Option func(*options)

type options struct {
	path          string
	userConfigDir string
	fs            loader.FileSystem
	env           loader.Loader
	overrides     map[string]any
}

// WithPath reads the configuration file at path instead of searching the
// user config directory. The file must exist.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithUserConfigDir sets the user configuration directory.
func WithUserConfigDir(dir string) Option {
	return func(o *options) {
		o.userConfigDir = dir
	}
}

// WithFS sets the file system configuration files are read from.
func WithFS(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnv replaces the environment layer.
func WithEnv(env loader.Loader) Option {
	return func(o *options) {
		o.env = env
	}
}

// WithOverrides adds a top layer, typically built from command line flags,
// keyed by dot-separated setting paths such as "logging.level".
func WithOverrides(overrides map[string]any) Option {
	return func(o *options) {
		o.overrides = overrides
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			File:  defaultLogFile(),
		},
		Editor: EditorConfig{ConfirmQuit: true},
		UI:     UIConfig{Welcome: true},
	}
}

// Load resolves the configuration from, lowest to highest precedence, the
// built-in defaults, the configuration file, the environment and the
// overrides.
func Load(opts ...Option) (*Config, error) {
	o := options{
		userConfigDir: defaultUserConfigDir(),
		fs:            loader.DefaultFS(),
		env:           loader.NewEnvLoader(EnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Default()

	path, err := o.findFile()
	if err != nil {
		return nil, err
	}

	merged := make(map[string]any)
	if path != "" {
		data, err := loader.ForPath(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
		cfg.Source = path
	}

	env, err := o.env.Load()
	if err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	merged = loader.DeepMerge(merged, env)

	overrides := make(map[string]any)
	for p, v := range o.overrides {
		loader.SetByPath(overrides, p, v)
	}
	merged = loader.DeepMerge(merged, overrides)

	if err := cfg.apply(merged); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findFile returns the configuration file to read, or "" if there is none.
func (o *options) findFile() (string, error) {
	if o.path != "" {
		if _, err := o.fs.Stat(o.path); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrFileNotFound, o.path)
			}
			return "", fmt.Errorf("checking config file %s: %w", o.path, err)
		}
		return o.path, nil
	}

	if o.userConfigDir == "" {
		return "", nil
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		candidate := filepath.Join(o.userConfigDir, name)
		if _, err := o.fs.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// apply copies recognized settings from data onto c. Unknown keys are ignored.
func (c *Config) apply(data map[string]any) error {
	if err := setString(data, "logging.level", &c.Logging.Level); err != nil {
		return err
	}
	if err := setString(data, "logging.file", &c.Logging.File); err != nil {
		return err
	}
	if err := setBool(data, "editor.confirmQuit", &c.Editor.ConfirmQuit); err != nil {
		return err
	}
	return setBool(data, "ui.welcome", &c.UI.Welcome)
}

// Validate checks that every setting holds an allowed value.
func (c *Config) Validate() error {
	if !slices.Contains(LogLevels, c.Logging.Level) {
		return &SettingError{Path: "logging.level", Value: c.Logging.Level, Err: ErrValidationFailed}
	}
	return nil
}

func setString(data map[string]any, path string, dst *string) error {
	val, ok := loader.GetByPath(data, path)
	if !ok {
		return nil
	}
	s, ok := val.(string)
	if !ok {
		return &SettingError{Path: path, Value: val, Err: ErrTypeMismatch}
	}
	*dst = s
	return nil
}

func setBool(data map[string]any, path string, dst *bool) error {
	val, ok := loader.GetByPath(data, path)
	if !ok {
		return nil
	}
	b, ok := val.(bool)
	if !ok {
		return &SettingError{Path: path, Value: val, Err: ErrTypeMismatch}
	}
	*dst = b
	return nil
}

func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hecto")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hecto")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hecto", "hecto.log")
}
