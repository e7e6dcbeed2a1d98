package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"acctvault/internal/util/fsutil"
)

const (
	DirName          = ".acctvault"
	ConfigFileName   = "config.yml"
	DatabaseFileName = "vault.avdb"

	// DefaultMinPasswordLength is the shortest main password accepted on create.
	DefaultMinPasswordLength = 8

	// DefaultClearClipboardCountdown is how long, in seconds, a copied
	// password stays on the clipboard.
	DefaultClearClipboardCountdown = 10
)

// Sources of a configuration value.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
)

// Config holds the CLI settings.
type Config struct {
	// Database is the account file used when --database is not given.
	Database string `yaml:"database"`

	// TreeMode makes list render the parent/child hierarchy.
	TreeMode bool `yaml:"tree_mode"`

	// MinPasswordLength is the weak main password threshold, in characters.
	MinPasswordLength int `yaml:"min_password_length"`

	// ClearClipboardCountdown is the number of seconds before a copied
	// password is cleared from the clipboard. 0 leaves it there.
	ClearClipboardCountdown int `yaml:"clear_clipboard_countdown"`

	Verbose bool `yaml:"verbose"`
	Debug   bool `yaml:"debug"`

	// Color enables coloured output; NO_COLOR turns it off.
	Color bool `yaml:"color"`

	// sources tracks where each value came from
	sources map[string]string

	// path is the file the config was loaded from
	path string
}

// Attribute is a configuration value with its source.
type Attribute struct {
	Name   string
	Value  string
	Source string
}

// fileConfig mirrors Config with pointers so absent keys keep defaults.
type fileConfig struct {
	Database                *string `yaml:"database"`
	TreeMode                *bool   `yaml:"tree_mode"`
	MinPasswordLength       *int    `yaml:"min_password_length"`
	ClearClipboardCountdown *int    `yaml:"clear_clipboard_countdown"`
	Verbose                 *bool   `yaml:"verbose"`
	Debug                   *bool   `yaml:"debug"`
	Color                   *bool   `yaml:"color"`
}

func attributeNames() []string {
	return []string{
		"database", "tree_mode", "min_password_length", "clear_clipboard_countdown",
		"verbose", "debug", "color",
	}
}

// Dir returns the per-user directory, $ACCTVAULT_HOME or $HOME/.acctvault.
func Dir() (string, error) {
	if d := os.Getenv("ACCTVAULT_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns the config file path, $ACCTVAULT_CONFIG or
// config.yml inside Dir.
func DefaultPath() (string, error) {
	if p := os.Getenv("ACCTVAULT_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Default returns the built-in settings with the database inside dir.
func Default(dir string) *Config {
	c := &Config{
		Database:                filepath.Join(dir, DatabaseFileName),
		TreeMode:                true,
		MinPasswordLength:       DefaultMinPasswordLength,
		ClearClipboardCountdown: DefaultClearClipboardCountdown,
		Color:                   true,
		sources:                 make(map[string]string),
	}
	for _, name := range attributeNames() {
		c.sources[name] = SourceDefault
	}
	return c
}

// Load builds the configuration from defaults, then the file at path (a
// missing file is not an error), then environment variables. An empty path
// means DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	c := Default(dir)
	c.path = path

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		c.applyFileConfig(&fc)
	}

	if err := c.applyEnvConfig(); err != nil {
		return nil, err
	}
	if c.MinPasswordLength < 0 {
		return nil, fmt.Errorf("min_password_length must not be negative, got %d", c.MinPasswordLength)
	}
	if c.ClearClipboardCountdown < 0 {
		return nil, fmt.Errorf("clear_clipboard_countdown must not be negative, got %d", c.ClearClipboardCountdown)
	}
	return c, nil
}

func (c *Config) applyFileConfig(fc *fileConfig) {
	if fc.Database != nil {
		c.Database = expandHome(*fc.Database)
		c.sources["database"] = SourceFile
	}
	if fc.TreeMode != nil {
		c.TreeMode = *fc.TreeMode
		c.sources["tree_mode"] = SourceFile
	}
	if fc.MinPasswordLength != nil {
		c.MinPasswordLength = *fc.MinPasswordLength
		c.sources["min_password_length"] = SourceFile
	}
	if fc.ClearClipboardCountdown != nil {
		c.ClearClipboardCountdown = *fc.ClearClipboardCountdown
		c.sources["clear_clipboard_countdown"] = SourceFile
	}
	if fc.Verbose != nil {
		c.Verbose = *fc.Verbose
		c.sources["verbose"] = SourceFile
	}
	if fc.Debug != nil {
		c.Debug = *fc.Debug
		c.sources["debug"] = SourceFile
	}
	if fc.Color != nil {
		c.Color = *fc.Color
		c.sources["color"] = SourceFile
	}
}

func (c *Config) applyEnvConfig() error {
	if v := os.Getenv("ACCTVAULT_DATABASE"); v != "" {
		c.Database = expandHome(v)
		c.sources["database"] = SourceEnv
	}
	for _, b := range []struct {
		env, name string
		dst       *bool
	}{
		{"ACCTVAULT_TREE_MODE", "tree_mode", &c.TreeMode},
		{"ACCTVAULT_VERBOSE", "verbose", &c.Verbose},
		{"ACCTVAULT_DEBUG", "debug", &c.Debug},
	} {
		v := os.Getenv(b.env)
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", b.env, v, err)
		}
		*b.dst = parsed
		c.sources[b.name] = SourceEnv
	}
	for _, i := range []struct {
		env, name string
		dst       *int
	}{
		{"ACCTVAULT_MIN_PASSWORD_LENGTH", "min_password_length", &c.MinPasswordLength},
		{"ACCTVAULT_CLEAR_CLIPBOARD_COUNTDOWN", "clear_clipboard_countdown", &c.ClearClipboardCountdown},
	} {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", i.env, v, err)
		}
		*i.dst = n
		c.sources[i.name] = SourceEnv
	}
	// https://no-color.org/
	for _, env := range []string{"NO_COLOR", "ACCTVAULT_NO_COLOR"} {
		if _, ok := os.LookupEnv(env); ok {
			c.Color = false
			c.sources["color"] = SourceEnv
		}
	}
	return nil
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// Source reports where the named value came from: default, file or env.
func (c *Config) Source(name string) string {
	if s, ok := c.sources[name]; ok {
		return s
	}
	return SourceDefault
}

// Attributes lists every setting with its value and source.
func (c *Config) Attributes() []Attribute {
	values := map[string]string{
		"database":                  c.Database,
		"tree_mode":                 strconv.FormatBool(c.TreeMode),
		"min_password_length":       strconv.Itoa(c.MinPasswordLength),
		"clear_clipboard_countdown": strconv.Itoa(c.ClearClipboardCountdown),
		"verbose":                   strconv.FormatBool(c.Verbose),
		"debug":                     strconv.FormatBool(c.Debug),
		"color":                     strconv.FormatBool(c.Color),
	}
	out := make([]Attribute, 0, len(values))
	for _, name := range attributeNames() {
		out = append(out, Attribute{Name: name, Value: values[name], Source: c.Source(name)})
	}
	return out
}

// Save writes the configuration as YAML to path, or to Path when path is
// empty, creating the directory if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = c.path
	}
	if path == "" {
		return errors.New("config has no path")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, b, 0o600)
}

func expandHome(p string) string {
	if len(p) < 2 || p[:2] != "~/" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
