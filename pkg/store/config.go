package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

var (
	ErrConfigParse         = errors.New("failed to parse config.json")
	ErrConfigAlreadyExists = errors.New("config already exists: use --force to overwrite")
	ErrInvalidConfigKey    = errors.New("invalid config key")
	ErrEmptyConfigValue    = errors.New("config value cannot be empty")
)

// EnvPrefix prefixes environment overrides, e.g. KPS_AUTHOR.
const EnvPrefix = "KPS"

// LoadConfig reads the config at path. Environment variables named
// KPS_<KEY> (KPS_AUTHOR, KPS_SOURCE_FOLDER, ...) override file values.
func LoadConfig(path string) (*Config, error) {
	return loadConfig(path, true)
}

// LoadFileConfig reads the config at path without environment overrides.
// Use it for configs that are written back to disk.
func LoadFileConfig(path string) (*Config, error) {
	return loadConfig(path, false)
}

func loadConfig(path string, withEnv bool) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if withEnv {
		for _, k := range ConfigKeys {
			if err := v.BindEnv(string(k), envName(k)); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes cfg to path as indented JSON, replacing the file
// atomically.
func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return writeFileAtomic(path, append(data, '\n'))
}

// ParseConfigKey validates a key given on the command line.
func ParseConfigKey(s string) (ConfigKey, error) {
	for _, k := range ConfigKeys {
		if string(k) == s {
			return k, nil
		}
	}
	names := make([]string, len(ConfigKeys))
	for i, k := range ConfigKeys {
		names[i] = string(k)
	}
	return "", fmt.Errorf("%w: '%s' (valid keys: %s)", ErrInvalidConfigKey, s, strings.Join(names, ", "))
}

// Get returns the value stored under k.
func (c *Config) Get(k ConfigKey) string {
	switch k {
	case KeyAuthor:
		return c.Author
	case KeySourceFolder:
		return c.SourceFolder
	case KeyProjectName:
		return c.ProjectName
	case KeyXcodeProjectPath:
		return c.XcodeProjectPath
	default:
		return ""
	}
}

// Set updates k. Only xcodeProjectPath may be cleared.
func (c *Config) Set(k ConfigKey, value string) error {
	value = strings.TrimSpace(value)
	if value == "" && k != KeyXcodeProjectPath {
		return fmt.Errorf("%w: %s", ErrEmptyConfigValue, k)
	}
	switch k {
	case KeyAuthor:
		c.Author = value
	case KeySourceFolder:
		c.SourceFolder = value
	case KeyProjectName:
		c.ProjectName = value
	case KeyXcodeProjectPath:
		c.XcodeProjectPath = value
	default:
		return fmt.Errorf("%w: '%s'", ErrInvalidConfigKey, k)
	}
	return nil
}

// Map returns the config as key/value pairs for display.
func (c *Config) Map() map[string]string {
	m := make(map[string]string, len(ConfigKeys))
	for _, k := range ConfigKeys {
		m[string(k)] = c.Get(k)
	}
	return m
}

func (c *Config) validate() error {
	var missing []string
	for _, k := range []ConfigKey{KeyAuthor, KeySourceFolder, KeyProjectName} {
		if strings.TrimSpace(c.Get(k)) == "" {
			missing = append(missing, string(k))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfigParse, strings.Join(missing, ", "))
	}
	return nil
}

// envName maps sourceFolder to KPS_SOURCE_FOLDER.
func envName(k ConfigKey) string {
	var b strings.Builder
	b.WriteString(EnvPrefix)
	b.WriteByte('_')
	for i, r := range string(k) {
		if r >= 'A' && r <= 'Z' && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}

// writeFileAtomic writes to a temp file in the same directory and renames
// it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
