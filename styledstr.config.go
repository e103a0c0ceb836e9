package styledstr

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Config is the host-supplied configuration of a Parser. It is fixed when
// the parser is created.
type Config struct {
	// ResourcePath is the directory searched for named presets.
	ResourcePath string `json:"resource_path" yaml:"resource_path" toml:"resource_path"`

	// DefaultPreset is used when a call does not name a preset.
	// Empty means "default".
	DefaultPreset string `json:"default_preset" yaml:"default_preset" toml:"default_preset"`
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.DefaultPreset == "" {
		c.DefaultPreset = DefaultPresetName
	}
	return c
}

// Validate checks the configuration. A resource path that does not exist is
// accepted; one that exists but is not a directory is rejected.
func (c Config) Validate() error {
	if c.DefaultPreset != "" && strings.TrimSpace(c.DefaultPreset) == "" {
		return NewConfigError(ErrMsgEmptyDefaultPreset, "", nil)
	}
	if c.ResourcePath != "" {
		if info, err := os.Stat(c.ResourcePath); err == nil && !info.IsDir() {
			return NewConfigError(ErrMsgResourcePathNotDir, c.ResourcePath, nil)
		}
	}
	return nil
}

// Merge returns c with every non-empty field of override applied.
func (c Config) Merge(override Config) Config {
	if override.ResourcePath != "" {
		c.ResourcePath = override.ResourcePath
	}
	if override.DefaultPreset != "" {
		c.DefaultPreset = override.DefaultPreset
	}
	return c
}

// LoadConfigFromEnv reads STYLEDSTR_RESPATH and STYLEDSTR_PRESET.
// The given dotenv files are loaded first; variables already present in the
// environment win over the files. Missing files are an error only when
// named explicitly; with no arguments a missing ./.env is ignored.
func LoadConfigFromEnv(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, NewConfigError(ErrMsgEnvFileLoadFailed, strings.Join(envFiles, ","), err)
	}

	return Config{
		ResourcePath:  os.Getenv(EnvResourcePath),
		DefaultPreset: os.Getenv(EnvDefaultPreset),
	}, nil
}

// LoadConfigFile reads a Config from a TOML, YAML or JSON file, chosen by
// extension. JSON files may contain comments.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewConfigError(ErrMsgConfigReadFailed, path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ConfigExtTOML:
		err = toml.Unmarshal(data, &cfg)
	case ConfigExtYAML, ConfigExtYML:
		err = yaml.Unmarshal(data, &cfg)
	case ConfigExtJSON, ConfigExtJSONC:
		err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	default:
		return Config{}, NewConfigError(ErrMsgConfigUnknownFormat, path, nil)
	}
	if err != nil {
		return Config{}, NewConfigError(ErrMsgConfigDecodeFailed, path, err)
	}

	// Relative resource paths are relative to the config file
	if cfg.ResourcePath != "" && !filepath.IsAbs(cfg.ResourcePath) {
		cfg.ResourcePath = filepath.Join(filepath.Dir(path), cfg.ResourcePath)
	}
	return cfg, nil
}
