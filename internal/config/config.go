package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blackwell-systems/bookshelf/internal/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bookshelf", "config.yml")
}

// Path resolves the config file: explicit path, then BOOKSHELF_CONFIG, then the default.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("BOOKSHELF_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config from path (see Path) and BOOKSHELF_* env vars.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ui.alt_screen", def.UI.AltScreen)
	v.SetDefault("ui.empty_description", def.UI.EmptyDescription)
	v.SetDefault("seed.path", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", def.Log.Level)

	v.SetEnvPrefix("BOOKSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path(path))
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, os.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Seed.Path = ExpandHome(cfg.Seed.Path)
	cfg.Log.File = ExpandHome(cfg.Log.File)

	return &cfg, nil
}

// Save writes cfg as YAML to path (see Path).
func Save(path string, cfg *Config) error {
	path = Path(path)
	if err := util.EnsureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
