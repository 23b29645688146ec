package config

// Config is the top-level bookshelf configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui" yaml:"ui"`
	Seed SeedConfig `mapstructure:"seed" yaml:"seed"`
	Log  LogConfig  `mapstructure:"log" yaml:"log"`
}

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	AltScreen        bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
	EmptyDescription string `mapstructure:"empty_description" yaml:"empty_description"`
}

// SeedConfig points at a YAML book list loaded once at startup.
// Edits made in the app are never written back.
type SeedConfig struct {
	Path string `mapstructure:"path" yaml:"path,omitempty"`
}

// LogConfig controls the debug log. TUIs own stdout, so logs only go to a file.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file,omitempty"`
	Level string `mapstructure:"level" yaml:"level"`
}

// DefaultEmptyDescription is shown in the view dialog for books without a description.
const DefaultEmptyDescription = "(no description)"

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			AltScreen:        true,
			EmptyDescription: DefaultEmptyDescription,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Placeholder returns the text to show for an empty description.
func (u UIConfig) Placeholder() string {
	if u.EmptyDescription != "" {
		return u.EmptyDescription
	}
	return DefaultEmptyDescription
}
