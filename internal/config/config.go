// Package config provides configuration management for folio using Viper.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/folio/internal/errors"
	"github.com/thoreinstein/folio/internal/paths"
)

// ConfigName is the base name of the config file (folio.yaml).
const ConfigName = "folio"

// EnvPrefix prefixes environment overrides, e.g. FOLIO_RECENT_LIMIT.
const EnvPrefix = "FOLIO"

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// DocsDir is the root of the content tree; page URLs are relative to it.
	DocsDir string `mapstructure:"docs_dir" yaml:"docs_dir"`
	// PostsDir is where `folio new` writes posts.
	PostsDir string `mapstructure:"posts_dir" yaml:"posts_dir"`
	// SiteURL prefixes resolved page URLs when set.
	SiteURL          string `mapstructure:"site_url" yaml:"site_url"`
	UseDirectoryURLs bool   `mapstructure:"use_directory_urls" yaml:"use_directory_urls"`

	// RecentLimit is the default number of posts `folio recent` returns.
	// Zero means no limit.
	RecentLimit int `mapstructure:"recent_limit" yaml:"recent_limit"`

	Include []string `mapstructure:"include" yaml:"include"`
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// DefaultHide is written to the hide key of new posts.
	DefaultHide []string `mapstructure:"default_hide" yaml:"default_hide"`
}

// Default values, shared by Init and Default.
const (
	DefaultDocsDir     = "."
	DefaultPostsDir    = "blog/posts"
	DefaultRecentLimit = 6
)

// DefaultInclude matches every Markdown page under DocsDir.
var DefaultInclude = []string{"**/*.md"}

// DefaultHide hides the navigation sidebar on new posts.
var DefaultHide = []string{"navigation"}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		Version:          1,
		DocsDir:          DefaultDocsDir,
		PostsDir:         DefaultPostsDir,
		UseDirectoryURLs: true,
		RecentLimit:      DefaultRecentLimit,
		Include:          append([]string(nil), DefaultInclude...),
		Exclude:          []string{},
		DefaultHide:      append([]string(nil), DefaultHide...),
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(ConfigName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("docs_dir", def.DocsDir)
	viper.SetDefault("posts_dir", def.PostsDir)
	viper.SetDefault("site_url", def.SiteURL)
	viper.SetDefault("use_directory_urls", def.UseDirectoryURLs)
	viper.SetDefault("recent_limit", def.RecentLimit)
	viper.SetDefault("include", def.Include)
	viper.SetDefault("exclude", def.Exclude)
	viper.SetDefault("default_hide", def.DefaultHide)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches the default locations and falls back to
// defaults (plus environment overrides) when no file exists.
// The loaded configuration is validated; all problems are joined into one
// error wrapping ErrInvalidConfig.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config file")
		}
		if path != "" {
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		err := errors.Wrap(joinErrors(errs), "invalid configuration")
		return nil, errors.Mark(err, errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// PostsPath joins PostsDir onto DocsDir. A posts_dir that climbs out of
// docs_dir is rejected with paths.ErrInvalidPath.
func (c *Config) PostsPath() (string, error) {
	return paths.Within(c.DocsDir, c.PostsDir)
}

// Used returns the path of the config file that was read, if any.
func Used() string {
	return viper.ConfigFileUsed()
}
