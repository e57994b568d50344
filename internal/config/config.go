package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"property-info/extractor"
)

const (
	// Name is the config file name, without extension, looked up in the working directory.
	Name = "property-info"
	// EnvPrefix prefixes environment overrides, e.g. PROPERTY_INFO_ACRONYM_LENGTH.
	EnvPrefix = "PROPERTY_INFO"
)

// Keys.
const (
	KeyMutatorPrefixes             = "mutator_prefixes"
	KeyAccessorPrefixes            = "accessor_prefixes"
	KeyArrayMutatorPrefixes        = "array_mutator_prefixes"
	KeyEnableConstructorExtraction = "enable_constructor_extraction"
	KeyAcronymLength               = "acronym_length"
	KeyFormat                      = "format"
)

// Formats are the accepted output formats.
var Formats = []string{"table", "yaml", "json"}

// Config represents the property-info configuration
type Config struct {
	MutatorPrefixes             []string `mapstructure:"mutator_prefixes" yaml:"mutator_prefixes"`
	AccessorPrefixes            []string `mapstructure:"accessor_prefixes" yaml:"accessor_prefixes"`
	ArrayMutatorPrefixes        []string `mapstructure:"array_mutator_prefixes" yaml:"array_mutator_prefixes"`
	EnableConstructorExtraction bool     `mapstructure:"enable_constructor_extraction" yaml:"enable_constructor_extraction"`
	AcronymLength               int      `mapstructure:"acronym_length" yaml:"acronym_length"`
	Format                      string   `mapstructure:"format" yaml:"format"`
}

// New returns a viper instance carrying the defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyMutatorPrefixes, extractor.DefaultMutatorPrefixes())
	v.SetDefault(KeyAccessorPrefixes, extractor.DefaultAccessorPrefixes())
	v.SetDefault(KeyArrayMutatorPrefixes, extractor.DefaultArrayMutatorPrefixes())
	v.SetDefault(KeyEnableConstructorExtraction, true)
	v.SetDefault(KeyAcronymLength, extractor.DefaultAcronymLength)
	v.SetDefault(KeyFormat, Formats[0])

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration. An empty path looks for property-info.yaml
// in the working directory and falls back to defaults when it is missing;
// an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%s must be one of %s, got: %q", KeyFormat, strings.Join(Formats, ", "), c.Format)
	}

	if c.AcronymLength < 0 {
		return fmt.Errorf("%s must not be negative, got: %d", KeyAcronymLength, c.AcronymLength)
	}

	return nil
}

// ExtractorOptions turns the configuration into extractor options.
func (c *Config) ExtractorOptions() []extractor.Option {
	return []extractor.Option{
		extractor.WithMutatorPrefixes(c.MutatorPrefixes...),
		extractor.WithAccessorPrefixes(c.AccessorPrefixes...),
		extractor.WithArrayMutatorPrefixes(c.ArrayMutatorPrefixes...),
		extractor.WithConstructorExtraction(c.EnableConstructorExtraction),
		extractor.WithAcronymLength(c.AcronymLength),
	}
}
