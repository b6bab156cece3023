// Package config loads and validates codepaste settings.
// Values come from (highest precedence first) command-line flags,
// CODEPASTE_* environment variables, and a .codepaste.yaml file in the
// home or working directory.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/codepaste/core"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrInvalid is returned when loaded settings fail validation.
var ErrInvalid = errors.New("invalid configuration")

// Format names accepted by the format setting.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatPDF      = "pdf"
)

// Config is the resolved set of settings.
type Config struct {
	MaxInputBytes int               `mapstructure:"max_input_bytes" validate:"gte=0"`
	Format        string            `mapstructure:"format" validate:"oneof=markdown json yaml pdf"`
	OutputDir     string            `mapstructure:"output_dir"`
	Fallback      bool              `mapstructure:"fallback"`
	Debug         bool              `mapstructure:"debug"`
	Quiet         bool              `mapstructure:"quiet"`
	Aliases       map[string]string `mapstructure:"aliases" validate:"dive,keys,required,endkeys,required"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("max_input_bytes", core.DefaultMaxInputBytes)
	v.SetDefault("format", FormatMarkdown)
	v.SetDefault("fallback", true)
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
