// Package config loads svnq's configuration: a user-level file under the
// OS config directory, optionally overridden by a per-project file in the
// working directory. Flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ProjectFileName is the per-project override looked up in the working
// directory.
const ProjectFileName = ".svnq.yaml"

// Config mirrors the YAML file. Pointer fields distinguish "explicitly
// false" from "absent" so layering keeps explicit choices. Passwords are
// deliberately not part of the file; they come from flags, the prompt, or
// the environment.
type Config struct {
	// Repo is the base repository URL relative targets resolve against.
	Repo string `yaml:"repo" validate:"omitempty,url"`

	Username string `yaml:"username"`

	NonInteractive  *bool `yaml:"non_interactive"`
	TrustServerCert *bool `yaml:"trust_server_cert"`
	NoAuthCache     *bool `yaml:"no_auth_cache"`

	// Binary overrides the svn executable.
	Binary string `yaml:"binary"`

	// Timeout bounds one svn invocation, in Go duration syntax.
	Timeout string `yaml:"timeout" validate:"omitempty,duration"`

	// LogFile enables the rotating debug log.
	LogFile string `yaml:"log_file"`

	Verbose bool `yaml:"verbose"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// yaml tag names make validation errors point at the file syntax.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("yaml")
	})
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		_, err := time.ParseDuration(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// TimeoutDuration parses the timeout field. Zero means "use the default".
func (c *Config) TimeoutDuration() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Load assembles the configuration from the user file, then the project
// file, each layer overriding the previous one field by field. Missing
// files are fine; unreadable or invalid ones are not.
func Load() (*Config, error) {
	cfg := &Config{}

	if p := UserPath(); p != "" {
		if err := mergeFile(cfg, p); err != nil {
			return nil, err
		}
	}
	if err := mergeFile(cfg, ProjectFileName); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromFile loads exactly one file, for an explicit --config flag.
func FromFile(path string) (*Config, error) {
	cfg := &Config{}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UserPath is the user-level config location, "" when the OS offers no
// config directory.
func UserPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "svnq", "config.yaml")
}

func mergeFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	layer := &Config{}
	if err := yaml.Unmarshal(raw, layer); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	merge(cfg, layer)
	return nil
}

// merge copies layer's set fields onto cfg.
func merge(cfg, layer *Config) {
	if layer.Repo != "" {
		cfg.Repo = layer.Repo
	}
	if layer.Username != "" {
		cfg.Username = layer.Username
	}
	if layer.NonInteractive != nil {
		cfg.NonInteractive = layer.NonInteractive
	}
	if layer.TrustServerCert != nil {
		cfg.TrustServerCert = layer.TrustServerCert
	}
	if layer.NoAuthCache != nil {
		cfg.NoAuthCache = layer.NoAuthCache
	}
	if layer.Binary != "" {
		cfg.Binary = layer.Binary
	}
	if layer.Timeout != "" {
		cfg.Timeout = layer.Timeout
	}
	if layer.LogFile != "" {
		cfg.LogFile = layer.LogFile
	}
	if layer.Verbose {
		cfg.Verbose = true
	}
}
