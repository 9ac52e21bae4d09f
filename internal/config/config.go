// Package config holds the runtime configuration shared by the commands,
// populated from flags and LOCKSTR_* environment variables.
package config

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

type Config struct {
	// Positional argument: the file or directory to operate on.
	Path string `mapstructure:"-" validate:"required"`

	// Decrypt selects decryption; set by the subcommand, not a flag.
	Decrypt bool `mapstructure:"-"`

	// Selection flags
	IncludeHidden bool     `mapstructure:"include-hidden"`
	Exclude       []string `mapstructure:"exclude"`
	ExcludeFrom   string   `mapstructure:"exclude-from"`

	// Behavior flags
	ContinueOnError bool   `mapstructure:"continue-on-error"`
	DryRun          bool   `mapstructure:"dry-run"`
	Confirm         bool   `mapstructure:"confirm"`
	MaxFileSize     string `mapstructure:"max-file-size" validate:"omitempty,bytesize"`

	// Output flags
	Quiet   bool `mapstructure:"quiet" validate:"excluded_with=Verbose"`
	Verbose bool `mapstructure:"verbose"`
	Stats   bool `mapstructure:"stats"`
}

// Validate validates the configuration against the struct tags plus the
// constraints the tags cannot express.
func (c *Config) Validate() error {
	validate, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	if _, err := c.MaxFileSizeBytes(); err != nil {
		return err
	}

	return nil
}

// MaxFileSizeBytes parses the MaxFileSize flag value ("512MiB", "1GB").
// Empty means "use the built-in default", reported as 0.
func (c *Config) MaxFileSizeBytes() (int64, error) {
	if c.MaxFileSize == "" {
		return 0, nil
	}

	size, err := humanize.ParseBytes(c.MaxFileSize)
	if err != nil {
		return 0, fmt.Errorf("invalid max-file-size %q: %w", c.MaxFileSize, err)
	}

	if size > math.MaxInt64 {
		return 0, fmt.Errorf("max-file-size %q is out of range", c.MaxFileSize)
	}

	return int64(size), nil
}
