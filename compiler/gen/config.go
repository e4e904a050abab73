// Package gen emits static Go source for record snapshots: the concrete
// struct, a constructor enforcing required attributes and literal
// defaults, Equal, and String, with unexported fields plus getters for
// immutable records. It is the build-time counterpart of the runtime
// composer in the record package.
package gen

import (
	"path"

	"github.com/syssam/attrkit"
)

// Config configures code generation.
type Config struct {
	// Package is the output package import path,
	// for example "github.com/org/project/model".
	Package string
	// Header is added at the top of each generated file.
	Header string
	// Target is the output directory.
	Target string
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the output package import path.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return attrkit.NewConfigError("gen", "Package", "package cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return attrkit.NewConfigError("gen", "Target", "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// pkgName returns the package identifier of the configured import path.
func (c *Config) pkgName() string {
	if c.Package == "" {
		return "model"
	}
	return path.Base(c.Package)
}
