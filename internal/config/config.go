package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/trigtab/internal/emit"
	"github.com/san-kum/trigtab/internal/table"
)

const (
	DefaultResolution = table.DefaultResolution
	DefaultFormat     = emit.FormatC
	DefaultPrecision  = emit.DefaultPrecision
	DefaultBits       = table.DefaultBits
)

// Config is a generator profile. Zero-valued fields in a file keep the
// defaults they were loaded over.
type Config struct {
	Resolution  int    `yaml:"resolution"`
	Format      string `yaml:"format"`
	Precision   int    `yaml:"precision"`
	ElementType string `yaml:"element_type"`
	SinName     string `yaml:"sin_name"`
	CosName     string `yaml:"cos_name"`
	Bits        uint   `yaml:"bits"`
	Package     string `yaml:"package"`
	Output      string `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Resolution:  DefaultResolution,
		Format:      DefaultFormat,
		Precision:   DefaultPrecision,
		ElementType: emit.DefaultElementType,
		SinName:     emit.DefaultSinName,
		CosName:     emit.DefaultCosName,
		Bits:        DefaultBits,
		Package:     emit.DefaultPackage,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the profile before anything is generated.
func (c *Config) Validate() error {
	if err := table.CheckResolution(c.Resolution); err != nil {
		return err
	}
	return c.EmitOptions().Validate()
}

func (c *Config) EmitOptions() emit.Options {
	return emit.Options{
		Format:      c.Format,
		Precision:   c.Precision,
		ElementType: c.ElementType,
		SinName:     c.SinName,
		CosName:     c.CosName,
		Bits:        c.Bits,
		Package:     c.Package,
	}
}
