// File: config.go
// Title: Formatter Profile Configuration
// Description: Implements loading and validation of named formatter
//              profiles from TOML and YAML files, and the construction of
//              fmtx formatters from validated profiles. The file format is
//              detected from the file extension.
// Author: ParrotsDL Team
// Version: v0.1.0
// Created: 2026-06-02
// Modified: 2026-06-03
//
// Change History:
// - 2026-06-02 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-06-03 v0.1.1: Profile formatting conveniences

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	clueerror "github.com/ParrotsDL/CLUE/core/error"
	"github.com/ParrotsDL/CLUE/utils/fmtx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Profile kinds accepted by Validate
const (
	KindInt      = "int"
	KindFixed    = "fixed"
	KindSci      = "sci"
	KindShortest = "shortest"
)

// Profile is one named formatter configuration. Zero fields take the
// kind's defaults: base 10 for int profiles, the package default
// precision for fixed and sci profiles.
type Profile struct {
	Kind      string   `toml:"kind" yaml:"kind"`
	Base      uint     `toml:"base" yaml:"base"`
	Width     int      `toml:"width" yaml:"width"`
	Precision *int     `toml:"precision" yaml:"precision"`
	Flags     []string `toml:"flags" yaml:"flags"`
}

// Config holds the named formatter profiles of one configuration file
type Config struct {
	Profiles map[string]Profile `toml:"profiles" yaml:"profiles"`
}

// Load reads, parses and validates a profile configuration file. The
// format is detected from the file extension: .toml parses as TOML,
// .yaml and .yml as YAML.
func Load(filePath string) (*Config, error) {
	format, err := detectFormat(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, clueerror.Wrap(err, "cannot read config file").
			WithCode(clueerror.CodeNotFound).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	return Parse(data, format)
}

// Parse parses and validates profile configuration data in the given
// format
func Parse(data []byte, format Format) (*Config, error) {
	var cfg Config
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, clueerror.Wrap(err, "cannot parse config data").
			WithCode(clueerror.CodeConfigParse).
			WithOperation("config.Parse").
			WithDetail("format", format.String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func detectFormat(filePath string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return FormatAuto, clueerror.Newf("unsupported config file extension: %s", filepath.Ext(filePath)).
		WithCode(clueerror.CodeConfigInvalid).
		WithOperation("config.detectFormat").
		WithDetail("filePath", filePath)
}

// Validate checks every profile for a known kind, a supported base, a
// non-negative precision and resolvable flag names
func (c *Config) Validate() error {
	for name, p := range c.Profiles {
		if err := p.validate(); err != nil {
			if e, ok := err.(*clueerror.Error); ok {
				return e.WithDetail("profile", name)
			}
			return err
		}
	}
	return nil
}

func (p Profile) validate() error {
	switch p.Kind {
	case KindInt:
		switch p.Base {
		case 0, 8, 10, 16:
		default:
			return clueerror.Newf("unsupported base %d for int profile", p.Base).
				WithCode(clueerror.CodeConfigInvalid).
				WithOperation("config.Profile.validate")
		}
	case KindFixed, KindSci, KindShortest:
		if p.Base != 0 {
			return clueerror.Newf("base is not applicable to %s profiles", p.Kind).
				WithCode(clueerror.CodeConfigInvalid).
				WithOperation("config.Profile.validate")
		}
	default:
		return clueerror.Newf("unknown profile kind: %q", p.Kind).
			WithCode(clueerror.CodeConfigInvalid).
			WithOperation("config.Profile.validate")
	}

	if p.Precision != nil && *p.Precision < 0 {
		return clueerror.Newf("negative precision %d", *p.Precision).
			WithCode(clueerror.CodeConfigInvalid).
			WithOperation("config.Profile.validate")
	}

	if _, err := fmtx.ParseFlags(p.Flags); err != nil {
		return clueerror.Wrap(err, "invalid profile flags").
			WithCode(clueerror.CodeConfigInvalid).
			WithOperation("config.Profile.validate")
	}
	return nil
}

// Profile returns the named profile
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, clueerror.Newf("profile not found: %s", name).
			WithCode(clueerror.CodeNotFound).
			WithOperation("config.Config.Profile").
			WithDetail("profile", name)
	}
	return p, nil
}

// IntFormatter builds the integer formatter described by an int profile
func (p Profile) IntFormatter() (fmtx.IntFormatter, error) {
	if p.Kind != KindInt {
		return fmtx.IntFormatter{}, clueerror.Newf("profile kind %q does not format integers", p.Kind).
			WithCode(clueerror.CodeConfigInvalid).
			WithOperation("config.Profile.IntFormatter")
	}
	flags, err := fmtx.ParseFlags(p.Flags)
	if err != nil {
		return fmtx.IntFormatter{}, err
	}
	base := p.Base
	if base == 0 {
		base = 10
	}
	return fmtx.DefaultInt().Base(base).Width(p.Width).Flags(flags), nil
}

// FloatFormatter builds the float formatter described by a fixed, sci or
// shortest profile
func (p Profile) FloatFormatter() (fmtx.ValueFormatter[float64], error) {
	flags, err := fmtx.ParseFlags(p.Flags)
	if err != nil {
		return nil, err
	}

	switch p.Kind {
	case KindFixed, KindSci:
		f := fmtx.FixedFmt()
		if p.Kind == KindSci {
			f = fmtx.SciFmt()
		}
		if p.Precision != nil {
			f = f.Precision(*p.Precision)
		}
		return f.Width(p.Width).Flags(flags), nil
	case KindShortest:
		return fmtx.ShortestFmt(), nil
	}
	return nil, clueerror.Newf("profile kind %q does not format floats", p.Kind).
		WithCode(clueerror.CodeConfigInvalid).
		WithOperation("config.Profile.FloatFormatter")
}

// FormatInt formats x through an int profile
func (p Profile) FormatInt(x int64) (string, error) {
	f, err := p.IntFormatter()
	if err != nil {
		return "", err
	}
	return fmtx.Strf(x, fmtx.For[int64](f)), nil
}

// FormatFloat formats x through a fixed, sci or shortest profile
func (p Profile) FormatFloat(x float64) (string, error) {
	f, err := p.FloatFormatter()
	if err != nil {
		return "", err
	}
	return fmtx.Strf(x, f), nil
}
