/*
Package config holds the settings of the gcl command and its HTTP server.

Configuration files may be written in TOML or YAML; the format is chosen by
file extension (.toml, .yaml, .yml). Values not present in a file keep their
defaults:

	[server]
	addr = ":8080"
	read_timeout = "10s"

	[report]
	title = "GCL Lexical & AST Report"
	page_lines = 64

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the complete configuration.
type Config struct {
	Trace  string       `toml:"trace" yaml:"trace"` // Debug, Info or Error
	Server ServerConfig `toml:"server" yaml:"server"`
	Report ReportConfig `toml:"report" yaml:"report"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr           string   `toml:"addr" yaml:"addr"`
	ReadTimeout    Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   Duration `toml:"write_timeout" yaml:"write_timeout"`
	MaxSourceBytes int64    `toml:"max_source_bytes" yaml:"max_source_bytes"`
}

// ReportConfig configures text reports.
type ReportConfig struct {
	Title     string `toml:"title" yaml:"title"`
	PageLines int    `toml:"page_lines" yaml:"page_lines"`
	LineWidth int    `toml:"line_width" yaml:"line_width"`
}

// OutputConfig sets defaults for command line output.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // tree, json, yaml or source
	Engine string `toml:"engine" yaml:"engine"` // ordered or dfa
}

// Duration is a time.Duration written as a string, e.g. "10s".
type Duration time.Duration

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders a duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Trace: "Error",
		Server: ServerConfig{
			Addr:           "localhost:8080",
			ReadTimeout:    Duration(10 * time.Second),
			WriteTimeout:   Duration(30 * time.Second),
			MaxSourceBytes: 1 << 20,
		},
		Report: ReportConfig{
			Title:     "GCL Lexical & AST Report",
			PageLines: 64,
			LineWidth: 100,
		},
		Output: OutputConfig{
			Format: "tree",
			Engine: "ordered",
		},
	}
}

// Format is the syntax of a configuration file.
type Format int

// Supported configuration formats.
const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// DetectFormat selects the format by file extension. Files with unknown
// extensions are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// Load reads a configuration file and merges it over the defaults.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	format := DetectFormat(path)
	if err := Decode(content, format, conf); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return conf, nil
}

// Decode parses content in the given format into conf. Keys missing from
// content leave the corresponding fields of conf untouched.
func Decode(content []byte, format Format, conf *Config) error {
	switch format {
	case YAML:
		if err := yaml.Unmarshal(content, conf); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		md, err := toml.Decode(string(content), conf)
		if err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return fmt.Errorf("unknown key %q", undec[0].String())
		}
	}
	return nil
}

// Validate checks the configuration for values out of range.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Trace) {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("trace level must be one of Debug, Info, Error; is %q", c.Trace)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server address must not be empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	if c.Server.MaxSourceBytes <= 0 {
		return fmt.Errorf("server max_source_bytes must be positive")
	}
	if c.Report.PageLines < 8 {
		return fmt.Errorf("report page_lines must be at least 8, is %d", c.Report.PageLines)
	}
	if c.Report.LineWidth < 20 {
		return fmt.Errorf("report line_width must be at least 20, is %d", c.Report.LineWidth)
	}
	switch c.Output.Format {
	case "tree", "json", "yaml", "source":
	default:
		return fmt.Errorf("output format must be one of tree, json, yaml, source; is %q", c.Output.Format)
	}
	switch c.Output.Engine {
	case "ordered", "dfa":
	default:
		return fmt.Errorf("output engine must be ordered or dfa; is %q", c.Output.Engine)
	}
	return nil
}
