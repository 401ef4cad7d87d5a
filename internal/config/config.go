// Package config provides compiler-wide constants and an optional
// triangle.yaml project configuration (spec.md's ambient config layer,
// grounded on the teacher's internal/config constants package and
// internal/ext's YAML-driven config struct).
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Version is the current trianglec version, set at build time via
// -ldflags or left at this default.
var Version = "0.1.0"

// SourceFileExt is the recognized Triangle source file extension.
const SourceFileExt = ".tri"

// ObjectFileExt is the default extension for a compiled object file.
const ObjectFileExt = ".tam"

// DefaultConfigFile is the project config file name searched for in the
// current directory when none is given explicitly.
const DefaultConfigFile = "triangle.yaml"

// Config is the optional triangle.yaml project configuration. Every field
// has a workable zero value, so a missing file is equivalent to Default().
type Config struct {
	// ObjectFileExt overrides ObjectFileExt above for this project's output.
	ObjectFileExt string `yaml:"object_file_ext,omitempty"`

	// MaxNestingDepth overrides the display register's addressable static
	// nesting depth (spec section 7's fatal "nesting too deep" condition).
	// Zero means "use codegen.MaxDisplayDepth".
	MaxNestingDepth int `yaml:"max_nesting_depth,omitempty"`

	// EmitHelperBlock controls whether codegen-generated helper routines
	// (currently just `|`) are included in the output. Defaults to true;
	// set false only to inspect a program's own code in isolation.
	EmitHelperBlock *bool `yaml:"emit_helper_block,omitempty"`

	// CacheEnabled controls whether the sqlite-backed incremental compile
	// cache (internal/cache) is consulted. Off by default: opt in per
	// project via triangle.yaml.
	CacheEnabled bool `yaml:"cache_enabled,omitempty"`

	// CachePath is the sqlite database path for the incremental compile
	// cache. Defaults to ".trianglec-cache.db" when empty.
	CachePath string `yaml:"cache_path,omitempty"`
}

// Default returns the configuration used when no triangle.yaml is present.
func Default() *Config {
	emit := true
	return &Config{
		ObjectFileExt:   ObjectFileExt,
		EmitHelperBlock: &emit,
		CacheEnabled:    false,
		CachePath:       ".trianglec-cache.db",
	}
}

// ShouldEmitHelperBlock reports whether the compiler-generated helper block
// should be emitted, honoring the explicit false override.
func (c *Config) ShouldEmitHelperBlock() bool {
	return c.EmitHelperBlock == nil || *c.EmitHelperBlock
}

// Load reads and merges path's YAML contents onto Default(). A missing file
// is not an error — it simply yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, err
	}
	applyOverrides(cfg, &override)
	return cfg, nil
}

func applyOverrides(cfg, override *Config) {
	if override.ObjectFileExt != "" {
		cfg.ObjectFileExt = override.ObjectFileExt
	}
	if override.MaxNestingDepth != 0 {
		cfg.MaxNestingDepth = override.MaxNestingDepth
	}
	if override.EmitHelperBlock != nil {
		cfg.EmitHelperBlock = override.EmitHelperBlock
	}
	if override.CachePath != "" {
		cfg.CachePath = override.CachePath
	}
	if override.CacheEnabled {
		cfg.CacheEnabled = true
	}
}
