package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnalysisConfig is an opaque bag of settings that the dataflow core
// receives in every analysis constructor but never interprets itself. To
// add a new setting, add a field here; if a field is absent from the YAML
// file, it keeps its Go zero value.
type AnalysisConfig struct {
	// sourceFile is the path AnalysisConfig was loaded from, if any.
	sourceFile string

	// LogLevel controls the verbosity of the LogGroup built from this
	// config (see logging.go).
	LogLevel int `yaml:"log-level"`

	// MaxCFGSize bounds the number of statements a CFG submitted to the
	// solver may have. The solver itself runs to its fixed point
	// regardless of size; this field exists so a caller's own bound on
	// that is part of the same config file as everything else.
	MaxCFGSize int `yaml:"max-cfg-size"`

	// NumRoutines is the number of goroutines pipeline.AnalyzeFunctionsParallel
	// should use. Zero or negative means a single goroutine.
	NumRoutines int `yaml:"num-routines"`
}

// NewDefault returns an AnalysisConfig with the default log level (Info)
// and no other limits set.
func NewDefault() *AnalysisConfig {
	return &AnalysisConfig{
		LogLevel: int(InfoLevel),
	}
}

// Load reads and unmarshals a YAML configuration file. Any field absent
// from the file keeps the Go zero value, except LogLevel, which defaults
// to Info when the file does not set it (a LogLevel of zero would
// otherwise silently disable all logging, per the LogGroup gating in
// logging.go).
func Load(filename string) (*AnalysisConfig, error) {
	cfg := NewDefault()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file as yaml: %w", err)
	}
	cfg.sourceFile = filename
	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}
	return cfg, nil
}

// SourceFile returns the path AnalysisConfig was loaded from, or the empty string
// if it was built with NewDefault.
func (c *AnalysisConfig) SourceFile() string {
	return c.sourceFile
}
