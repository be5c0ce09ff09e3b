package model

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bredow/minutes/helper"
)

// AnalyzerConfig represents configuration for the transcript analyzer
type AnalyzerConfig struct {
	// Keyword worker subprocess. An empty command selects the
	// in-process extractor instead of spawning a worker.
	WorkerCommand string   `json:"worker_command" yaml:"worker_command"`
	WorkerArgs    []string `json:"worker_args,omitempty" yaml:"worker_args"`

	// Bounded wait for one worker round trip. Zero selects the default.
	WorkerTimeoutSeconds int `json:"worker_timeout_seconds" yaml:"worker_timeout_seconds"`

	// Number of sentences in a generated summary
	SummarySentences int `json:"summary_sentences" yaml:"summary_sentences"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultAnalyzerConfig returns a sensible default configuration
func DefaultAnalyzerConfig() *AnalyzerConfig {
	return &AnalyzerConfig{
		WorkerCommand:        "",
		WorkerArgs:           nil,
		WorkerTimeoutSeconds: 30,
		SummarySentences:     3,
		LogLevel:             "info",
	}
}

// LoadAnalyzerConfig reads and validates a YAML configuration file
func LoadAnalyzerConfig(path string) (*AnalyzerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, helper.NewError("read config file", err)
	}

	config := &AnalyzerConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, helper.NewError("parse config file", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration and fills in defaults for zero values
func (c *AnalyzerConfig) Validate() error {
	if c.SummarySentences < 0 {
		return fmt.Errorf("summary_sentences must not be negative")
	}
	if c.WorkerTimeoutSeconds < 0 {
		return fmt.Errorf("worker_timeout_seconds must not be negative")
	}

	if c.SummarySentences == 0 {
		c.SummarySentences = 3
	}
	if c.WorkerTimeoutSeconds == 0 {
		c.WorkerTimeoutSeconds = 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return nil
}

// WorkerTimeout returns the worker round trip bound as a duration
func (c *AnalyzerConfig) WorkerTimeout() time.Duration {
	return time.Duration(c.WorkerTimeoutSeconds) * time.Second
}
