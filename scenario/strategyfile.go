// SPDX-License-Identifier: MIT
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// strategyFile is the YAML-serializable projection of a Strategy, letting
// a host CLI (explicitly out of scope per §1) load run configuration from
// a file without the core depending on flag/env parsing. Unexported
// Strategy fields (rngFactory) have no file representation; loading a
// file always resolves to the package default PRNGFactory.
type strategyFile struct {
	SampleSize            int     `yaml:"sample_size"`
	Confidence            float64 `yaml:"confidence"`
	PassRateThreshold     float64 `yaml:"pass_rate_threshold"`
	MinConfidence         float64 `yaml:"min_confidence"`
	MaxIterations         int     `yaml:"max_iterations"`
	Seed                  int64   `yaml:"seed"`
	Statistics            bool    `yaml:"statistics"`
	DetailedStatistics    bool    `yaml:"detailed_statistics"`
	Bias                  bool    `yaml:"bias"`
	Shrinking             bool    `yaml:"shrinking"`
	ShrinkAttempts        int     `yaml:"shrink_attempts"`
	ShrinkStrategy        string  `yaml:"shrink_strategy"`
	CredibleIntervalWidth float64 `yaml:"credible_interval_width"`
}

func (s Strategy) toFile() strategyFile {
	return strategyFile{
		SampleSize:            s.sampleSize,
		Confidence:            s.confidence,
		PassRateThreshold:     s.passRateThreshold,
		MinConfidence:         s.minConfidence,
		MaxIterations:         s.maxIterations,
		Seed:                  s.seed,
		Statistics:            s.statistics,
		DetailedStatistics:    s.detailedStatistics,
		Bias:                  s.bias,
		Shrinking:             s.shrinking,
		ShrinkAttempts:        s.shrinkAttempts,
		ShrinkStrategy:        s.shrinkStrategy,
		CredibleIntervalWidth: s.credibleIntervalWidth,
	}
}

func (f strategyFile) toStrategy() Strategy {
	s := defaultStrategy()
	s.sampleSize = f.SampleSize
	s.confidence = f.Confidence
	s.passRateThreshold = f.PassRateThreshold
	s.minConfidence = f.MinConfidence
	s.maxIterations = f.MaxIterations
	s.seed = f.Seed
	s.statistics = f.Statistics
	s.detailedStatistics = f.DetailedStatistics
	s.bias = f.Bias
	s.shrinking = f.Shrinking
	s.shrinkAttempts = f.ShrinkAttempts
	s.shrinkStrategy = f.ShrinkStrategy
	s.credibleIntervalWidth = f.CredibleIntervalWidth

	return s
}

// MarshalYAML renders strategy as a YAML document.
func MarshalYAML(strategy Strategy) ([]byte, error) {
	data, err := yaml.Marshal(strategy.toFile())
	if err != nil {
		return nil, fmt.Errorf("scenario: marshal strategy: %w", err)
	}

	return data, nil
}

// UnmarshalYAML parses a YAML document produced by MarshalYAML (or
// hand-written in the same shape) into a Strategy, starting from
// defaultStrategy for any field the document omits.
func UnmarshalYAML(data []byte) (Strategy, error) {
	f := defaultStrategy().toFile()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Strategy{}, fmt.Errorf("scenario: unmarshal strategy: %w", err)
	}

	return f.toStrategy(), nil
}

// LoadStrategyFile reads and parses a Strategy from a YAML file at path.
func LoadStrategyFile(path string) (Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Strategy{}, fmt.Errorf("scenario: read strategy file %q: %w", path, err)
	}

	return UnmarshalYAML(data)
}

// SaveStrategyFile writes strategy to path as YAML, creating or
// truncating the file with mode 0644.
func SaveStrategyFile(strategy Strategy, path string) error {
	data, err := MarshalYAML(strategy)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("scenario: write strategy file %q: %w", path, err)
	}

	return nil
}
