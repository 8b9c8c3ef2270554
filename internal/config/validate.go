package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateConfidence(); err != nil {
		return err
	}
	if err := c.validateQuality(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatching() error {
	if c.Matching.FuzzyThreshold < 0 || c.Matching.FuzzyThreshold > 100 {
		return errors.New("matching.fuzzy_threshold must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateConfidence() error {
	if c.Confidence.Base < 0 || c.Confidence.Base > 1 {
		return errors.New("confidence.base must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateQuality() error {
	if c.Quality.Base < 0 || c.Quality.Base > 1 {
		return errors.New("quality.base must be between 0 and 1")
	}
	if c.Quality.MinScore < 0 || c.Quality.MinScore > 1 {
		return errors.New("quality.min_score must be between 0 and 1")
	}
	if err := ensurePositiveMap(map[string]int{
		"quality.length_ramp_words": c.Quality.LengthRampWords,
		"quality.short_words":       c.Quality.ShortWords,
		"quality.short_unique":      c.Quality.ShortUnique,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.Workers <= 0 {
		return errors.New("pipeline.workers must be positive")
	}
	if c.Pipeline.MinConfidence < 0 || c.Pipeline.MinConfidence > 1 {
		return errors.New("pipeline.min_confidence must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for name, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}
