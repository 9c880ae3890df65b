// SPDX-License-Identifier: EPL-2.0

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ik5/physaudio/classify"
	"github.com/ik5/physaudio/material"
	"github.com/sirupsen/logrus"
)

// Config holds every setting of an engine.
type Config struct {
	SampleRate int `json:"sample_rate"`
	// MasterAmp scales every sound.
	MasterAmp float64 `json:"master_amp"`
	// FrameDuration is the simulation time of one Step.
	FrameDuration Duration `json:"frame_duration"`
	// Impacts of the same object closer together than this are dropped.
	MinTimeBetweenImpacts Duration `json:"min_time_between_impacts"`

	// Impact intensity that plays at full object amp, and the cap on
	// intensity relative to it.
	ReferenceSpeed    float64 `json:"reference_speed"`
	MaxIntensityGain  float64 `json:"max_intensity_gain"`
	PreventDistortion bool    `json:"prevent_distortion"`

	MaxScrapeSpeed float64 `json:"max_scrape_speed"`

	// Seed drives impact variation and scrape grain jitter.
	Seed      uint64 `json:"seed"`
	Variation bool   `json:"variation"`

	LogLevel string `json:"log_level"`

	Thresholds    classify.Thresholds `json:"thresholds"`
	Environment   material.Profile    `json:"environment"`
	DefaultObject material.Profile    `json:"default_object"`
}

func Default() Config {
	return Config{
		SampleRate:            44100,
		MasterAmp:             0.5,
		FrameDuration:         Duration(100 * time.Millisecond),
		MinTimeBetweenImpacts: Duration(50 * time.Millisecond),
		ReferenceSpeed:        1,
		MaxIntensityGain:      2,
		PreventDistortion:     true,
		MaxScrapeSpeed:        5,
		LogLevel:              "warn",
		Thresholds:            classify.DefaultThresholds(),
		Environment:           material.Environment(),
		DefaultObject:         material.DefaultObject(),
	}
}

func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	case c.MasterAmp < 0 || c.MasterAmp > 1:
		return fmt.Errorf("%w: master amp %v out of [0,1]", ErrInvalidConfig, c.MasterAmp)
	case c.FrameDuration <= 0:
		return fmt.Errorf("%w: frame duration %v", ErrInvalidConfig, c.FrameDuration)
	case c.MinTimeBetweenImpacts < 0:
		return fmt.Errorf("%w: negative time between impacts", ErrInvalidConfig)
	case c.ReferenceSpeed <= 0 || c.MaxIntensityGain <= 0:
		return fmt.Errorf("%w: reference speed and intensity gain must be positive", ErrInvalidConfig)
	case c.MaxScrapeSpeed <= 0:
		return fmt.Errorf("%w: max scrape speed %v", ErrInvalidConfig, c.MaxScrapeSpeed)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Environment.Validate(); err != nil {
		return fmt.Errorf("%w: environment: %w", ErrInvalidConfig, err)
	}
	if c.Environment.ScrapeMaterial == nil {
		return fmt.Errorf("%w: environment has no scrape material", ErrInvalidConfig)
	}
	if err := c.DefaultObject.Validate(); err != nil {
		return fmt.Errorf("%w: default object: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Load reads JSON from r over the defaults: fields missing from the input
// keep their default value. The result is validated.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
