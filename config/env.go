// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvSampleRate     = "PHYSAUDIO_SAMPLE_RATE"
	EnvMasterAmp      = "PHYSAUDIO_MASTER_AMP"
	EnvFrameDuration  = "PHYSAUDIO_FRAME_DURATION"
	EnvSeed           = "PHYSAUDIO_SEED"
	EnvVariation      = "PHYSAUDIO_VARIATION"
	EnvLogLevel       = "PHYSAUDIO_LOG_LEVEL"
	EnvMaxScrapeSpeed = "PHYSAUDIO_MAX_SCRAPE_SPEED"
	EnvImpactSpeed    = "PHYSAUDIO_IMPACT_SPEED"
)

// FromEnv returns cfg with the PHYSAUDIO_* variables that are set applied
// on top. Unparsable values are reported together and leave their field
// unchanged; the result is not validated.
func FromEnv(cfg Config) (Config, error) {
	var errs []error
	bad := func(name, val string, err error) {
		errs = append(errs, fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, name, val, err))
	}

	if v := os.Getenv(EnvSampleRate); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SampleRate = n
		} else {
			bad(EnvSampleRate, v, err)
		}
	}

	if v := os.Getenv(EnvMasterAmp); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MasterAmp = f
		} else {
			bad(EnvMasterAmp, v, err)
		}
	}

	if v := os.Getenv(EnvFrameDuration); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FrameDuration = Duration(d)
		} else {
			bad(EnvFrameDuration, v, err)
		}
	}

	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		} else {
			bad(EnvSeed, v, err)
		}
	}

	if v := os.Getenv(EnvVariation); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Variation = b
		} else {
			bad(EnvVariation, v, err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv(EnvMaxScrapeSpeed); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.MaxScrapeSpeed = f
		} else {
			bad(EnvMaxScrapeSpeed, v, err)
		}
	}

	if v := os.Getenv(EnvImpactSpeed); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Thresholds.ImpactSpeed = f
		} else {
			bad(EnvImpactSpeed, v, err)
		}
	}

	return cfg, errors.Join(errs...)
}
