// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings of an engine: output format, gains,
// classifier thresholds and the fallback profiles.
//
// Settings come from Default, optionally overridden by a JSON file and then
// by PHYSAUDIO_* environment variables:
//
//	cfg, err := config.LoadFile("physaudio.json")
//	if err != nil {
//	    return err
//	}
//	cfg, err = config.FromEnv(cfg)
package config
