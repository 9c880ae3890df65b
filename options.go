// SPDX-License-Identifier: EPL-2.0

package physaudio

import (
	"maps"

	"github.com/ik5/physaudio/material"
	"github.com/sirupsen/logrus"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger of the engine and its synthesizers. The
// default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithRegistry replaces material.Default().
func WithRegistry(reg *material.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.reg = reg
		}
	}
}

// WithProfiles sets the profiles of several objects at once. They are
// validated by New.
func WithProfiles(profiles map[int]material.Profile) Option {
	return func(e *Engine) {
		maps.Copy(e.profiles, profiles)
	}
}
