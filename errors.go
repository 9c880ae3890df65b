// SPDX-License-Identifier: EPL-2.0

package physaudio

import "errors"

var (
	// ErrClosed is returned by calls on an engine after Close.
	ErrClosed = errors.New("engine closed")
)
