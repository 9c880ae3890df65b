// SPDX-License-Identifier: EPL-2.0

package classify

import "errors"

var (
	ErrUnknownKind       = errors.New("unknown collision kind")
	ErrInvalidThresholds = errors.New("invalid classifier thresholds")
)
