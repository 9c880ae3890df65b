// SPDX-License-Identifier: EPL-2.0

package scrape

import "errors"

// ErrUntrackedStream is logged when a stream that was ended, or replaced
// by a newer Begin for its pair, is used again.
var ErrUntrackedStream = errors.New("untracked scrape stream")
