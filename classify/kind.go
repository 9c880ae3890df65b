// SPDX-License-Identifier: EPL-2.0

package classify

import (
	"fmt"
	"strings"
)

// Kind is the audible type of a contact in one frame.
type Kind int

const (
	None Kind = iota
	Impact
	Scrape
	Roll
)

var kindNames = [...]string{"none", "impact", "scrape", "roll"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
