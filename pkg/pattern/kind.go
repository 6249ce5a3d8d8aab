/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: kind.go
Description: Character class kinds for run patterns. Defines the closed Kind enum
and the total combination rule used when two runs are aligned at the same position.
*/

package pattern

import (
	"encoding/json"
	"fmt"
)

// Kind is the character class a run matches
type Kind int

const (
	// KindNone only exists while aligning sequences of unequal length
	KindNone Kind = iota
	KindLetter
	KindDigit
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindLetter:
		return "letter"
	case KindDigit:
		return "digit"
	case KindNone:
		return "none"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Matches reports whether r belongs to the kind's class
func (k Kind) Matches(r rune) bool {
	switch k {
	case KindLetter:
		return r >= 'A' && r <= 'Z'
	case KindDigit:
		return r >= '0' && r <= '9'
	default:
		return false
	}
}

// MarshalJSON encodes the kind by name
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind name
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	if parsed == KindNone {
		// the padding sentinel never appears in a finished sequence
		return fmt.Errorf("run kind %q cannot be decoded", name)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes the kind by name
func (k Kind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// ParseKind converts a kind name back into a Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "letter":
		return KindLetter, nil
	case "digit":
		return KindDigit, nil
	case "none":
		return KindNone, nil
	default:
		return KindNone, fmt.Errorf("unknown run kind: %q", name)
	}
}

// CombineKinds merges the kinds of two aligned runs.
// None yields the other operand; two different real kinds conflict.
func CombineKinds(a, b Kind) (Kind, error) {
	switch {
	case a == KindNone:
		return b, nil
	case b == KindNone, a == b:
		return a, nil
	default:
		return KindNone, ErrFormatConflict
	}
}
