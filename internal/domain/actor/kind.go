package actor

import (
	"errors"
	"fmt"
)

// Kind names a regular actor variant as it appears in level data
type Kind string

const (
	KindGround  Kind = "ground"
	KindJumping Kind = "jumping"
	KindFlying  Kind = "flying"
	KindSlow    Kind = "slow"
)

// ErrUnknownKind is returned for an actor kind with no behavior
var ErrUnknownKind = errors.New("unknown actor kind")

// Kinds returns every known kind in spawn order
func Kinds() []Kind {
	return []Kind{KindGround, KindJumping, KindFlying, KindSlow}
}

// ParseKind validates s as a Kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindGround, KindJumping, KindFlying, KindSlow:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
