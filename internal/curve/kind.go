package curve

import (
	"fmt"
	"strings"
)

// Kind identifies a distribution family. The zero value means no choice.
type Kind int

const (
	Unset Kind = iota
	Normal
	Gamma
	GEV
)

// Kinds lists the selectable families in display order.
var Kinds = []Kind{Normal, Gamma, GEV}

func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Gamma:
		return "gamma"
	case GEV:
		return "gev"
	default:
		return "unset"
	}
}

// Label is the human-facing name of the family.
func (k Kind) Label() string {
	switch k {
	case Normal:
		return "Normal"
	case Gamma:
		return "Gamma"
	case GEV:
		return "GEV"
	default:
		return "---"
	}
}

// Valid reports whether k is one of the selectable families.
func (k Kind) Valid() bool {
	return k >= Normal && k <= GEV
}

// ParseKind maps a name such as "gamma" or "GEV" to its Kind.
// The empty string and "unset" parse to Unset.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset", "none":
		return Unset, nil
	case "normal":
		return Normal, nil
	case "gamma":
		return Gamma, nil
	case "gev":
		return GEV, nil
	}
	return Unset, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ParseKinds parses a comma separated list, e.g. "normal,gamma,gev".
func ParseKinds(s string) ([]Kind, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	kinds := make([]Kind, 0, len(parts))
	for _, p := range parts {
		k, err := ParseKind(p)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
