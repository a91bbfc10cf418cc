package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownRule is returned when a rule name is neither registered nor
	// valid B/S notation.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrBadRule is returned for malformed B/S notation.
	ErrBadRule = errors.New("malformed rule")
)

// Rule is an outer-totalistic rule over the Moore neighbourhood. Birth[n]
// reports whether a dead cell with n live neighbours comes alive;
// Survive[n] whether a live cell with n live neighbours stays alive.
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

// Conway is B3/S23: a live cell with fewer than two live neighbours dies, with
// two or three it lives on, with more than three it dies; a dead cell with
// exactly three comes alive; anything else is unchanged.
var Conway = MustParseRule("B3/S23")

// Next returns the state of a cell after one generation.
func (r Rule) Next(alive bool, liveNeighbors int) bool {
	if alive {
		return r.Survive[liveNeighbors]
	}
	return r.Birth[liveNeighbors]
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

// ParseRule parses B/S notation such as "B3/S23" or "s23/b36".
func ParseRule(s string) (Rule, error) {
	var r Rule
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return r, fmt.Errorf("%w: %q", ErrBadRule, s)
	}
	var sawB, sawS bool
	for _, part := range parts {
		if part == "" {
			return r, fmt.Errorf("%w: %q", ErrBadRule, s)
		}
		var table *[9]bool
		switch part[0] {
		case 'B', 'b':
			if sawB {
				return r, fmt.Errorf("%w: %q has two birth lists", ErrBadRule, s)
			}
			sawB, table = true, &r.Birth
		case 'S', 's':
			if sawS {
				return r, fmt.Errorf("%w: %q has two survival lists", ErrBadRule, s)
			}
			sawS, table = true, &r.Survive
		default:
			return r, fmt.Errorf("%w: %q", ErrBadRule, s)
		}
		for _, c := range part[1:] {
			if c < '0' || c > '8' {
				return r, fmt.Errorf("%w: %q has neighbour count %q", ErrBadRule, s, c)
			}
			table[c-'0'] = true
		}
	}
	return r, nil
}

// MustParseRule is ParseRule that panics on error.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

var rules = map[string]Rule{}

// Register adds a named rule to the registry.
func Register(name string, r Rule) {
	if name == "" {
		return
	}
	rules[strings.ToLower(name)] = r
}

// Rules exposes the registry of named rules.
func Rules() map[string]Rule {
	return rules
}

// RuleNames returns the registered names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupRule resolves a registered name, falling back to B/S notation.
func LookupRule(name string) (Rule, error) {
	if r, ok := rules[strings.ToLower(name)]; ok {
		return r, nil
	}
	r, err := ParseRule(name)
	if err != nil {
		return Rule{}, fmt.Errorf("%w %q", ErrUnknownRule, name)
	}
	return r, nil
}

func init() {
	Register("conway", Conway)
	Register("highlife", MustParseRule("B36/S23"))
	Register("seeds", MustParseRule("B2/S"))
	Register("daynight", MustParseRule("B3678/S34678"))
}
