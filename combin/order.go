// SPDX-License-Identifier: MIT
// Package: splex/combin
//
// order.go — ranking order tag.

package combin

import (
	"fmt"
	"strings"
)

// Order selects the ranking bijection. The zero value is Colex.
type Order uint8

const (
	// Colex ranks by the colexicographic order; it does not need n.
	Colex Order = iota
	// Lex ranks by the lexicographic order over a universe of size n.
	Lex
)

// String returns the canonical tag of o.
func (o Order) String() string {
	switch o {
	case Colex:
		return "colex"
	case Lex:
		return "lex"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder maps a textual tag to an Order. Matching is case-insensitive;
// "colexicographic" and "lexicographic" are accepted as long forms.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "colex", "colexicographic":
		return Colex, nil
	case "lex", "lexicographic":
		return Lex, nil
	}

	return 0, fmt.Errorf("ParseOrder(%q): %w", s, ErrUnknownOrder)
}
