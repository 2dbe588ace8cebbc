// Package shapes is the tetromino catalog: the seven piece kinds, their
// canonical spawn matrices and their display colors.
//
// Everything in this package is immutable once built. Matrices hand out
// copies, and a Catalog never changes after NewCatalog returns.
package shapes

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the seven tetrominoes.
type Kind uint8

// The closed set of piece kinds, in canonical order.
const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z

	kindCount = iota
)

var kindLetters = [kindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

// Kinds returns all piece kinds in canonical order.
func Kinds() []Kind {
	return []Kind{I, J, L, O, S, T, Z}
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the kind's letter, or "Kind(n)" for an invalid value.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindLetters[k]
}

// ErrUnknownKind is matched by every UnknownKindError.
var ErrUnknownKind = errors.New("shapes: unknown piece kind")

// UnknownKindError reports a lookup for a value outside the kind set.
type UnknownKindError struct {
	Value string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("shapes: unknown piece kind %q", e.Value)
}

// Is lets errors.Is match ErrUnknownKind.
func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// ParseKind converts a letter such as "T" (case-insensitive) into a Kind.
func ParseKind(s string) (Kind, error) {
	letter := strings.ToUpper(strings.TrimSpace(s))
	for i, l := range kindLetters {
		if l == letter {
			return Kind(i), nil
		}
	}
	return 0, &UnknownKindError{Value: s}
}
