package shapes

import (
	"errors"
	"fmt"
)

// Palette assigns a color name to each piece kind.
type Palette map[Kind]string

// DefaultPalette returns the standard piece colors.
func DefaultPalette() Palette {
	return Palette{
		I: "cyan",
		J: "blue",
		L: "orange",
		O: "yellow",
		S: "green",
		T: "purple",
		Z: "red",
	}
}

// Validate checks that every kind has exactly one non-empty color and that
// no key lies outside the kind set.
func (p Palette) Validate() error {
	for k := range p {
		if !k.Valid() {
			return &UnknownKindError{Value: k.String()}
		}
	}
	for _, k := range Kinds() {
		color, ok := p[k]
		if !ok {
			return fmt.Errorf("shapes: palette has no color for %s", k)
		}
		if color == "" {
			return fmt.Errorf("shapes: palette color for %s is empty", k)
		}
	}
	return nil
}

// baseShapes are the spawn orientations.
var baseShapes = [kindCount]Matrix{
	I: mustMatrix([][]int{{1, 1, 1, 1}}),
	J: mustMatrix([][]int{{1, 0, 0}, {1, 1, 1}}),
	L: mustMatrix([][]int{{0, 0, 1}, {1, 1, 1}}),
	O: mustMatrix([][]int{{1, 1}, {1, 1}}),
	S: mustMatrix([][]int{{0, 1, 1}, {1, 1, 0}}),
	T: mustMatrix([][]int{{0, 1, 0}, {1, 1, 1}}),
	Z: mustMatrix([][]int{{1, 1, 0}, {0, 1, 1}}),
}

// ErrNoColor is returned by a Catalog that was not built by NewCatalog.
var ErrNoColor = errors.New("shapes: catalog has no colors")

// Catalog is a read-only lookup from kind to spawn matrix and color.
// Build it with NewCatalog or DefaultCatalog.
type Catalog struct {
	colors [kindCount]string
}

// NewCatalog builds a catalog with the given palette.
func NewCatalog(p Palette) (*Catalog, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := &Catalog{}
	for _, k := range Kinds() {
		c.colors[k] = p[k]
	}
	return c, nil
}

// DefaultCatalog returns a catalog using DefaultPalette.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultPalette())
	if err != nil {
		panic(err)
	}
	return c
}

// Shape returns the spawn orientation for kind.
func (c *Catalog) Shape(kind Kind) (Matrix, error) {
	if !kind.Valid() {
		return Matrix{}, &UnknownKindError{Value: kind.String()}
	}
	return baseShapes[kind], nil
}

// Color returns the color name for kind.
func (c *Catalog) Color(kind Kind) (string, error) {
	if !kind.Valid() {
		return "", &UnknownKindError{Value: kind.String()}
	}
	if c.colors[kind] == "" {
		return "", fmt.Errorf("%w: %s", ErrNoColor, kind)
	}
	return c.colors[kind], nil
}

// Palette returns a copy of the catalog's colors.
func (c *Catalog) Palette() Palette {
	p := make(Palette, kindCount)
	for _, k := range Kinds() {
		p[k] = c.colors[k]
	}
	return p
}
