package shapes_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/shapes"
)

func TestEveryKindHasRectangularShape(t *testing.T) {
	c := shapes.DefaultCatalog()

	for _, k := range shapes.Kinds() {
		m, err := c.Shape(k)
		require.NoError(t, err, k.String())

		cells := m.Cells()
		require.NotEmpty(t, cells, k.String())
		for _, row := range cells {
			assert.Len(t, row, m.Cols(), "kind %s is not rectangular", k)
		}
		assert.Equal(t, 4, m.Count(), "kind %s should be a tetromino", k)
	}
}

func TestConcreteShapes(t *testing.T) {
	c := shapes.DefaultCatalog()

	o, err := c.Shape(shapes.O)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1}, {1, 1}}, o.Cells())

	i, err := c.Shape(shapes.I)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1, 1, 1}}, i.Cells())

	tk, err := c.Shape(shapes.T)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 0}, {1, 1, 1}}, tk.Cells())
}

func TestColors(t *testing.T) {
	c := shapes.DefaultCatalog()

	z, err := c.Color(shapes.Z)
	require.NoError(t, err)
	assert.Equal(t, "red", z)

	seen := map[string]shapes.Kind{}
	for _, k := range shapes.Kinds() {
		color, err := c.Color(k)
		require.NoError(t, err)
		assert.NotEmpty(t, color)
		if prev, dup := seen[color]; dup {
			t.Errorf("kinds %s and %s share color %q", prev, k, color)
		}
		seen[color] = k
	}
	assert.Len(t, seen, 7)
}

func TestUnknownKind(t *testing.T) {
	c := shapes.DefaultCatalog()
	bad := shapes.Kind(42)

	_, err := c.Shape(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shapes.ErrUnknownKind))

	var uk *shapes.UnknownKindError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "Kind(42)", uk.Value)

	_, err = c.Color(bad)
	assert.ErrorIs(t, err, shapes.ErrUnknownKind)
}

func TestZeroCatalogHasNoColors(t *testing.T) {
	var c shapes.Catalog

	_, err := c.Color(shapes.T)
	assert.ErrorIs(t, err, shapes.ErrNoColor)
	assert.Contains(t, err.Error(), "T")

	m, err := c.Shape(shapes.T)
	require.NoError(t, err, "shapes need no palette")
	assert.Equal(t, 4, m.Count())
}

func TestParseKind(t *testing.T) {
	k, err := shapes.ParseKind("t")
	require.NoError(t, err)
	assert.Equal(t, shapes.T, k)

	_, err = shapes.ParseKind("Q")
	assert.ErrorIs(t, err, shapes.ErrUnknownKind)
}

func TestShapeIsNotMutatedThroughCells(t *testing.T) {
	c := shapes.DefaultCatalog()

	m, err := c.Shape(shapes.S)
	require.NoError(t, err)
	cells := m.Cells()
	cells[0][0] = 1

	again, err := c.Shape(shapes.S)
	require.NoError(t, err)
	assert.False(t, again.Filled(0, 0))
}

func TestNewCatalogRejectsPartialPalette(t *testing.T) {
	p := shapes.DefaultPalette()
	delete(p, shapes.L)
	_, err := shapes.NewCatalog(p)
	assert.Error(t, err)

	p = shapes.DefaultPalette()
	p[shapes.O] = ""
	_, err = shapes.NewCatalog(p)
	assert.Error(t, err)

	p = shapes.DefaultPalette()
	p[shapes.Kind(9)] = "pink"
	_, err = shapes.NewCatalog(p)
	assert.ErrorIs(t, err, shapes.ErrUnknownKind)
}

func TestCustomPalette(t *testing.T) {
	p := shapes.DefaultPalette()
	p[shapes.Z] = "magenta"
	c, err := shapes.NewCatalog(p)
	require.NoError(t, err)

	color, err := c.Color(shapes.Z)
	require.NoError(t, err)
	assert.Equal(t, "magenta", color)
	assert.Equal(t, p, c.Palette())
}
