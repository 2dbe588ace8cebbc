package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/shapes"
	"github.com/vovakirdan/blockfall/internal/storage"
)

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, shapes.DefaultCatalog(), false))
	out := buf.String()

	assert.Contains(t, out, "I  cyan\n  ####\n")
	assert.Contains(t, out, "O  yellow\n  ##\n  ##\n")
	assert.Contains(t, out, "Z  red\n")
	for _, k := range shapes.Kinds() {
		assert.Contains(t, out, k.String()+"  ")
	}
}

func TestPrintCatalogRotations(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printCatalog(&buf, shapes.DefaultCatalog(), true))

	// I piece: horizontal, vertical, horizontal, vertical
	assert.Contains(t, buf.String(), "I  cyan\n  ####   #   ####   #\n")
}

func TestSideBySidePadsShortViews(t *testing.T) {
	i, err := shapes.DefaultCatalog().Shape(shapes.I)
	require.NoError(t, err)

	out := sideBySide([]shapes.Matrix{i, i.RotateCW()})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "  ####   #", lines[0])
	assert.Equal(t, "         #", lines[1])
}

func TestGameArgDefaultsToBlockfall(t *testing.T) {
	assert.Equal(t, "blockfall", gameArg(nil))
	assert.Equal(t, "other", gameArg([]string{"other"}))
	assert.True(t, registry.Exists(gameArg(nil)))
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	t.Cleanup(func() { configCmd.SetOut(nil) })

	flagConfig = ""
	flagDifficulty = "hard"
	t.Cleanup(func() { flagDifficulty = "" })

	require.NoError(t, runConfig(configCmd, nil))
	out := buf.String()
	assert.Contains(t, out, "cols: 10")
	assert.Contains(t, out, "show_next_piece: false")
}

func TestSavedSummary(t *testing.T) {
	got := savedSummary(&storage.ScoreEntry{RunID: "abc", Score: 420, Lines: 5, Level: 1})
	assert.Equal(t, "Saved 420 points, 5 lines, level 1 (run abc)", got)
}
