package layout_test

import (
	"testing"

	"github.com/splitkey/splitkey/keycode"
	"github.com/splitkey/splitkey/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	de, ok := layout.Named("de")
	require.True(t, ok, "built-in German layout missing")
	assert.NotEmpty(t, de)

	_, ok = layout.Named("xx")
	assert.False(t, ok)

	assert.Contains(t, layout.Names(), "de")

	assert.Panics(t, func() { layout.Register("de", layout.Table{}) })
}

func TestGermanResolution(t *testing.T) {
	de, ok := layout.Named("de")
	require.True(t, ok)

	tests := []struct {
		code keycode.Code
		want string
	}{
		{keycode.KeyY, "Z"},
		{keycode.KeyZ, "Y"},
		{keycode.Semicolon, "Ö"},
		{keycode.BracketLeft, "Ü"},
		{keycode.Minus, "ß"}, // never upper-cased to SS
		{keycode.Slash, "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.Resolve(de), tt.code.Name())
	}

	// No glyph registered for Backspace: baseline label wins.
	assert.Equal(t, keycode.Backspace.Label(), keycode.Backspace.Resolve(de))
}

func TestGermanCoversOnlyWritingSystemKeys(t *testing.T) {
	de, ok := layout.Named("de")
	require.True(t, ok)

	for c := range de {
		assert.Equal(t, keycode.WritingSystem, c.Class(), c.Name())
	}
}
