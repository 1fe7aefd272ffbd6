package keycode_test

import (
	"testing"

	"github.com/splitkey/splitkey/keycode"

	"github.com/stretchr/testify/assert"
)

func TestResolveFallsBackWithoutSource(t *testing.T) {
	for c := range keycode.All() {
		assert.Equal(t, c.Label(), c.Resolve(nil), c.Name())
	}
}

func TestResolveFallsBackOnEmptySource(t *testing.T) {
	empty := keycode.SourceFunc(func(keycode.Code) (string, bool) { return "", false })
	assert.Equal(t, "A", keycode.KeyA.Resolve(empty))
	assert.Equal(t, "`", keycode.Backquote.Resolve(empty))
}

func TestResolveUppercasesGlyph(t *testing.T) {
	src := keycode.SourceFunc(func(c keycode.Code) (string, bool) {
		switch c {
		case keycode.KeyZ:
			return "y", true // German layout swaps Y and Z
		case keycode.Semicolon:
			return "ö", true
		}
		return "", false
	})
	assert.Equal(t, "Y", keycode.KeyZ.Resolve(src))
	assert.Equal(t, "Ö", keycode.Semicolon.Resolve(src))
	// No mapping reported for this key, baseline wins.
	assert.Equal(t, "A", keycode.KeyA.Resolve(src))
}

func TestResolveKeepsSharpS(t *testing.T) {
	src := keycode.SourceFunc(func(c keycode.Code) (string, bool) {
		if c == keycode.Minus {
			return "ß", true
		}
		return "", false
	})
	// strings.ToUpper would turn ß into SS, which is not the key pressed.
	assert.Equal(t, "ß", keycode.Minus.Resolve(src))
}

func TestResolveIgnoresSourceOutsideWritingSystem(t *testing.T) {
	calls := 0
	src := keycode.SourceFunc(func(keycode.Code) (string, bool) {
		calls++
		return "x", true
	})
	for c := range keycode.All() {
		if c.Class() == keycode.WritingSystem {
			continue
		}
		assert.Equal(t, c.Label(), c.Resolve(src), c.Name())
	}
	assert.Zero(t, calls, "layout source consulted for a non-writing-system key")
}
