package keycode_test

import (
	"encoding/json"
	"testing"

	"github.com/splitkey/splitkey/keycode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCodes() []keycode.Code {
	var codes []keycode.Code
	for c := range keycode.All() {
		codes = append(codes, c)
	}
	return codes
}

func TestTotality(t *testing.T) {
	codes := allCodes()
	require.Len(t, codes, 214)

	for _, c := range codes {
		assert.True(t, c.IsValid(), "%d", uint8(c))
		assert.NotEmpty(t, c.Name(), "code %d has no name", uint8(c))
		assert.NotEmpty(t, c.Label(), "%s has no label", c.Name())
		assert.Less(t, uint8(c.Class()), uint8(10), "%s has no class", c.Name())
	}
}

func TestPartition(t *testing.T) {
	// Exact member count per class. Pinning the counts means a code that
	// silently fell into the zero class would be caught here.
	want := map[keycode.Class]int{
		keycode.WritingSystem: 51,
		keycode.Functional:    21,
		keycode.ControlPad:    7,
		keycode.ArrowPad:      4,
		keycode.Numpad:        31,
		keycode.Function:      30,
		keycode.Media:         22,
		keycode.Legacy:        9,
		keycode.Gamepad:       20,
		keycode.NonStandard:   19,
	}

	got := make(map[keycode.Class]int)
	total := 0
	for c := range keycode.All() {
		got[c.Class()]++
		total++
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 214, total)
}

func TestNameRoundTrip(t *testing.T) {
	for c := range keycode.All() {
		parsed, err := keycode.Parse(c.Name())
		require.NoError(t, err, c.Name())
		assert.Equal(t, c, parsed)
	}
}

func TestNameUniqueness(t *testing.T) {
	seen := make(map[string]keycode.Code)
	for c := range keycode.All() {
		prev, dup := seen[c.Name()]
		require.False(t, dup, "%s used by both %d and %d", c.Name(), uint8(prev), uint8(c))
		seen[c.Name()] = c
	}
}

func TestParseAliases(t *testing.T) {
	tests := []struct {
		in   string
		want keycode.Code
	}{
		{"0", keycode.Digit0},
		{"7", keycode.Digit7},
		{"A", keycode.KeyA},
		{"Z", keycode.KeyZ},
		{"OSLeft", keycode.MetaLeft},
		{"OSRight", keycode.MetaRight},
		{"VolumeUp", keycode.AudioVolumeUp},
		{"VolumeDown", keycode.AudioVolumeDown},
		{"VolumeMute", keycode.AudioVolumeMute},
		{"LaunchMediaPlayer", keycode.MediaSelect},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := keycode.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, in := range []string{
		"NotARealKey",
		"",
		"keya",      // no case folding
		" KeyA",     // no trimming
		"a",         // shorthand is uppercase only
		"Meta Left", // labels are not names
	} {
		_, err := keycode.Parse(in)
		assert.ErrorIs(t, err, keycode.ErrUnknownKey, "input %q", in)
	}
}

func TestParseEmitsCanonicalOnly(t *testing.T) {
	// Aliases are accepted on input but the canonical spelling comes back.
	c, err := keycode.Parse("VolumeUp")
	require.NoError(t, err)
	assert.Equal(t, "AudioVolumeUp", c.Name())
}

func TestClassExamples(t *testing.T) {
	tests := []struct {
		code keycode.Code
		want keycode.Class
	}{
		{keycode.KeyA, keycode.WritingSystem},
		{keycode.Backspace, keycode.WritingSystem},
		{keycode.MetaLeft, keycode.Functional},
		{keycode.Lang3, keycode.Functional},
		{keycode.Help, keycode.ControlPad},
		{keycode.ArrowUp, keycode.ArrowPad},
		{keycode.NumpadMemoryStore, keycode.Numpad},
		{keycode.F5, keycode.Function},
		{keycode.AudioVolumeMute, keycode.Media},
		{keycode.Undo, keycode.Legacy},
		{keycode.Gamepad10, keycode.Gamepad},
		{keycode.ZoomToggle, keycode.NonStandard},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.Class(), tt.code.Name())
	}
}

func TestLabelExamples(t *testing.T) {
	assert.Equal(t, "`", keycode.Backquote.Label())
	assert.Equal(t, "↑", keycode.ArrowUp.Label())
	assert.Equal(t, "Numpad +", keycode.NumpadAdd.Label())
	assert.Equal(t, "🔊", keycode.AudioVolumeUp.Label())
	assert.Equal(t, "半角/全角/漢字", keycode.Lang5.Label())
}

func TestInvalidCode(t *testing.T) {
	bad := keycode.Code(255)
	assert.False(t, bad.IsValid())
	assert.Empty(t, bad.Name())
	assert.Equal(t, "keycode.Code(255)", bad.String())

	_, err := bad.MarshalText()
	assert.Error(t, err)
}

func TestTextMarshaling(t *testing.T) {
	type binding struct {
		Split keycode.Code `json:"split"`
	}

	out, err := json.Marshal(binding{Split: keycode.Numpad1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"split":"Numpad1"}`, string(out))

	var in binding
	require.NoError(t, json.Unmarshal([]byte(`{"split":"OSLeft"}`), &in))
	assert.Equal(t, keycode.MetaLeft, in.Split)

	err = json.Unmarshal([]byte(`{"split":"NotARealKey"}`), &in)
	assert.ErrorIs(t, err, keycode.ErrUnknownKey)
}
