package keycode

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by Parse when the input matches neither a
// canonical code name nor a registered alias.
var ErrUnknownKey = errors.New("unknown key name")

// Parse returns the code whose canonical name or accepted alias exactly
// matches s. Matching is case-sensitive and applies no trimming or folding;
// anything else fails with ErrUnknownKey. Parsing is tolerant (many
// spellings map to one code) but serialization always emits the canonical
// name, so Name(Parse(x)) is stable even when x is an alias.
func Parse(s string) (Code, error) {
	if c, ok := byName[s]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// aliases lists the accepted non-canonical spellings. Letter and digit keys
// take their single-character shorthand. MetaLeft/MetaRight were spelled
// OSLeft/OSRight in all Firefox versions, Chrome before 52, and the Safari
// GTK and WPE ports. The audio volume keys were spelled Volume* in older
// engines. Safari GTK and WPE spell MediaSelect as LaunchMediaPlayer.
// Aliases are accepted on input only and never emitted.
var aliases = map[string]Code{
	"0": Digit0,
	"1": Digit1,
	"2": Digit2,
	"3": Digit3,
	"4": Digit4,
	"5": Digit5,
	"6": Digit6,
	"7": Digit7,
	"8": Digit8,
	"9": Digit9,

	"A": KeyA,
	"B": KeyB,
	"C": KeyC,
	"D": KeyD,
	"E": KeyE,
	"F": KeyF,
	"G": KeyG,
	"H": KeyH,
	"I": KeyI,
	"J": KeyJ,
	"K": KeyK,
	"L": KeyL,
	"M": KeyM,
	"N": KeyN,
	"O": KeyO,
	"P": KeyP,
	"Q": KeyQ,
	"R": KeyR,
	"S": KeyS,
	"T": KeyT,
	"U": KeyU,
	"V": KeyV,
	"W": KeyW,
	"X": KeyX,
	"Y": KeyY,
	"Z": KeyZ,

	"OSLeft":  MetaLeft,
	"OSRight": MetaRight,

	"VolumeDown": AudioVolumeDown,
	"VolumeMute": AudioVolumeMute,
	"VolumeUp":   AudioVolumeUp,

	"LaunchMediaPlayer": MediaSelect,
}

var byName map[string]Code

func init() {
	byName = make(map[string]Code, int(numCodes)+len(aliases))
	for c := range All() {
		byName[c.Name()] = c
	}
	for alias, c := range aliases {
		if _, dup := byName[alias]; dup {
			panic("keycode: alias collides with another key name: " + alias)
		}
		byName[alias] = c
	}
}
