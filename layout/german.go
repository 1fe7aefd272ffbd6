package layout

import "github.com/splitkey/splitkey/keycode"

func init() {
	Register("de", german)
}

// german is the German T1 layout (DIN 2137). Glyphs are the unshifted
// characters; keycode.Resolve upper-cases them for display, except ß, which
// has no single-character uppercase form. Backspace has no glyph and is
// intentionally absent.
var german = Table{
	keycode.Backquote:     "^",
	keycode.Digit1:        "1",
	keycode.Digit2:        "2",
	keycode.Digit3:        "3",
	keycode.Digit4:        "4",
	keycode.Digit5:        "5",
	keycode.Digit6:        "6",
	keycode.Digit7:        "7",
	keycode.Digit8:        "8",
	keycode.Digit9:        "9",
	keycode.Digit0:        "0",
	keycode.Minus:         "ß",
	keycode.Equal:         "´",
	keycode.KeyQ:          "q",
	keycode.KeyW:          "w",
	keycode.KeyE:          "e",
	keycode.KeyR:          "r",
	keycode.KeyT:          "t",
	keycode.KeyY:          "z",
	keycode.KeyU:          "u",
	keycode.KeyI:          "i",
	keycode.KeyO:          "o",
	keycode.KeyP:          "p",
	keycode.BracketLeft:   "ü",
	keycode.BracketRight:  "+",
	keycode.KeyA:          "a",
	keycode.KeyS:          "s",
	keycode.KeyD:          "d",
	keycode.KeyF:          "f",
	keycode.KeyG:          "g",
	keycode.KeyH:          "h",
	keycode.KeyJ:          "j",
	keycode.KeyK:          "k",
	keycode.KeyL:          "l",
	keycode.Semicolon:     "ö",
	keycode.Quote:         "ä",
	keycode.Backslash:     "#",
	keycode.IntlBackslash: "<",
	keycode.KeyZ:          "y",
	keycode.KeyX:          "x",
	keycode.KeyC:          "c",
	keycode.KeyV:          "v",
	keycode.KeyB:          "b",
	keycode.KeyN:          "n",
	keycode.KeyM:          "m",
	keycode.Comma:         ",",
	keycode.Period:        ".",
	keycode.Slash:         "-",
}
