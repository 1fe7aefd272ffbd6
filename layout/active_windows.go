//go:build windows

package layout

import (
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/splitkey/splitkey/keycode"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
	procMapVirtualKeyExW  = user32.NewProc("MapVirtualKeyExW")
	procToUnicodeEx       = user32.NewProc("ToUnicodeEx")
)

const mapvkVscToVkEx = 3

// Active returns a source backed by the current system keyboard layout.
// Lookups are answered via MapVirtualKeyExW and ToUnicodeEx; keys the
// layout has no printable character for, and dead keys, report no mapping.
// The query reads the layout of the calling thread's foreground context, so
// callers with UI-thread affinity requirements own that constraint.
func Active() keycode.Source {
	return systemSource{}
}

type systemSource struct{}

func (systemSource) Lookup(c keycode.Code) (string, bool) {
	scan, ok := scanCodes[c]
	if !ok {
		return "", false
	}

	hkl, _, _ := procGetKeyboardLayout.Call(0)
	vk, _, _ := procMapVirtualKeyExW.Call(uintptr(scan), mapvkVscToVkEx, hkl)
	if vk == 0 {
		return "", false
	}

	var state [256]byte
	var buf [8]uint16
	// Bit 2 keeps the call from mutating the kernel's dead-key state.
	n, _, _ := procToUnicodeEx.Call(
		vk,
		uintptr(scan),
		uintptr(unsafe.Pointer(&state[0])),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		1<<2,
		hkl,
	)
	// Negative return means a dead key; zero means no translation.
	if int(n) <= 0 {
		return "", false
	}
	return string(utf16.Decode(buf[:int(n)])), true
}

// scanCodes maps the writing-system key positions to their Windows scan
// codes (Set 1). Only these keys ever consult the layout.
var scanCodes = map[keycode.Code]uint32{
	keycode.Backquote:     0x29,
	keycode.Digit1:        0x02,
	keycode.Digit2:        0x03,
	keycode.Digit3:        0x04,
	keycode.Digit4:        0x05,
	keycode.Digit5:        0x06,
	keycode.Digit6:        0x07,
	keycode.Digit7:        0x08,
	keycode.Digit8:        0x09,
	keycode.Digit9:        0x0A,
	keycode.Digit0:        0x0B,
	keycode.Minus:         0x0C,
	keycode.Equal:         0x0D,
	keycode.KeyQ:          0x10,
	keycode.KeyW:          0x11,
	keycode.KeyE:          0x12,
	keycode.KeyR:          0x13,
	keycode.KeyT:          0x14,
	keycode.KeyY:          0x15,
	keycode.KeyU:          0x16,
	keycode.KeyI:          0x17,
	keycode.KeyO:          0x18,
	keycode.KeyP:          0x19,
	keycode.BracketLeft:   0x1A,
	keycode.BracketRight:  0x1B,
	keycode.KeyA:          0x1E,
	keycode.KeyS:          0x1F,
	keycode.KeyD:          0x20,
	keycode.KeyF:          0x21,
	keycode.KeyG:          0x22,
	keycode.KeyH:          0x23,
	keycode.KeyJ:          0x24,
	keycode.KeyK:          0x25,
	keycode.KeyL:          0x26,
	keycode.Semicolon:     0x27,
	keycode.Quote:         0x28,
	keycode.Backslash:     0x2B,
	keycode.KeyZ:          0x2C,
	keycode.KeyX:          0x2D,
	keycode.KeyC:          0x2E,
	keycode.KeyV:          0x2F,
	keycode.KeyB:          0x30,
	keycode.KeyN:          0x31,
	keycode.KeyM:          0x32,
	keycode.Comma:         0x33,
	keycode.Period:        0x34,
	keycode.Slash:         0x35,
	keycode.IntlBackslash: 0x56,
	keycode.IntlRo:        0x73,
	keycode.IntlYen:       0x7D,
}
