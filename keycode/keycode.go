// Package keycode defines the canonical vocabulary of physical keyboard and
// gamepad key positions, based on the W3C UI Events code standard
// (https://www.w3.org/TR/uievents-code/), and converts between that
// vocabulary, the spellings used by other environments, and human-readable
// display labels.
//
// A Code names a physical key position, independent of the active keyboard
// layout or locale. The set of codes is fixed at build time; every code
// belongs to exactly one Class.
package keycode

import (
	"fmt"
	"iter"
)

// Code identifies a single physical key position.
type Code uint8

// Key codes, in the order of the W3C UI Events code specification.
const (
	// Writing system keys
	Backquote Code = iota
	Backslash
	Backspace
	BracketLeft
	BracketRight
	Comma
	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9
	Equal
	IntlBackslash
	IntlRo
	IntlYen
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Minus
	Period
	Quote
	Semicolon
	Slash

	// Functional keys
	AltLeft
	AltRight
	CapsLock
	ContextMenu
	ControlLeft
	ControlRight
	Enter
	MetaLeft
	MetaRight
	ShiftLeft
	ShiftRight
	Space
	Tab

	// Functional keys found on Japanese and Korean keyboards
	Convert
	KanaMode
	Lang1
	Lang2
	Lang3
	Lang4
	Lang5
	NonConvert

	// Control pad section
	Delete
	End
	Help
	Home
	Insert
	PageDown
	PageUp

	// Arrow pad section
	ArrowDown
	ArrowLeft
	ArrowRight
	ArrowUp

	// Numpad section
	NumLock
	Numpad0
	Numpad1
	Numpad2
	Numpad3
	Numpad4
	Numpad5
	Numpad6
	Numpad7
	Numpad8
	Numpad9
	NumpadAdd
	NumpadBackspace
	NumpadClear
	NumpadClearEntry
	NumpadComma
	NumpadDecimal
	NumpadDivide
	NumpadEnter
	NumpadEqual
	NumpadHash
	NumpadMemoryAdd
	NumpadMemoryClear
	NumpadMemoryRecall
	NumpadMemoryStore
	NumpadMemorySubtract
	NumpadMultiply
	NumpadParenLeft
	NumpadParenRight
	NumpadStar
	NumpadSubtract

	// Function section
	Escape
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12
	F13
	F14
	F15
	F16
	F17
	F18
	F19
	F20
	F21
	F22
	F23
	F24
	Fn
	FnLock
	PrintScreen
	ScrollLock
	Pause

	// Media keys
	BrowserBack
	BrowserFavorites
	BrowserForward
	BrowserHome
	BrowserRefresh
	BrowserSearch
	BrowserStop
	Eject
	LaunchApp1
	LaunchApp2
	LaunchMail
	MediaPlayPause
	MediaSelect
	MediaStop
	MediaTrackNext
	MediaTrackPrevious
	Power
	Sleep
	AudioVolumeDown
	AudioVolumeMute
	AudioVolumeUp
	WakeUp

	// Legacy and special keys
	Again
	Copy
	Cut
	Find
	Open
	Paste
	Props
	Select
	Undo

	// Gamepad buttons
	Gamepad0
	Gamepad1
	Gamepad2
	Gamepad3
	Gamepad4
	Gamepad5
	Gamepad6
	Gamepad7
	Gamepad8
	Gamepad9
	Gamepad10
	Gamepad11
	Gamepad12
	Gamepad13
	Gamepad14
	Gamepad15
	Gamepad16
	Gamepad17
	Gamepad18
	Gamepad19

	// Non-standard keys, mostly Chrome OS
	BrightnessDown
	BrightnessUp
	DisplayToggleIntExt
	KeyboardLayoutSelect
	LaunchAssistant
	LaunchControlPanel
	LaunchScreenSaver
	MailForward
	MailReply
	MailSend
	MediaFastForward
	MediaPause
	MediaPlay
	MediaRecord
	MediaRewind
	PrivacyScreenToggle
	SelectTask
	ShowAllWindows
	ZoomToggle

	numCodes
)

// IsValid reports whether c is one of the defined key codes.
func (c Code) IsValid() bool { return c < numCodes }

// Name returns the canonical code name, e.g. "KeyA" or "ArrowUp". This is
// the spelling used for serialization; Parse accepts it back. It returns an
// empty string for a value outside the defined set.
func (c Code) Name() string {
	if !c.IsValid() {
		return ""
	}
	return codeNames[c]
}

func (c Code) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("keycode.Code(%d)", uint8(c))
	}
	return codeNames[c]
}

// MarshalText encodes the code as its canonical name.
func (c Code) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("keycode: cannot marshal invalid code %d", uint8(c))
	}
	return []byte(codeNames[c]), nil
}

// UnmarshalText decodes a canonical name or accepted alias via Parse.
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// All returns an iterator over every defined key code, in declaration order.
func All() iter.Seq[Code] {
	return func(yield func(Code) bool) {
		for c := Code(0); c < numCodes; c++ {
			if !yield(c) {
				return
			}
		}
	}
}
