package keycode

import "fmt"

// Class groups key codes into the categories a hotkey picker presents them
// under. Every code belongs to exactly one class.
type Class uint8

const (
	WritingSystem Class = iota
	Functional
	ControlPad
	ArrowPad
	Numpad
	Function
	Media
	Legacy
	Gamepad
	NonStandard

	numClasses
)

var classNames = [numClasses]string{
	WritingSystem: "WritingSystem",
	Functional:    "Functional",
	ControlPad:    "ControlPad",
	ArrowPad:      "ArrowPad",
	Numpad:        "Numpad",
	Function:      "Function",
	Media:         "Media",
	Legacy:        "Legacy",
	Gamepad:       "Gamepad",
	NonStandard:   "NonStandard",
}

func (cl Class) String() string {
	if cl >= numClasses {
		return fmt.Sprintf("keycode.Class(%d)", uint8(cl))
	}
	return classNames[cl]
}

// ParseClass returns the class with the given name.
func ParseClass(s string) (Class, error) {
	for cl := Class(0); cl < numClasses; cl++ {
		if classNames[cl] == s {
			return cl, nil
		}
	}
	return 0, fmt.Errorf("unknown key class %q", s)
}

// Class returns the category c belongs to. The partition is a design
// decision, not derived from the name: modifiers count as Functional even
// though they sit in the main key block, and Backspace counts as a writing
// system key per the W3C code tables.
func (c Code) Class() Class {
	return codeClasses[c]
}

// codeClasses assigns every code its class. WritingSystem is deliberately
// the zero Class so that the literal below, read top to bottom, starts with
// the writing system block; the partition test pins the exact member count
// of every class, so a forgotten entry cannot hide behind the zero value.
var codeClasses = [numCodes]Class{
	Backquote:     WritingSystem,
	Backslash:     WritingSystem,
	Backspace:     WritingSystem,
	BracketLeft:   WritingSystem,
	BracketRight:  WritingSystem,
	Comma:         WritingSystem,
	Digit0:        WritingSystem,
	Digit1:        WritingSystem,
	Digit2:        WritingSystem,
	Digit3:        WritingSystem,
	Digit4:        WritingSystem,
	Digit5:        WritingSystem,
	Digit6:        WritingSystem,
	Digit7:        WritingSystem,
	Digit8:        WritingSystem,
	Digit9:        WritingSystem,
	Equal:         WritingSystem,
	IntlBackslash: WritingSystem,
	IntlRo:        WritingSystem,
	IntlYen:       WritingSystem,
	KeyA:          WritingSystem,
	KeyB:          WritingSystem,
	KeyC:          WritingSystem,
	KeyD:          WritingSystem,
	KeyE:          WritingSystem,
	KeyF:          WritingSystem,
	KeyG:          WritingSystem,
	KeyH:          WritingSystem,
	KeyI:          WritingSystem,
	KeyJ:          WritingSystem,
	KeyK:          WritingSystem,
	KeyL:          WritingSystem,
	KeyM:          WritingSystem,
	KeyN:          WritingSystem,
	KeyO:          WritingSystem,
	KeyP:          WritingSystem,
	KeyQ:          WritingSystem,
	KeyR:          WritingSystem,
	KeyS:          WritingSystem,
	KeyT:          WritingSystem,
	KeyU:          WritingSystem,
	KeyV:          WritingSystem,
	KeyW:          WritingSystem,
	KeyX:          WritingSystem,
	KeyY:          WritingSystem,
	KeyZ:          WritingSystem,
	Minus:         WritingSystem,
	Period:        WritingSystem,
	Quote:         WritingSystem,
	Semicolon:     WritingSystem,
	Slash:         WritingSystem,

	AltLeft:      Functional,
	AltRight:     Functional,
	CapsLock:     Functional,
	ContextMenu:  Functional,
	ControlLeft:  Functional,
	ControlRight: Functional,
	Enter:        Functional,
	MetaLeft:     Functional,
	MetaRight:    Functional,
	ShiftLeft:    Functional,
	ShiftRight:   Functional,
	Space:        Functional,
	Tab:          Functional,
	Convert:      Functional,
	KanaMode:     Functional,
	Lang1:        Functional,
	Lang2:        Functional,
	Lang3:        Functional,
	Lang4:        Functional,
	Lang5:        Functional,
	NonConvert:   Functional,

	Delete:   ControlPad,
	End:      ControlPad,
	Help:     ControlPad,
	Home:     ControlPad,
	Insert:   ControlPad,
	PageDown: ControlPad,
	PageUp:   ControlPad,

	ArrowDown:  ArrowPad,
	ArrowLeft:  ArrowPad,
	ArrowRight: ArrowPad,
	ArrowUp:    ArrowPad,

	NumLock:              Numpad,
	Numpad0:              Numpad,
	Numpad1:              Numpad,
	Numpad2:              Numpad,
	Numpad3:              Numpad,
	Numpad4:              Numpad,
	Numpad5:              Numpad,
	Numpad6:              Numpad,
	Numpad7:              Numpad,
	Numpad8:              Numpad,
	Numpad9:              Numpad,
	NumpadAdd:            Numpad,
	NumpadBackspace:      Numpad,
	NumpadClear:          Numpad,
	NumpadClearEntry:     Numpad,
	NumpadComma:          Numpad,
	NumpadDecimal:        Numpad,
	NumpadDivide:         Numpad,
	NumpadEnter:          Numpad,
	NumpadEqual:          Numpad,
	NumpadHash:           Numpad,
	NumpadMemoryAdd:      Numpad,
	NumpadMemoryClear:    Numpad,
	NumpadMemoryRecall:   Numpad,
	NumpadMemoryStore:    Numpad,
	NumpadMemorySubtract: Numpad,
	NumpadMultiply:       Numpad,
	NumpadParenLeft:      Numpad,
	NumpadParenRight:     Numpad,
	NumpadStar:           Numpad,
	NumpadSubtract:       Numpad,

	Escape:      Function,
	F1:          Function,
	F2:          Function,
	F3:          Function,
	F4:          Function,
	F5:          Function,
	F6:          Function,
	F7:          Function,
	F8:          Function,
	F9:          Function,
	F10:         Function,
	F11:         Function,
	F12:         Function,
	F13:         Function,
	F14:         Function,
	F15:         Function,
	F16:         Function,
	F17:         Function,
	F18:         Function,
	F19:         Function,
	F20:         Function,
	F21:         Function,
	F22:         Function,
	F23:         Function,
	F24:         Function,
	Fn:          Function,
	FnLock:      Function,
	PrintScreen: Function,
	ScrollLock:  Function,
	Pause:       Function,

	BrowserBack:        Media,
	BrowserFavorites:   Media,
	BrowserForward:     Media,
	BrowserHome:        Media,
	BrowserRefresh:     Media,
	BrowserSearch:      Media,
	BrowserStop:        Media,
	Eject:              Media,
	LaunchApp1:         Media,
	LaunchApp2:         Media,
	LaunchMail:         Media,
	MediaPlayPause:     Media,
	MediaSelect:        Media,
	MediaStop:          Media,
	MediaTrackNext:     Media,
	MediaTrackPrevious: Media,
	Power:              Media,
	Sleep:              Media,
	AudioVolumeDown:    Media,
	AudioVolumeMute:    Media,
	AudioVolumeUp:      Media,
	WakeUp:             Media,

	Again:  Legacy,
	Copy:   Legacy,
	Cut:    Legacy,
	Find:   Legacy,
	Open:   Legacy,
	Paste:  Legacy,
	Props:  Legacy,
	Select: Legacy,
	Undo:   Legacy,

	Gamepad0:  Gamepad,
	Gamepad1:  Gamepad,
	Gamepad2:  Gamepad,
	Gamepad3:  Gamepad,
	Gamepad4:  Gamepad,
	Gamepad5:  Gamepad,
	Gamepad6:  Gamepad,
	Gamepad7:  Gamepad,
	Gamepad8:  Gamepad,
	Gamepad9:  Gamepad,
	Gamepad10: Gamepad,
	Gamepad11: Gamepad,
	Gamepad12: Gamepad,
	Gamepad13: Gamepad,
	Gamepad14: Gamepad,
	Gamepad15: Gamepad,
	Gamepad16: Gamepad,
	Gamepad17: Gamepad,
	Gamepad18: Gamepad,
	Gamepad19: Gamepad,

	BrightnessDown:       NonStandard,
	BrightnessUp:         NonStandard,
	DisplayToggleIntExt:  NonStandard,
	KeyboardLayoutSelect: NonStandard,
	LaunchAssistant:      NonStandard,
	LaunchControlPanel:   NonStandard,
	LaunchScreenSaver:    NonStandard,
	MailForward:          NonStandard,
	MailReply:            NonStandard,
	MailSend:             NonStandard,
	MediaFastForward:     NonStandard,
	MediaPause:           NonStandard,
	MediaPlay:            NonStandard,
	MediaRecord:          NonStandard,
	MediaRewind:          NonStandard,
	PrivacyScreenToggle:  NonStandard,
	SelectTask:           NonStandard,
	ShowAllWindows:       NonStandard,
	ZoomToggle:           NonStandard,
}
