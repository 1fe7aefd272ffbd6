package keycode

// Label returns the display string for c on the reference US layout. Labels
// for non-writing-system keys never depend on the layout; widely recognized
// pictograms are used where keyboards print them. Use Resolve to show the
// character a key actually produces under the user's layout.
func (c Code) Label() string {
	if !c.IsValid() {
		return ""
	}
	return baselineLabels[c]
}

var baselineLabels = [numCodes]string{
	Backquote:     "`",
	Backslash:     "\\",
	Backspace:     "⌫",
	BracketLeft:   "[",
	BracketRight:  "]",
	Comma:         ",",
	Digit0:        "0",
	Digit1:        "1",
	Digit2:        "2",
	Digit3:        "3",
	Digit4:        "4",
	Digit5:        "5",
	Digit6:        "6",
	Digit7:        "7",
	Digit8:        "8",
	Digit9:        "9",
	Equal:         "=",
	IntlBackslash: "International Backslash",
	IntlRo:        "ろ",
	IntlYen:       "¥",
	KeyA:          "A",
	KeyB:          "B",
	KeyC:          "C",
	KeyD:          "D",
	KeyE:          "E",
	KeyF:          "F",
	KeyG:          "G",
	KeyH:          "H",
	KeyI:          "I",
	KeyJ:          "J",
	KeyK:          "K",
	KeyL:          "L",
	KeyM:          "M",
	KeyN:          "N",
	KeyO:          "O",
	KeyP:          "P",
	KeyQ:          "Q",
	KeyR:          "R",
	KeyS:          "S",
	KeyT:          "T",
	KeyU:          "U",
	KeyV:          "V",
	KeyW:          "W",
	KeyX:          "X",
	KeyY:          "Y",
	KeyZ:          "Z",
	Minus:         "-",
	Period:        ".",
	Quote:         "'",
	Semicolon:     ";",
	Slash:         "/",

	AltLeft:      "Alt Left",
	AltRight:     "Alt Right",
	CapsLock:     "⇪",
	ContextMenu:  "Context Menu",
	ControlLeft:  "Control Left",
	ControlRight: "Control Right",
	Enter:        "↵",
	MetaLeft:     "⌘ Left",
	MetaRight:    "⌘ Right",
	ShiftLeft:    "⇧ Left",
	ShiftRight:   "⇧ Right",
	Space:        "Space",
	Tab:          "⇥",

	Convert:    "変換",
	KanaMode:   "カタカナ/ひらがな/ローマ字",
	Lang1:      "한/영 かな",
	Lang2:      "한자 英数",
	Lang3:      "カタカナ",
	Lang4:      "ひらがな",
	Lang5:      "半角/全角/漢字",
	NonConvert: "無変換",

	Delete:   "Delete",
	End:      "End",
	Help:     "Help",
	Home:     "Home",
	Insert:   "Insert",
	PageDown: "Page Down",
	PageUp:   "Page Up",

	ArrowDown:  "↓",
	ArrowLeft:  "←",
	ArrowRight: "→",
	ArrowUp:    "↑",

	NumLock:              "Num Lock",
	Numpad0:              "Numpad 0",
	Numpad1:              "Numpad 1",
	Numpad2:              "Numpad 2",
	Numpad3:              "Numpad 3",
	Numpad4:              "Numpad 4",
	Numpad5:              "Numpad 5",
	Numpad6:              "Numpad 6",
	Numpad7:              "Numpad 7",
	Numpad8:              "Numpad 8",
	Numpad9:              "Numpad 9",
	NumpadAdd:            "Numpad +",
	NumpadBackspace:      "Numpad ⌫",
	NumpadClear:          "Numpad C",
	NumpadClearEntry:     "Numpad CE",
	NumpadComma:          "Numpad ,",
	NumpadDecimal:        "Numpad .",
	NumpadDivide:         "Numpad /",
	NumpadEnter:          "Numpad ↵",
	NumpadEqual:          "Numpad =",
	NumpadHash:           "Numpad #",
	NumpadMemoryAdd:      "Numpad M+",
	NumpadMemoryClear:    "Numpad MC",
	NumpadMemoryRecall:   "Numpad MR",
	NumpadMemoryStore:    "Numpad MS",
	NumpadMemorySubtract: "Numpad M-",
	NumpadMultiply:       "Numpad *",
	NumpadParenLeft:      "Numpad (",
	NumpadParenRight:     "Numpad )",
	NumpadStar:           "Numpad * (Star)",
	NumpadSubtract:       "Numpad -",

	Escape:      "Escape",
	F1:          "F1",
	F2:          "F2",
	F3:          "F3",
	F4:          "F4",
	F5:          "F5",
	F6:          "F6",
	F7:          "F7",
	F8:          "F8",
	F9:          "F9",
	F10:         "F10",
	F11:         "F11",
	F12:         "F12",
	F13:         "F13",
	F14:         "F14",
	F15:         "F15",
	F16:         "F16",
	F17:         "F17",
	F18:         "F18",
	F19:         "F19",
	F20:         "F20",
	F21:         "F21",
	F22:         "F22",
	F23:         "F23",
	F24:         "F24",
	Fn:          "Fn",
	FnLock:      "FnLock",
	PrintScreen: "Print Screen",
	ScrollLock:  "Scroll Lock",
	Pause:       "Pause Break",

	BrowserBack:        "Browser ⏮",
	BrowserFavorites:   "Browser Favorites",
	BrowserForward:     "Browser ⏭",
	BrowserHome:        "Browser 🏠",
	BrowserRefresh:     "Browser Refresh",
	BrowserSearch:      "Browser Search",
	BrowserStop:        "Browser Stop",
	Eject:              "⏏",
	LaunchApp1:         "Launch App 1",
	LaunchApp2:         "Launch App 2",
	LaunchMail:         "Launch Mail",
	MediaPlayPause:     "⏯",
	MediaSelect:        "Media Select",
	MediaStop:          "◼",
	MediaTrackNext:     "⏭",
	MediaTrackPrevious: "⏮",
	Power:              "Power",
	Sleep:              "Sleep",
	AudioVolumeDown:    "🔉",
	AudioVolumeMute:    "🔇",
	AudioVolumeUp:      "🔊",
	WakeUp:             "Wake Up",

	Again:  "Again",
	Copy:   "Copy",
	Cut:    "Cut",
	Find:   "Find",
	Open:   "Open",
	Paste:  "Paste",
	Props:  "Props",
	Select: "Select",
	Undo:   "Undo",

	Gamepad0:  "Gamepad 0",
	Gamepad1:  "Gamepad 1",
	Gamepad2:  "Gamepad 2",
	Gamepad3:  "Gamepad 3",
	Gamepad4:  "Gamepad 4",
	Gamepad5:  "Gamepad 5",
	Gamepad6:  "Gamepad 6",
	Gamepad7:  "Gamepad 7",
	Gamepad8:  "Gamepad 8",
	Gamepad9:  "Gamepad 9",
	Gamepad10: "Gamepad 10",
	Gamepad11: "Gamepad 11",
	Gamepad12: "Gamepad 12",
	Gamepad13: "Gamepad 13",
	Gamepad14: "Gamepad 14",
	Gamepad15: "Gamepad 15",
	Gamepad16: "Gamepad 16",
	Gamepad17: "Gamepad 17",
	Gamepad18: "Gamepad 18",
	Gamepad19: "Gamepad 19",

	BrightnessDown:       "Brightness Down",
	BrightnessUp:         "Brightness Up",
	DisplayToggleIntExt:  "Display Toggle Intern / Extern",
	KeyboardLayoutSelect: "Keyboard Layout Select",
	LaunchAssistant:      "Launch Assistant",
	LaunchControlPanel:   "Launch Control Panel",
	LaunchScreenSaver:    "Launch Screen Saver",
	MailForward:          "Mail Forward",
	MailReply:            "Mail Reply",
	MailSend:             "Mail Send",
	MediaFastForward:     "⏩",
	MediaPause:           "⏸",
	MediaPlay:            "▶",
	MediaRecord:          "⏺",
	MediaRewind:          "⏪",
	PrivacyScreenToggle:  "Privacy Screen Toggle",
	SelectTask:           "Select Task",
	ShowAllWindows:       "Show All Windows",
	ZoomToggle:           "Zoom Toggle",
}
