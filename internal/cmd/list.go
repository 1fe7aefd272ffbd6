package cmd

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/splitkey/splitkey/keycode"
)

// List enumerates the key vocabulary, optionally filtered by class.
type List struct {
	Class string `help:"Only list keys of this class (e.g. WritingSystem, Numpad, Gamepad)"`
}

// Run is called by Kong when the list command is executed.
func (l *List) Run() error {
	filter := keycode.Class(0)
	filtered := l.Class != ""
	if filtered {
		cl, err := keycode.ParseClass(l.Class)
		if err != nil {
			return err
		}
		filter = cl
	}

	// On a terminal, show an aligned table with class and label columns.
	// When piped, emit bare canonical names so the output stays scriptable.
	pretty := term.IsTerminal(int(os.Stdout.Fd()))

	for c := range keycode.All() {
		if filtered && c.Class() != filter {
			continue
		}
		if pretty {
			fmt.Printf("%-22s %-14s %s\n", c.Name(), c.Class(), c.Label())
		} else {
			fmt.Println(c.Name())
		}
	}
	return nil
}
