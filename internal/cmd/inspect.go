// Package cmd contains the splitkey CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitkey/splitkey/keycode"
	"github.com/splitkey/splitkey/layout"
)

// Inspect resolves a single key name and prints everything known about it.
type Inspect struct {
	Name   string `arg:"" help:"Canonical key name or accepted alias (e.g. KeyA, OSLeft, 7)"`
	Layout string `help:"Resolve the display label against a registered layout table" env:"SPLITKEY_LAYOUT"`
	System bool   `help:"Resolve the display label against the active system layout"`
}

// Run is called by Kong when the inspect command is executed.
func (i *Inspect) Run(logger *slog.Logger) error {
	code, err := keycode.Parse(i.Name)
	if err != nil {
		return err
	}

	var src keycode.Source
	switch {
	case i.Layout != "":
		t, ok := layout.Named(i.Layout)
		if !ok {
			return fmt.Errorf("unknown layout %q (registered: %s)", i.Layout, strings.Join(layout.Names(), ", "))
		}
		src = t
	case i.System:
		src = layout.Active()
		if src == nil {
			logger.Warn("system layout query is not supported on this platform, using baseline labels")
		}
	}

	fmt.Printf("Name:    %s\n", code.Name())
	fmt.Printf("Class:   %s\n", code.Class())
	fmt.Printf("Label:   %s\n", code.Label())
	fmt.Printf("Display: %s\n", code.Resolve(src))
	return nil
}
