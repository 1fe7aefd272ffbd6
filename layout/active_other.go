//go:build !windows

package layout

import "github.com/splitkey/splitkey/keycode"

// Active returns a source backed by the current system keyboard layout, or
// nil when the platform has no supported layout query. keycode.Resolve
// treats a nil source as absence and falls back to baseline labels.
func Active() keycode.Source {
	return nil
}
