package keycode

import "strings"

// Source reports the text a physical key currently produces under the active
// keyboard layout. A false result means no mapping is available; Lookup must
// never fail any harder than that. Implementations may be restricted to a
// particular thread by the underlying platform and are not assumed to be
// safe for concurrent use.
type Source interface {
	Lookup(c Code) (glyph string, ok bool)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(Code) (string, bool)

func (f SourceFunc) Lookup(c Code) (string, bool) { return f(c) }

// Resolve returns the best available display string for c under the user's
// keyboard layout. Only writing-system keys consult src; every other class
// is labeled the same in every locale, so src is not even called for them.
// A nil src, a missing mapping, or an empty glyph falls back to the baseline
// Label. Resolve never fails.
func (c Code) Resolve(src Source) string {
	if c.Class() == WritingSystem && src != nil {
		if glyph, ok := src.Lookup(c); ok && glyph != "" {
			// Upper-casing "ß" would produce "SS", a different character
			// from the one the key types, so it is shown as is.
			if glyph != "ß" {
				glyph = strings.ToUpper(glyph)
			}
			return glyph
		}
	}
	return c.Label()
}
