// FILE: lixenwraith/bind/color.go
package bind

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorChoice is the outcome of a modal color selection.
// Color is meaningful only when Committed is true.
type ColorChoice struct {
	Color     Color
	Committed bool
}

// Commit returns a committed choice of c.
func Commit(c Color) ColorChoice {
	return ColorChoice{Color: c, Committed: true}
}

// Cancel returns a cancelled choice.
func Cancel() ColorChoice {
	return ColorChoice{}
}

// ColorPicker runs a modal color selection starting from initial.
// PickColor blocks until the user commits or cancels.
type ColorPicker interface {
	PickColor(initial Color) ColorChoice
}

// ColorPickerFunc adapts a function to the ColorPicker interface.
type ColorPickerFunc func(initial Color) ColorChoice

// PickColor calls f(initial).
func (f ColorPickerFunc) PickColor(initial Color) ColorChoice {
	return f(initial)
}

// ParseColor parses "#rgb", "#rrggbb" and the same forms without the leading '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// FormatColor renders c as "#rrggbb".
func FormatColor(c Color) string {
	return c.Clamped().Hex()
}

// ColorDialog is an exec-style modal dialog: Exec blocks until the dialog
// closes and reports whether the user accepted the selection.
type ColorDialog interface {
	Exec(initial Color) (Color, bool)
}

// DialogPicker adapts an exec-style dialog to a ColorPicker.
func DialogPicker(d ColorDialog) ColorPicker {
	return ColorPickerFunc(func(initial Color) ColorChoice {
		selected, accepted := d.Exec(initial)
		if !accepted {
			return Cancel()
		}
		return Commit(selected)
	})
}
