// FILE: lixenwraith/bind/subscribe.go
package bind

import "github.com/google/uuid"

// Change-subscription adapters. Each attaches exactly one listener to the
// control's change notification and forwards the new value to the setter.

func (c Toggle) subscribe(set func(bool))          { c.w.OnToggled(set) }
func (c GroupToggle) subscribe(set func(bool))     { c.w.OnToggled(set) }
func (c ExclusiveToggle) subscribe(set func(bool)) { c.w.OnToggled(set) }

func (c LineText) subscribe(set func(string)) { c.w.OnTextChanged(set) }

// subscribe wraps the edited text before it reaches the setter.
func (c SecretLine) subscribe(set func(Secret)) {
	c.w.OnTextChanged(func(text string) {
		set(SecretFromPlainText(text))
	})
}

func (c MultiLineText) subscribe(set func(string)) {
	c.w.OnTextChanged(func() {
		set(c.w.PlainText())
	})
}

func (c TextChoice) subscribe(set func(string)) { c.w.OnCurrentTextChanged(set) }

func (c IndexChoice) subscribe(set func(int)) { c.w.OnCurrentIndexChanged(set) }

// subscribe forwards the hidden token of the new entry. Losing the selection
// or selecting an entry without a token yields uuid.Nil.
func (c TokenChoice) subscribe(set func(Identifier)) {
	c.w.OnCurrentIndexChanged(func(index int) {
		id := uuid.Nil
		if index >= 0 {
			if tok, ok := tokenOf(c.w.ItemData(index)); ok {
				id = tok
			}
		}
		set(id)
	})
}

func (c Stepper) subscribe(set func(int)) { c.w.OnValueChanged(set) }

func (c ColorTrigger) subscribe(set func(Color)) {
	c.w.OnClicked(func() {
		c.activate(set)
	})
}

// activate runs the modal picker seeded with the current swatch. A committed
// choice is passed to the setter and then shown on the swatch; a cancelled
// one changes nothing. It reports whether the choice was committed.
func (c ColorTrigger) activate(set func(Color)) bool {
	if c.picker == nil {
		return false
	}
	choice := c.picker.PickColor(c.w.SwatchColor())
	if !choice.Committed {
		return false
	}
	set(choice.Color)
	c.w.SetSwatchColor(choice.Color)
	return true
}

func (c Passive[T]) subscribe(func(T)) {}
