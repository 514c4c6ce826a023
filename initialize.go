// FILE: lixenwraith/bind/initialize.go
package bind

import (
	"github.com/google/uuid"
)

// Initialization adapters. Each reads the property once and updates the
// control's displayed state. None of them calls the setter.

func (c Toggle) initialize(get func() bool)          { c.w.SetChecked(get()) }
func (c GroupToggle) initialize(get func() bool)     { c.w.SetChecked(get()) }
func (c ExclusiveToggle) initialize(get func() bool) { c.w.SetChecked(get()) }

func (c LineText) initialize(get func() string) { c.w.SetText(get()) }

// initialize is the single place the engine unwraps a Secret.
func (c SecretLine) initialize(get func() Secret) { c.w.SetText(get().PlainText()) }

func (c MultiLineText) initialize(get func() string) { c.w.SetPlainText(get()) }

func (c TextChoice) initialize(get func() string) { c.w.SetCurrentText(get()) }

func (c IndexChoice) initialize(get func() int) { c.w.SetCurrentIndex(get()) }

// initialize selects the entry carrying the identifier. An unknown
// identifier clears the selection.
func (c TokenChoice) initialize(get func() Identifier) {
	c.w.SetCurrentIndex(findToken(c.w, get()))
}

func (c Stepper) initialize(get func() int) { c.w.SetValue(get()) }

func (c ColorTrigger) initialize(get func() Color) { c.w.SetSwatchColor(get()) }

func (c Passive[T]) initialize(func() T) {}

// findToken returns the index of the first entry whose data is id, or -1.
func findToken(s Selector, id Identifier) int {
	for i, n := 0, s.Count(); i < n; i++ {
		if tok, ok := tokenOf(s.ItemData(i)); ok && tok == id {
			return i
		}
	}
	return -1
}

// tokenOf converts entry data to an Identifier.
func tokenOf(data any) (Identifier, bool) {
	switch d := data.(type) {
	case uuid.UUID:
		return d, true
	case *uuid.UUID:
		if d == nil {
			return uuid.Nil, false
		}
		return *d, true
	case [16]byte:
		return uuid.UUID(d), true
	case string:
		id, err := uuid.Parse(d)
		return id, err == nil
	}
	return uuid.Nil, false
}
