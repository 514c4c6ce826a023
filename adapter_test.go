// FILE: lixenwraith/bind/adapter_test.go
package bind

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bind/internal/headless"
)

// TestInitialize tests that every initialization adapter shows the property value
func TestInitialize(t *testing.T) {
	t.Run("BoolToToggles", func(t *testing.T) {
		enabled := true
		p := VarProperty(&enabled)

		cb := headless.NewCheckBox("cb")
		gb := headless.NewGroupBox("gb")
		group := &headless.ButtonGroup{}
		rb := group.NewRadioButton("rb")

		Initialize(p, NewToggle(cb))
		Initialize(p, NewGroupToggle(gb))
		Initialize(p, NewExclusiveToggle(rb))

		assert.True(t, cb.IsChecked())
		assert.True(t, gb.IsChecked())
		assert.True(t, rb.IsChecked())

		enabled = false
		Initialize(p, NewToggle(cb))
		assert.False(t, cb.IsChecked())
	})

	t.Run("StringToLineEdit", func(t *testing.T) {
		host := "example.org"
		le := headless.NewLineEdit("host")
		le.SetText("previous content")

		Initialize(VarProperty(&host), NewLineText(le))
		assert.Equal(t, "example.org", le.Text())
	})

	t.Run("SecretToLineEdit", func(t *testing.T) {
		pw := SecretFromPlainText("hunter2")
		le := headless.NewLineEdit("pw")

		Initialize(VarProperty(&pw), NewSecretLine(le))
		assert.Equal(t, "hunter2", le.Text())
	})

	t.Run("StringToPlainTextEdit", func(t *testing.T) {
		notes := "line one\nline two"
		te := headless.NewPlainTextEdit("notes")

		Initialize(VarProperty(&notes), NewMultiLineText(te))
		assert.Equal(t, notes, te.PlainText())
	})

	t.Run("ColorToSwatch", func(t *testing.T) {
		accent := colorful.Color{R: 0.2, G: 0.4, B: 0.6}
		btn := headless.NewPushButton("accent")

		Initialize(VarProperty(&accent), NewColorTrigger(btn, nil))
		assert.Equal(t, accent, btn.SwatchColor())
	})

	t.Run("IntToIndexSelector", func(t *testing.T) {
		mode := 2
		combo := headless.NewComboBox("mode",
			headless.Item{Text: "off"}, headless.Item{Text: "low"}, headless.Item{Text: "high"})

		Initialize(VarProperty(&mode), NewIndexChoice(combo))
		assert.Equal(t, 2, combo.CurrentIndex())
		assert.Equal(t, "high", combo.CurrentText())
	})

	t.Run("StringToTextSelector", func(t *testing.T) {
		level := "low"
		combo := headless.NewComboBox("level",
			headless.Item{Text: "off"}, headless.Item{Text: "low"}, headless.Item{Text: "high"})

		Initialize(VarProperty(&level), NewTextChoice(combo))
		assert.Equal(t, 1, combo.CurrentIndex())
	})

	t.Run("IntToSpinBox", func(t *testing.T) {
		port := 8080
		spin := headless.NewSpinBox("port", 1, 65535)

		Initialize(VarProperty(&port), NewStepper(spin))
		assert.Equal(t, 8080, spin.Value())
	})

	t.Run("IdentifierToTokenSelector", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		combo := headless.NewComboBox("profile",
			headless.Item{Text: "Alpha", Data: a}, headless.Item{Text: "Beta", Data: b})

		id := b
		Initialize(VarProperty(&id), NewTokenChoice(combo))
		assert.Equal(t, 1, combo.CurrentIndex())
	})

	t.Run("TokenAsString", func(t *testing.T) {
		a := uuid.New()
		combo := headless.NewComboBox("profile",
			headless.Item{Text: "Other", Data: 42}, headless.Item{Text: "Alpha", Data: a.String()})

		Initialize(VarProperty(&a), NewTokenChoice(combo))
		assert.Equal(t, 1, combo.CurrentIndex())
	})

	t.Run("UnknownIdentifierClearsSelection", func(t *testing.T) {
		combo := headless.NewComboBox("profile",
			headless.Item{Text: "Alpha", Data: uuid.New()}, headless.Item{Text: "Beta", Data: uuid.New()})
		require.Equal(t, 0, combo.CurrentIndex())

		missing := uuid.New()
		Initialize(VarProperty(&missing), NewTokenChoice(combo))
		assert.Equal(t, -1, combo.CurrentIndex())
		assert.Equal(t, "", combo.CurrentText())
	})

	t.Run("NeverCallsSetter", func(t *testing.T) {
		calls := 0
		p := NewProperty(func() int { return 5 }, func(int) { calls++ })
		spin := headless.NewSpinBox("n", 0, 10)

		Initialize(p, NewStepper(spin))
		assert.Equal(t, 5, spin.Value())
		assert.Zero(t, calls)
	})
}

// TestRoundTrip tests initialize, control change, setter
func TestRoundTrip(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		enabled := false
		cb := headless.NewCheckBox("cb")
		p, c := VarProperty(&enabled), NewToggle(cb)

		Initialize(p, c)
		Subscribe(p, c)
		cb.Toggle()

		assert.True(t, enabled)
		assert.Equal(t, cb.IsChecked(), p.Get())
	})

	t.Run("ProgrammaticToggleFires", func(t *testing.T) {
		enabled := false
		gb := headless.NewGroupBox("gb")
		Subscribe(VarProperty(&enabled), NewGroupToggle(gb))

		gb.SetChecked(true)
		assert.True(t, enabled)
		gb.SetChecked(false)
		assert.False(t, enabled)
	})

	t.Run("RadioButtons", func(t *testing.T) {
		first, second := true, false
		group := &headless.ButtonGroup{}
		rb1, rb2 := group.NewRadioButton("first"), group.NewRadioButton("second")

		Initialize(VarProperty(&first), NewExclusiveToggle(rb1))
		Initialize(VarProperty(&second), NewExclusiveToggle(rb2))
		Subscribe(VarProperty(&first), NewExclusiveToggle(rb1))
		Subscribe(VarProperty(&second), NewExclusiveToggle(rb2))

		rb2.Toggle()
		assert.False(t, first)
		assert.True(t, second)
	})

	t.Run("String", func(t *testing.T) {
		host := "old"
		le := headless.NewLineEdit("host")
		p, c := VarProperty(&host), NewLineText(le)

		Initialize(p, c)
		Subscribe(p, c)
		le.SetText("")
		le.Type("new.example")

		assert.Equal(t, "new.example", host)
	})

	t.Run("KeystrokesAreNotDebounced", func(t *testing.T) {
		var seen []string
		le := headless.NewLineEdit("host")
		Subscribe(NewProperty(func() string { return "" }, func(s string) { seen = append(seen, s) }), NewLineText(le))

		le.Type("abc")
		assert.Equal(t, []string{"a", "ab", "abc"}, seen)
	})

	t.Run("MultiLine", func(t *testing.T) {
		notes := ""
		te := headless.NewPlainTextEdit("notes")
		p, c := VarProperty(&notes), NewMultiLineText(te)

		Initialize(p, c)
		Subscribe(p, c)
		te.Append("first")
		te.Append("second")

		assert.Equal(t, "first\nsecond", notes)
	})

	t.Run("Int", func(t *testing.T) {
		port := 80
		spin := headless.NewSpinBox("port", 1, 65535)
		p, c := VarProperty(&port), NewStepper(spin)

		Initialize(p, c)
		Subscribe(p, c)
		spin.StepBy(363)

		assert.Equal(t, 443, port)
	})

	t.Run("IndexSelector", func(t *testing.T) {
		mode := 0
		combo := headless.NewComboBox("mode",
			headless.Item{Text: "off"}, headless.Item{Text: "low"}, headless.Item{Text: "high"})
		p, c := VarProperty(&mode), NewIndexChoice(combo)

		Initialize(p, c)
		Subscribe(p, c)
		combo.SetCurrentIndex(2)

		assert.Equal(t, 2, mode)
	})

	t.Run("TextSelector", func(t *testing.T) {
		level := "off"
		combo := headless.NewComboBox("level",
			headless.Item{Text: "off"}, headless.Item{Text: "low"}, headless.Item{Text: "high"})
		p, c := VarProperty(&level), NewTextChoice(combo)

		Initialize(p, c)
		Subscribe(p, c)
		combo.SetCurrentText("high")

		assert.Equal(t, "high", level)
	})

	t.Run("Identifier", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		combo := headless.NewComboBox("profile",
			headless.Item{Text: "Alpha", Data: a}, headless.Item{Text: "Beta", Data: b})
		id := a
		p, c := VarProperty(&id), NewTokenChoice(combo)

		Initialize(p, c)
		Subscribe(p, c)
		combo.SetCurrentIndex(1)
		assert.Equal(t, b, id)

		combo.SetCurrentIndex(-1)
		assert.Equal(t, uuid.Nil, id)
	})

	t.Run("Color", func(t *testing.T) {
		accent := colorful.Color{R: 1}
		chosen := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
		btn := headless.NewPushButton("accent")
		dlg := headless.NewColorDialog(headless.Accept(chosen))
		p, c := VarProperty(&accent), NewColorTrigger(btn, DialogPicker(dlg))

		Initialize(p, c)
		Subscribe(p, c)
		btn.Click()

		assert.Equal(t, chosen, accent)
		assert.Equal(t, chosen, btn.SwatchColor())
	})
}

// TestSecretSubscription tests that edits reach the setter wrapped
func TestSecretSubscription(t *testing.T) {
	var received []Secret
	stored := SecretFromPlainText("initial")
	p := NewProperty(
		func() Secret { return stored },
		func(s Secret) {
			received = append(received, s)
			stored = s
		},
	)
	le := headless.NewLineEdit("pw")
	c := NewSecretLine(le)

	Initialize(p, c)
	Subscribe(p, c)
	le.SetText("")
	le.Type("s3")

	require.Len(t, received, 3)
	assert.True(t, received[0].IsEmpty())
	assert.Equal(t, "s", received[1].PlainText())
	assert.Equal(t, "s3", received[2].PlainText())
	assert.True(t, stored.Equal(SecretFromPlainText("s3")))
	for _, s := range received {
		assert.Equal(t, redacted, s.String())
	}
}

// TestColorTrigger tests the modal commit/cancel step
func TestColorTrigger(t *testing.T) {
	initial := colorful.Color{R: 1, G: 1, B: 1}
	chosen := colorful.Color{R: 0, G: 0.5, B: 0}

	t.Run("CancelChangesNothing", func(t *testing.T) {
		accent := initial
		calls := 0
		p := NewProperty(func() Color { return accent }, func(c Color) { calls++; accent = c })
		btn := headless.NewPushButton("accent")
		dlg := headless.NewColorDialog(headless.Reject())
		c := NewColorTrigger(btn, DialogPicker(dlg))

		Initialize(p, c)
		Subscribe(p, c)
		btn.Click()

		assert.Equal(t, 1, dlg.ExecCalls())
		assert.Zero(t, calls)
		assert.Equal(t, initial, accent)
		assert.Equal(t, initial, btn.SwatchColor())
	})

	t.Run("CommitUpdatesBoth", func(t *testing.T) {
		accent := initial
		btn := headless.NewPushButton("accent")
		dlg := headless.NewColorDialog(headless.Reject(), headless.Accept(chosen))
		p, c := VarProperty(&accent), NewColorTrigger(btn, DialogPicker(dlg))

		Initialize(p, c)
		Subscribe(p, c)
		btn.Click()
		btn.Click()

		assert.Equal(t, chosen, accent)
		assert.Equal(t, chosen, btn.SwatchColor())
		assert.Equal(t, []colorful.Color{initial, initial}, dlg.Initials())
	})

	t.Run("ActivateInIsolation", func(t *testing.T) {
		btn := headless.NewPushButton("accent")
		btn.SetSwatchColor(initial)

		var got []Color
		set := func(c Color) { got = append(got, c) }

		cancelled := NewColorTrigger(btn, ColorPickerFunc(func(Color) ColorChoice { return Cancel() }))
		assert.False(t, cancelled.activate(set))
		assert.Empty(t, got)

		committed := NewColorTrigger(btn, ColorPickerFunc(func(c Color) ColorChoice {
			assert.Equal(t, initial, c)
			return Commit(chosen)
		}))
		assert.True(t, committed.activate(set))
		assert.Equal(t, []Color{chosen}, got)
		assert.Equal(t, chosen, btn.SwatchColor())
	})

	t.Run("NilPicker", func(t *testing.T) {
		btn := headless.NewPushButton("accent")
		called := false
		assert.False(t, NewColorTrigger(btn, nil).activate(func(Color) { called = true }))
		assert.False(t, called)
	})
}

// TestPassive tests that inert pairs never touch the property
func TestPassive(t *testing.T) {
	t.Run("StringList", func(t *testing.T) {
		gets, sets := 0, 0
		p := NewProperty(
			func() StringList { gets++; return StringList{"a"} },
			func(StringList) { sets++ },
		)
		label := headless.NewLabel("hosts", "unchanged")
		c := NewPassive[StringList](label)

		assert.NotPanics(t, func() {
			Initialize(p, c)
			Subscribe(p, c)
		})
		assert.Zero(t, gets)
		assert.Zero(t, sets)
		assert.Equal(t, "unchanged", label.Text)
		assert.Equal(t, KindPassive, c.Kind())
	})

	t.Run("StructuredList", func(t *testing.T) {
		gets := 0
		p := NewProperty(func() StructuredList { gets++; return nil }, nil)
		c := NewPassive[StructuredList](headless.NewLabel("rules", ""))

		assert.NotPanics(t, func() {
			Initialize(p, c)
			Subscribe(p, c)
		})
		assert.Zero(t, gets)
	})
}

// TestDuplicateSubscribe tests that the raw dispatcher does not deduplicate
func TestDuplicateSubscribe(t *testing.T) {
	calls := 0
	p := NewProperty(func() bool { return false }, func(bool) { calls++ })
	cb := headless.NewCheckBox("cb")
	c := NewToggle(cb)

	Subscribe(p, c)
	Subscribe(p, c)
	cb.Toggle()

	assert.Equal(t, 2, cb.Listeners())
	assert.Equal(t, 2, calls)
}

// TestDispatchNil tests that missing halves are ignored
func TestDispatchNil(t *testing.T) {
	assert.NotPanics(t, func() {
		Initialize[bool](Property[bool]{}, NewToggle(headless.NewCheckBox("cb")))
		Subscribe[bool](Property[bool]{}, NewToggle(headless.NewCheckBox("cb")))
		Initialize(NewProperty(func() int { return 1 }, nil), Control[int](nil))
	})
}

// TestControlKinds tests kind and widget reporting
func TestControlKinds(t *testing.T) {
	cb := headless.NewCheckBox("cb")
	combo := headless.NewComboBox("combo")

	tests := []struct {
		name   string
		kind   ControlKind
		want   ControlKind
		widget any
		wanted any
	}{
		{"Toggle", NewToggle(cb).Kind(), KindToggle, NewToggle(cb).Widget(), cb},
		{"GroupToggle", NewGroupToggle(cb).Kind(), KindGroupToggle, NewGroupToggle(cb).Widget(), cb},
		{"ExclusiveToggle", NewExclusiveToggle(cb).Kind(), KindExclusiveToggle, NewExclusiveToggle(cb).Widget(), cb},
		{"IndexChoice", NewIndexChoice(combo).Kind(), KindTextSelector, NewIndexChoice(combo).Widget(), combo},
		{"TextChoice", NewTextChoice(combo).Kind(), KindTextSelector, NewTextChoice(combo).Widget(), combo},
		{"TokenChoice", NewTokenChoice(combo).Kind(), KindTokenSelector, NewTokenChoice(combo).Widget(), combo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind)
			assert.Same(t, tt.wanted, tt.widget)
		})
	}

	assert.Equal(t, "color-trigger", KindColorTrigger.String())
	assert.Equal(t, "ControlKind(99)", ControlKind(99).String())
}
