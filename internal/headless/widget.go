// FILE: lixenwraith/bind/internal/headless/widget.go

// Package headless is an in-memory control toolkit. Controls keep their state
// in plain fields and deliver change notifications synchronously to every
// registered listener, for user edits and programmatic changes alike.
// Notifications fire only when the state actually changes.
package headless

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// attributes is a generic named-attribute store shared by all controls.
type attributes struct {
	attrs map[string]any
	mu    sync.Mutex
}

// Attribute returns a named attribute.
func (a *attributes) Attribute(name string) (any, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.attrs[name]
	return v, ok
}

// SetAttribute stores a named attribute.
func (a *attributes) SetAttribute(name string, value any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.attrs == nil {
		a.attrs = make(map[string]any)
	}
	a.attrs[name] = value
}

// CheckBox is a two-state control. GroupBox and RadioButton share its behavior.
type CheckBox struct {
	attributes
	Name      string
	checked   bool
	onToggled []func(bool)
	group     *ButtonGroup
}

// GroupBox is a checkable group box.
type GroupBox = CheckBox

// NewCheckBox creates an unchecked check box.
func NewCheckBox(name string) *CheckBox {
	return &CheckBox{Name: name}
}

// NewGroupBox creates an unchecked, checkable group box.
func NewGroupBox(name string) *GroupBox {
	return &CheckBox{Name: name}
}

func (c *CheckBox) IsChecked() bool { return c.checked }

// SetChecked changes the state and notifies listeners if it changed.
func (c *CheckBox) SetChecked(checked bool) {
	if c.checked == checked {
		return
	}
	if checked && c.group != nil {
		c.group.uncheckOthers(c)
	}
	c.checked = checked
	for _, fn := range c.onToggled {
		fn(checked)
	}
}

// Toggle flips the state, as a user click would.
func (c *CheckBox) Toggle() {
	if c.group != nil && c.checked {
		// Exclusive buttons cannot be unchecked by clicking them.
		return
	}
	c.SetChecked(!c.checked)
}

func (c *CheckBox) OnToggled(fn func(bool)) {
	c.onToggled = append(c.onToggled, fn)
}

// Listeners returns the number of registered toggle listeners.
func (c *CheckBox) Listeners() int { return len(c.onToggled) }

// ButtonGroup makes its radio buttons mutually exclusive.
type ButtonGroup struct {
	buttons []*CheckBox
}

// NewRadioButton creates an unchecked radio button in group g.
func (g *ButtonGroup) NewRadioButton(name string) *CheckBox {
	rb := &CheckBox{Name: name, group: g}
	g.buttons = append(g.buttons, rb)
	return rb
}

func (g *ButtonGroup) uncheckOthers(keep *CheckBox) {
	for _, b := range g.buttons {
		if b != keep && b.checked {
			b.checked = false
			for _, fn := range b.onToggled {
				fn(false)
			}
		}
	}
}

// LineEdit is a single-line text input.
type LineEdit struct {
	attributes
	Name          string
	text          string
	onTextChanged []func(string)
}

// NewLineEdit creates an empty line edit.
func NewLineEdit(name string) *LineEdit {
	return &LineEdit{Name: name}
}

func (e *LineEdit) Text() string { return e.text }

// SetText replaces the content and notifies listeners if it changed.
func (e *LineEdit) SetText(text string) {
	if e.text == text {
		return
	}
	e.text = text
	for _, fn := range e.onTextChanged {
		fn(text)
	}
}

// Type appends text one character at a time, as keystrokes would.
func (e *LineEdit) Type(text string) {
	for _, r := range text {
		e.SetText(e.text + string(r))
	}
}

func (e *LineEdit) OnTextChanged(fn func(string)) {
	e.onTextChanged = append(e.onTextChanged, fn)
}

// Listeners returns the number of registered text listeners.
func (e *LineEdit) Listeners() int { return len(e.onTextChanged) }

// PlainTextEdit is a multi-line text input whose change notification has no payload.
type PlainTextEdit struct {
	attributes
	Name          string
	text          string
	onTextChanged []func()
}

// NewPlainTextEdit creates an empty editor.
func NewPlainTextEdit(name string) *PlainTextEdit {
	return &PlainTextEdit{Name: name}
}

func (e *PlainTextEdit) PlainText() string { return e.text }

// SetPlainText replaces the content and notifies listeners if it changed.
func (e *PlainTextEdit) SetPlainText(text string) {
	if e.text == text {
		return
	}
	e.text = text
	for _, fn := range e.onTextChanged {
		fn()
	}
}

// Append adds a line of text.
func (e *PlainTextEdit) Append(line string) {
	if e.text == "" {
		e.SetPlainText(line)
		return
	}
	e.SetPlainText(e.text + "\n" + line)
}

func (e *PlainTextEdit) OnTextChanged(fn func()) {
	e.onTextChanged = append(e.onTextChanged, fn)
}

// Item is one selector entry.
type Item struct {
	Text string
	Data any
}

// ComboBox is a non-editable single-choice selector.
type ComboBox struct {
	attributes
	Name                 string
	items                []Item
	current              int
	onCurrentIndexChange []func(int)
	onCurrentTextChange  []func(string)
}

// NewComboBox creates a selector holding items. The first item, if any, is selected.
func NewComboBox(name string, items ...Item) *ComboBox {
	cb := &ComboBox{Name: name, current: -1}
	for _, it := range items {
		cb.AddItem(it.Text, it.Data)
	}
	return cb
}

// AddItem appends an entry. Adding the first entry selects it.
func (c *ComboBox) AddItem(text string, data any) {
	c.items = append(c.items, Item{Text: text, Data: data})
	if c.current < 0 && len(c.items) == 1 {
		c.SetCurrentIndex(0)
	}
}

func (c *ComboBox) Count() int        { return len(c.items) }
func (c *ComboBox) CurrentIndex() int { return c.current }

// SetCurrentIndex selects an entry. Out-of-range indexes clear the selection.
func (c *ComboBox) SetCurrentIndex(index int) {
	if index < 0 || index >= len(c.items) {
		index = -1
	}
	if index == c.current {
		return
	}
	c.current = index
	for _, fn := range c.onCurrentIndexChange {
		fn(index)
	}
	text := c.CurrentText()
	for _, fn := range c.onCurrentTextChange {
		fn(text)
	}
}

// CurrentText returns the text of the selected entry, or "" when nothing is selected.
func (c *ComboBox) CurrentText() string {
	if c.current < 0 {
		return ""
	}
	return c.items[c.current].Text
}

// SetCurrentText selects the first entry with the given text.
// Unknown text leaves the selection unchanged.
func (c *ComboBox) SetCurrentText(text string) {
	for i, it := range c.items {
		if it.Text == text {
			c.SetCurrentIndex(i)
			return
		}
	}
}

// ItemData returns the hidden data of an entry, or nil when out of range.
func (c *ComboBox) ItemData(index int) any {
	if index < 0 || index >= len(c.items) {
		return nil
	}
	return c.items[index].Data
}

func (c *ComboBox) OnCurrentIndexChanged(fn func(int)) {
	c.onCurrentIndexChange = append(c.onCurrentIndexChange, fn)
}

func (c *ComboBox) OnCurrentTextChanged(fn func(string)) {
	c.onCurrentTextChange = append(c.onCurrentTextChange, fn)
}

// SpinBox is a bounded integer stepper.
type SpinBox struct {
	attributes
	Name           string
	Min, Max       int
	value          int
	onValueChanged []func(int)
}

// NewSpinBox creates a stepper with the given bounds, starting at min.
func NewSpinBox(name string, min, max int) *SpinBox {
	return &SpinBox{Name: name, Min: min, Max: max, value: min}
}

func (s *SpinBox) Value() int { return s.value }

// SetValue clamps value to the bounds and notifies listeners if it changed.
func (s *SpinBox) SetValue(value int) {
	value = max(s.Min, min(s.Max, value))
	if value == s.value {
		return
	}
	s.value = value
	for _, fn := range s.onValueChanged {
		fn(value)
	}
}

// StepBy moves the value by steps, as arrow keys would.
func (s *SpinBox) StepBy(steps int) {
	s.SetValue(s.value + steps)
}

func (s *SpinBox) OnValueChanged(fn func(int)) {
	s.onValueChanged = append(s.onValueChanged, fn)
}

// PushButton is a button showing a color swatch.
type PushButton struct {
	attributes
	Name      string
	swatch    colorful.Color
	onClicked []func()
}

// NewPushButton creates a button with a black swatch.
func NewPushButton(name string) *PushButton {
	return &PushButton{Name: name}
}

func (b *PushButton) SwatchColor() colorful.Color     { return b.swatch }
func (b *PushButton) SetSwatchColor(c colorful.Color) { b.swatch = c }

// Click notifies every click listener.
func (b *PushButton) Click() {
	for _, fn := range b.onClicked {
		fn()
	}
}

func (b *PushButton) OnClicked(fn func()) {
	b.onClicked = append(b.onClicked, fn)
}

// Label is a passive text display.
type Label struct {
	attributes
	Name string
	Text string
}

// NewLabel creates a label.
func NewLabel(name, text string) *Label {
	return &Label{Name: name, Text: text}
}
