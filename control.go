// FILE: lixenwraith/bind/control.go
package bind

import "fmt"

// ControlKind identifies how a control is interacted with.
type ControlKind int

const (
	KindToggle ControlKind = iota + 1
	KindGroupToggle
	KindExclusiveToggle
	KindTextSelector
	KindTokenSelector
	KindSingleLineText
	KindMultiLineText
	KindStepper
	KindColorTrigger
	KindPassive
)

var controlKindNames = map[ControlKind]string{
	KindToggle:          "toggle",
	KindGroupToggle:     "group-toggle",
	KindExclusiveToggle: "exclusive-toggle",
	KindTextSelector:    "text-selector",
	KindTokenSelector:   "token-selector",
	KindSingleLineText:  "single-line-text",
	KindMultiLineText:   "multi-line-text",
	KindStepper:         "stepper",
	KindColorTrigger:    "color-trigger",
	KindPassive:         "passive",
}

func (k ControlKind) String() string {
	if name, ok := controlKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ControlKind(%d)", int(k))
}

// The interfaces below describe the parts of a control toolkit the engine talks to.
// Change callbacks must fire for programmatic changes as well as user edits.

// Checkable is a two-state control such as a check box, a checkable group box or a radio button.
type Checkable interface {
	IsChecked() bool
	SetChecked(checked bool)
	OnToggled(fn func(checked bool))
}

// LineEditor is a single-line text input.
type LineEditor interface {
	Text() string
	SetText(text string)
	OnTextChanged(fn func(text string))
}

// TextEditor is a multi-line plain text input. Its change notification carries no payload.
type TextEditor interface {
	PlainText() string
	SetPlainText(text string)
	OnTextChanged(fn func())
}

// Selector is a single-choice list whose entries have display text and optional hidden data.
// A current index of -1 means no selection.
type Selector interface {
	Count() int
	CurrentIndex() int
	SetCurrentIndex(index int)
	CurrentText() string
	SetCurrentText(text string)
	ItemData(index int) any
	OnCurrentIndexChanged(fn func(index int))
	OnCurrentTextChanged(fn func(text string))
}

// NumberInput is a numeric stepper.
type NumberInput interface {
	Value() int
	SetValue(value int)
	OnValueChanged(fn func(value int))
}

// SwatchButton is a push button showing a color swatch.
type SwatchButton interface {
	SwatchColor() Color
	SetSwatchColor(c Color)
	OnClicked(fn func())
}

// Control is a control descriptor able to carry values of type T.
// It is implemented only by the descriptors in this package, so every
// (value type, control kind) pair is checked when the program is compiled.
type Control[T any] interface {
	// Kind reports the interaction kind of the control.
	Kind() ControlKind
	// Widget returns the toolkit control the descriptor wraps.
	Widget() any

	initialize(get func() T)
	subscribe(set func(T))
}

// Toggle binds a bool to a check box.
type Toggle struct{ w Checkable }

// GroupToggle binds a bool to a checkable group box.
type GroupToggle struct{ w Checkable }

// ExclusiveToggle binds a bool to a radio button.
type ExclusiveToggle struct{ w Checkable }

// LineText binds a string to a single-line text input.
type LineText struct{ w LineEditor }

// SecretLine binds a Secret to a single-line text input.
type SecretLine struct{ w LineEditor }

// MultiLineText binds a string to a multi-line text input.
type MultiLineText struct{ w TextEditor }

// TextChoice binds a string to a selector by entry text.
type TextChoice struct{ w Selector }

// IndexChoice binds an int to a selector by entry position.
type IndexChoice struct{ w Selector }

// TokenChoice binds an Identifier to a selector by the hidden data of its entries.
type TokenChoice struct{ w Selector }

// Stepper binds an int to a numeric stepper.
type Stepper struct{ w NumberInput }

// ColorTrigger binds a Color to a swatch button that opens a modal color picker.
type ColorTrigger struct {
	w      SwatchButton
	picker ColorPicker
}

// Passive accepts a value type without a visual form. It never transfers data.
type Passive[T Inert] struct{ w any }

func NewToggle(w Checkable) Toggle                   { return Toggle{w: w} }
func NewGroupToggle(w Checkable) GroupToggle         { return GroupToggle{w: w} }
func NewExclusiveToggle(w Checkable) ExclusiveToggle { return ExclusiveToggle{w: w} }
func NewLineText(w LineEditor) LineText              { return LineText{w: w} }
func NewSecretLine(w LineEditor) SecretLine          { return SecretLine{w: w} }
func NewMultiLineText(w TextEditor) MultiLineText    { return MultiLineText{w: w} }
func NewTextChoice(w Selector) TextChoice            { return TextChoice{w: w} }
func NewIndexChoice(w Selector) IndexChoice          { return IndexChoice{w: w} }
func NewTokenChoice(w Selector) TokenChoice          { return TokenChoice{w: w} }
func NewStepper(w NumberInput) Stepper               { return Stepper{w: w} }

// NewColorTrigger creates a color trigger. picker is run each time the button is clicked.
func NewColorTrigger(w SwatchButton, picker ColorPicker) ColorTrigger {
	return ColorTrigger{w: w, picker: picker}
}

// NewPassive creates a passive descriptor around any display control.
func NewPassive[T Inert](w any) Passive[T] { return Passive[T]{w: w} }

func (c Toggle) Kind() ControlKind          { return KindToggle }
func (c GroupToggle) Kind() ControlKind     { return KindGroupToggle }
func (c ExclusiveToggle) Kind() ControlKind { return KindExclusiveToggle }
func (c LineText) Kind() ControlKind        { return KindSingleLineText }
func (c SecretLine) Kind() ControlKind      { return KindSingleLineText }
func (c MultiLineText) Kind() ControlKind   { return KindMultiLineText }
func (c TextChoice) Kind() ControlKind      { return KindTextSelector }
func (c IndexChoice) Kind() ControlKind     { return KindTextSelector }
func (c TokenChoice) Kind() ControlKind     { return KindTokenSelector }
func (c Stepper) Kind() ControlKind         { return KindStepper }
func (c ColorTrigger) Kind() ControlKind    { return KindColorTrigger }
func (c Passive[T]) Kind() ControlKind      { return KindPassive }

func (c Toggle) Widget() any          { return c.w }
func (c GroupToggle) Widget() any     { return c.w }
func (c ExclusiveToggle) Widget() any { return c.w }
func (c LineText) Widget() any        { return c.w }
func (c SecretLine) Widget() any      { return c.w }
func (c MultiLineText) Widget() any   { return c.w }
func (c TextChoice) Widget() any      { return c.w }
func (c IndexChoice) Widget() any     { return c.w }
func (c TokenChoice) Widget() any     { return c.w }
func (c Stepper) Widget() any         { return c.w }
func (c ColorTrigger) Widget() any    { return c.w }
func (c Passive[T]) Widget() any      { return c.w }

// Compile-time interface checks.
var (
	_ Control[bool]           = Toggle{}
	_ Control[bool]           = GroupToggle{}
	_ Control[bool]           = ExclusiveToggle{}
	_ Control[string]         = LineText{}
	_ Control[Secret]         = SecretLine{}
	_ Control[string]         = MultiLineText{}
	_ Control[string]         = TextChoice{}
	_ Control[int]            = IndexChoice{}
	_ Control[Identifier]     = TokenChoice{}
	_ Control[int]            = Stepper{}
	_ Control[Color]          = ColorTrigger{}
	_ Control[StringList]     = Passive[StringList]{}
	_ Control[StructuredList] = Passive[StructuredList]{}
)
