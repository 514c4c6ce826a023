// FILE: lixenwraith/bind/binding.go
package bind

import (
	"fmt"
	"reflect"
)

// Binding pairs one property with one control. It is the unit the
// declarative INIT and CONNECT operations work on.
type Binding interface {
	// Key returns the full property key.
	Key() string
	// ValueType returns the value type of the property.
	ValueType() ValueType
	// Kind returns the control's interaction kind.
	Kind() ControlKind
	// Control returns the toolkit control.
	Control() any
	// Flags returns the metadata flags attached on Init.
	Flags() Flags
	// HasDefault reports whether a default value is known.
	HasDefault() bool

	// Init pushes the property value into the control, then stores the flags.
	Init(store *FlagStore)
	// Connect attaches the control's change listener to the property setter.
	Connect()
	// Restore writes the default value through the setter and re-initializes
	// the control. It reports false when there is no default.
	Restore() bool
}

type binding[T any] struct {
	key      string
	vt       ValueType
	prop     Property[T]
	ctl      Control[T]
	flags    Flags
	def      T
	hasDef   bool
	restores bool
}

// Bind creates a binding for a property and control whose types the compiler has already matched.
func Bind[T any](key string, p Property[T], c Control[T], flags Flags) Binding {
	return &binding[T]{
		key:      key,
		vt:       valueTypeOf[T](),
		prop:     p,
		ctl:      c,
		flags:    flags,
		restores: c.Kind() != KindPassive,
	}
}

// BindWithDefault is Bind with a default value used by Form.RestoreDefaults.
func BindWithDefault[T any](key string, p Property[T], c Control[T], flags Flags, def T) Binding {
	b := Bind(key, p, c, flags).(*binding[T])
	b.def = def
	b.hasDef = b.restores
	return b
}

func (b *binding[T]) Key() string          { return b.key }
func (b *binding[T]) ValueType() ValueType { return b.vt }
func (b *binding[T]) Kind() ControlKind    { return b.ctl.Kind() }
func (b *binding[T]) Control() any         { return b.ctl.Widget() }
func (b *binding[T]) Flags() Flags         { return b.flags }
func (b *binding[T]) HasDefault() bool     { return b.hasDef }

func (b *binding[T]) Init(store *FlagStore) {
	Initialize(b.prop, b.ctl)
	if store != nil {
		store.Set(b.ctl, b.flags)
	}
}

func (b *binding[T]) Connect() {
	Subscribe(b.prop, b.ctl)
}

func (b *binding[T]) Restore() bool {
	if !b.hasDef || b.prop.Set == nil {
		return false
	}
	b.prop.Set(b.def)
	Initialize(b.prop, b.ctl)
	return true
}

// valueTypeOf maps a Go value type to its table ValueType.
func valueTypeOf[T any]() ValueType {
	switch reflect.TypeOf((*T)(nil)).Elem() {
	case reflect.TypeOf((*bool)(nil)).Elem():
		return TypeBool
	case reflect.TypeOf((*string)(nil)).Elem():
		return TypeString
	case reflect.TypeOf((*Secret)(nil)).Elem():
		return TypeSecret
	case reflect.TypeOf((*int)(nil)).Elem():
		return TypeInt
	case reflect.TypeOf((*Color)(nil)).Elem():
		return TypeColor
	case reflect.TypeOf((*Identifier)(nil)).Elem():
		return TypeUUID
	}
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Slice:
		if reflect.TypeOf((*T)(nil)).Elem().Elem().Kind() == reflect.String {
			return TypeStringList
		}
		return TypeStructuredList
	}
	return TypeInvalid
}

// resolve builds a binding for a table row. This is the table-driven
// counterpart of the compile-time pairing: it fails once, at build time,
// when the row's value type cannot bind to the control.
func resolve(d Declaration, owner any, control any) (Binding, error) {
	switch d.Type {
	case TypeBool:
		return resolveAs[bool](d, owner, control)
	case TypeString:
		return resolveAs[string](d, owner, control)
	case TypeSecret:
		return resolveAs[Secret](d, owner, control)
	case TypeInt:
		return resolveAs[int](d, owner, control)
	case TypeColor:
		return resolveAs[Color](d, owner, control)
	case TypeUUID:
		return resolveAs[Identifier](d, owner, control)
	case TypeStringList:
		return resolveInert[StringList](d, owner, control)
	case TypeStructuredList:
		return resolveInert[StructuredList](d, owner, control)
	}
	return nil, fmt.Errorf("%w: property %q has invalid value type %s", ErrUnsupportedPair, d.Path(), d.Type)
}

func resolveAs[T any](d Declaration, owner any, control any) (Binding, error) {
	c, ok := control.(Control[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s property %q cannot bind to %s", ErrUnsupportedPair, d.Type, d.Path(), describeControl(control))
	}

	p, err := MethodProperty[T](owner, d.Get, d.Set)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", d.Path(), err)
	}

	if d.Default == nil {
		return Bind(d.Path(), p, c, d.Flags), nil
	}

	def, err := decodeValue[T](d.Default)
	if err != nil {
		return nil, fmt.Errorf("property %q: invalid default: %w", d.Path(), err)
	}
	return BindWithDefault(d.Path(), p, c, d.Flags, def), nil
}

// resolveInert binds a value type without a visual form. The accessors are
// only checked for existence because the passive adapters never call them.
func resolveInert[T Inert](d Declaration, owner any, control any) (Binding, error) {
	c, ok := control.(Control[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s property %q cannot bind to %s", ErrUnsupportedPair, d.Type, d.Path(), describeControl(control))
	}

	v := reflect.ValueOf(owner)
	if !v.IsValid() {
		return nil, fmt.Errorf("property %q: %w: owner is nil", d.Path(), ErrPropertyNotFound)
	}
	for _, name := range []string{d.Get, d.Set} {
		if name != "" && !v.MethodByName(name).IsValid() {
			return nil, fmt.Errorf("property %q: %w: %T has no method %q", d.Path(), ErrPropertyNotFound, owner, name)
		}
	}

	p := Property[T]{
		Get: func() T {
			var zero T
			return zero
		},
		Set: func(T) {},
	}
	return Bind(d.Path(), p, c, d.Flags), nil
}

func describeControl(control any) string {
	if d, ok := control.(interface{ Kind() ControlKind }); ok {
		return fmt.Sprintf("%s control %T", d.Kind(), control)
	}
	return fmt.Sprintf("%T", control)
}
