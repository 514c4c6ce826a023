// FILE: lixenwraith/bind/property.go
package bind

import (
	"fmt"
	"reflect"
)

// Property describes one bindable attribute of a configuration object.
// Get and Set must address the same attribute of the same owner.
// The owner is only captured by the closures; a Property never owns it.
type Property[T any] struct {
	Get func() T
	Set func(T)
}

// NewProperty creates a Property from a getter and setter pair.
func NewProperty[T any](get func() T, set func(T)) Property[T] {
	return Property[T]{Get: get, Set: set}
}

// VarProperty creates a Property reading and writing the variable v points to.
func VarProperty[T any](v *T) Property[T] {
	return Property[T]{
		Get: func() T { return *v },
		Set: func(val T) { *v = val },
	}
}

// MethodProperty resolves a getter and setter on owner by method name.
// The getter must have the signature func() T and the setter func(T).
// An empty setter name yields a read-only property whose Set does nothing.
func MethodProperty[T any](owner any, getter, setter string) (Property[T], error) {
	var p Property[T]

	v := reflect.ValueOf(owner)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return p, fmt.Errorf("%w: owner is nil", ErrPropertyNotFound)
	}

	want := reflect.TypeOf((*T)(nil)).Elem()

	get := v.MethodByName(getter)
	if !get.IsValid() {
		return p, fmt.Errorf("%w: %T has no method %q", ErrPropertyNotFound, owner, getter)
	}
	gt := get.Type()
	if gt.NumIn() != 0 || gt.NumOut() != 1 || gt.Out(0) != want {
		return p, fmt.Errorf("%w: %T.%s is %s, want func() %s", ErrTypeMismatch, owner, getter, gt, want)
	}
	getFn, ok := get.Interface().(func() T)
	if !ok {
		return p, fmt.Errorf("%w: %T.%s cannot be used as func() %s", ErrTypeMismatch, owner, getter, want)
	}
	p.Get = getFn

	if setter == "" {
		p.Set = func(T) {}
		return p, nil
	}

	set := v.MethodByName(setter)
	if !set.IsValid() {
		return p, fmt.Errorf("%w: %T has no method %q", ErrPropertyNotFound, owner, setter)
	}
	st := set.Type()
	if st.NumIn() != 1 || st.NumOut() != 0 || st.In(0) != want {
		return p, fmt.Errorf("%w: %T.%s is %s, want func(%s)", ErrTypeMismatch, owner, setter, st, want)
	}
	setFn, ok := set.Interface().(func(T))
	if !ok {
		return p, fmt.Errorf("%w: %T.%s cannot be used as func(%s)", ErrTypeMismatch, owner, setter, want)
	}
	p.Set = setFn

	return p, nil
}
