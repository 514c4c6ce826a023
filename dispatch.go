// FILE: lixenwraith/bind/dispatch.go
package bind

// Initialize pushes the property's current value into the control.
// The adapter is selected from the static types of p and c; a pair without
// an adapter does not compile.
func Initialize[T any](p Property[T], c Control[T]) {
	if c == nil || p.Get == nil {
		return
	}
	c.initialize(p.Get)
}

// Subscribe attaches one listener to the control that forwards every change
// to the property's setter. Each call attaches another listener; callers
// needing a single listener per pair should go through Form.Connect.
// There is no unsubscribe: the listener lives as long as the control.
func Subscribe[T any](p Property[T], c Control[T]) {
	if c == nil || p.Set == nil {
		return
	}
	c.subscribe(p.Set)
}
