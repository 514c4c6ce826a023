// FILE: lixenwraith/bind/errors.go
package bind

import "errors"

// Errors returned while building bindings. Adapters themselves never fail.
var (
	// ErrUnsupportedPair indicates a declared value type cannot be bound to the given control kind.
	ErrUnsupportedPair = errors.New("unsupported value type and control kind pair")

	// ErrPropertyNotFound indicates the owner has no getter or setter with the declared name.
	ErrPropertyNotFound = errors.New("property accessor not found")

	// ErrTypeMismatch indicates a getter or setter signature does not match the declared value type.
	ErrTypeMismatch = errors.New("accessor type mismatch")

	// ErrControlNotFound indicates no control was registered under the declared name.
	ErrControlNotFound = errors.New("control not found")

	// ErrInvalidKey indicates a declaration key is empty or has invalid segments.
	ErrInvalidKey = errors.New("invalid property key")

	// ErrAlreadyConnected indicates Connect was called more than once on a form.
	ErrAlreadyConnected = errors.New("form already connected")

	// ErrSchemaFormat indicates a declaration table could not be parsed.
	ErrSchemaFormat = errors.New("invalid schema format")
)
