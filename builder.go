// FILE: lixenwraith/bind/builder.go
package bind

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ValidatorFunc defines the signature for a function that can validate a Form.
// It receives the fully built *Form and should return an error if validation fails.
type ValidatorFunc func(f *Form) error

// Builder provides a fluent interface for building forms from a binding table
type Builder struct {
	owner      any
	schema     *Schema
	schemaFile string
	class      string
	controls   map[string]any
	bindings   []Binding
	store      *FlagStore
	logger     *zap.Logger
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new form builder
func NewBuilder() *Builder {
	return &Builder{
		controls:   make(map[string]any),
		validators: make([]ValidatorFunc, 0),
	}
}

// WithOwner sets the configuration object whose getters and setters the table names
func (b *Builder) WithOwner(owner any) *Builder {
	b.owner = owner
	return b
}

// WithSchema sets the binding table
func (b *Builder) WithSchema(s *Schema) *Builder {
	b.schema = s
	return b
}

// WithSchemaFile sets a file to load the binding table from
func (b *Builder) WithSchemaFile(path string) *Builder {
	b.schemaFile = path
	return b
}

// WithClass limits the table to rows of one configuration class
func (b *Builder) WithClass(class string) *Builder {
	b.class = class
	return b
}

// WithControl registers a control descriptor under the getter name it binds to
func (b *Builder) WithControl(name string, control any) *Builder {
	if name == "" {
		b.err = errors.Join(b.err, fmt.Errorf("%w: control name cannot be empty", ErrInvalidKey))
		return b
	}
	b.controls[name] = control
	return b
}

// WithControls registers several control descriptors at once
func (b *Builder) WithControls(controls map[string]any) *Builder {
	for name, control := range controls {
		b.WithControl(name, control)
	}
	return b
}

// WithBinding adds a binding built with Bind, bypassing the table
func (b *Builder) WithBinding(bindings ...Binding) *Builder {
	b.bindings = append(b.bindings, bindings...)
	return b
}

// WithFlagStore sets the flag store shared with presentation code
func (b *Builder) WithFlagStore(store *FlagStore) *Builder {
	b.store = store
	return b
}

// WithLogger sets the logger
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	b.logger = logger
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build resolves every table row against the owner and the registered
// controls. Unsupported pairs and missing accessors or controls are all
// reported together; no form is returned if any row fails.
func (b *Builder) Build() (*Form, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := b.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	schema := b.schema
	if b.schemaFile != "" {
		loaded, err := LoadSchemaFile(b.schemaFile)
		if err != nil {
			return nil, err
		}
		schema = loaded
	}
	if schema != nil && b.class != "" {
		schema = schema.ForClass(b.class)
	}

	var errs []error
	bindings := make([]Binding, 0, len(b.bindings))

	if schema != nil {
		if err := schema.Validate(); err != nil {
			return nil, err
		}
		for _, d := range schema.Properties {
			control, ok := b.controls[d.Get]
			if !ok {
				errs = append(errs, fmt.Errorf("property %q: %w: no control named %q", d.Path(), ErrControlNotFound, d.Get))
				continue
			}
			binding, err := resolve(d, b.owner, control)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			logger.Debug("Resolved binding",
				zap.String("class", d.Class),
				zap.String("key", d.Path()),
				zap.Stringer("type", d.Type),
				zap.Stringer("kind", binding.Kind()),
			)
			bindings = append(bindings, binding)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	bindings = append(bindings, b.bindings...)

	form, err := NewForm(b.store, logger, bindings...)
	if err != nil {
		return nil, err
	}

	// Run validators
	for _, validator := range b.validators {
		if err := validator(form); err != nil {
			return nil, fmt.Errorf("form validation failed: %w", err)
		}
	}

	return form, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Form {
	form, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("form build failed: %v", err))
	}
	return form
}
