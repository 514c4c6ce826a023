// FILE: lixenwraith/bind/form.go
package bind

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Form is an ordered set of bindings sharing one flag store.
// Init and Connect are the declarative INIT and CONNECT operations applied
// to every binding; they are independent and may run in either order.
type Form struct {
	bindings  []Binding
	byKey     map[string]Binding
	store     *FlagStore
	logger    *zap.Logger
	connected bool
	mutex     sync.Mutex
}

// NewForm creates a form from ready-made bindings. A nil store gets a fresh
// one and a nil logger discards output.
func NewForm(store *FlagStore, logger *zap.Logger, bindings ...Binding) (*Form, error) {
	if store == nil {
		store = NewFlagStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Form{
		bindings: make([]Binding, 0, len(bindings)),
		byKey:    make(map[string]Binding, len(bindings)),
		store:    store,
		logger:   logger,
	}
	for _, b := range bindings {
		if err := f.add(b); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Form) add(b Binding) error {
	if b == nil {
		return nil
	}
	if err := validateKey(b.Key()); err != nil {
		return err
	}
	if _, exists := f.byKey[b.Key()]; exists {
		return fmt.Errorf("%w: duplicate binding for %q", ErrInvalidKey, b.Key())
	}
	f.bindings = append(f.bindings, b)
	f.byKey[b.Key()] = b
	return nil
}

// Init initializes every control from its property and attaches its flags.
// It may be called again to refresh the controls from the model.
func (f *Form) Init() {
	for _, b := range f.Bindings() {
		b.Init(f.store)
		f.logger.Debug("Initialized control",
			zap.String("key", b.Key()),
			zap.Stringer("type", b.ValueType()),
			zap.Stringer("kind", b.Kind()),
			zap.Stringer("flags", b.Flags()),
		)
	}
}

// Connect subscribes every control to its property. A form connects at most
// once; later calls return ErrAlreadyConnected and attach nothing.
func (f *Form) Connect() error {
	f.mutex.Lock()
	if f.connected {
		n := len(f.bindings)
		f.mutex.Unlock()
		f.logger.Warn("Ignoring repeated connect", zap.Int("bindings", n))
		return ErrAlreadyConnected
	}
	f.connected = true
	f.mutex.Unlock()

	// Listeners may call back into the form, so no lock is held while attaching.
	for _, b := range f.Bindings() {
		b.Connect()
		f.logger.Debug("Connected control",
			zap.String("key", b.Key()),
			zap.Stringer("kind", b.Kind()),
		)
	}
	return nil
}

// Connected reports whether Connect has run.
func (f *Form) Connected() bool {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	return f.connected
}

// RestoreDefaults writes every known default through its setter and
// refreshes the control. It returns the number of properties restored.
func (f *Form) RestoreDefaults() int {
	bindings := f.Bindings()
	restored := 0
	for _, b := range bindings {
		if b.Restore() {
			restored++
		}
	}
	f.logger.Info("Restored defaults", zap.Int("restored", restored), zap.Int("bindings", len(bindings)))
	return restored
}

// Lookup returns the binding for a full property key.
func (f *Form) Lookup(key string) (Binding, bool) {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	b, ok := f.byKey[key]
	return b, ok
}

// Bindings returns the bindings in declaration order.
func (f *Form) Bindings() []Binding {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	out := make([]Binding, len(f.bindings))
	copy(out, f.bindings)
	return out
}

// Flags returns the flags stored for the control bound to key.
func (f *Form) Flags(key string) Flags {
	b, ok := f.Lookup(key)
	if !ok {
		return 0
	}
	return f.store.Get(b.Control())
}

// FlagStore returns the store the form writes flags to.
func (f *Form) FlagStore() *FlagStore {
	return f.store
}
