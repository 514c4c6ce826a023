// FILE: lixenwraith/bind/flags.go
package bind

import (
	"fmt"
	"math"
	"math/bits"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// Flags is an application-defined bitmask attached to a control.
// The engine stores it but never interprets it.
type Flags uint32

// Well-known flag bits. Applications may define more above FlagRestartRequired.
const (
	FlagHidden Flags = 1 << iota
	FlagAdvanced
	FlagLegacy
	FlagRestartRequired
)

// FlagsAttribute is the attribute name used when flags are mirrored into a control's attribute bag.
const FlagsAttribute = "ConfigPropertyFlags"

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagHidden, "hidden"},
	{FlagAdvanced, "advanced"},
	{FlagLegacy, "legacy"},
	{FlagRestartRequired, "restart"},
}

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// String renders named bits joined by '|' and any remaining bits in hex.
func (f Flags) String() string {
	if f == 0 {
		return "standard"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}

// ParseFlags converts a table value into Flags. Accepted forms are an
// integer, a string of names or numbers separated by '|' or ',', and a
// list of such values.
func ParseFlags(v any) (Flags, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case Flags:
		return val, nil
	case string:
		return parseFlagString(val)
	case []string:
		var f Flags
		for _, s := range val {
			part, err := parseFlagString(s)
			if err != nil {
				return 0, err
			}
			f |= part
		}
		return f, nil
	case []any:
		var f Flags
		for _, item := range val {
			part, err := ParseFlags(item)
			if err != nil {
				return 0, err
			}
			f |= part
		}
		return f, nil
	}

	var u uint64
	if err := mapstructure.Decode(v, &u); err != nil {
		return 0, fmt.Errorf("invalid flags value %v (%T): %w", v, v, err)
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("invalid flags value %v (%T): out of range", v, v)
	}
	return Flags(u), nil
}

func parseFlagString(s string) (Flags, error) {
	var f Flags
	for _, token := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" || token == "standard" {
			continue
		}
		if n, err := strconv.ParseUint(token, 0, 32); err == nil {
			f |= Flags(n)
			continue
		}
		found := false
		for _, fn := range flagNames {
			if fn.name == token {
				f |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown flag %q", token)
		}
	}
	return f, nil
}

// Count returns the number of set bits.
func (f Flags) Count() int {
	return bits.OnesCount32(uint32(f))
}

// AttributeBag is implemented by controls carrying a generic named-attribute store.
type AttributeBag interface {
	Attribute(name string) (any, bool)
	SetAttribute(name string, value any)
}

// FlagStore keeps Flags per control. It is a side table keyed by control
// identity; controls that also implement AttributeBag get the flags mirrored
// under FlagsAttribute, and reads prefer that attribute.
// Control descriptors are resolved to the toolkit control they wrap.
type FlagStore struct {
	flags map[any]Flags
	mutex sync.RWMutex
}

// NewFlagStore creates an empty store.
func NewFlagStore() *FlagStore {
	return &FlagStore{
		flags: make(map[any]Flags),
	}
}

// Set stores flags for control. The last write wins.
// Controls that cannot be used as map keys are only written to their attribute bag, if any.
func (s *FlagStore) Set(control any, flags Flags) {
	key := controlKey(control)
	if key == nil {
		return
	}

	if bag, ok := key.(AttributeBag); ok {
		bag.SetAttribute(FlagsAttribute, uint32(flags))
	}

	if !reflect.ValueOf(key).Comparable() {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.flags[key] = flags
}

// Get returns the flags stored for control, or zero when none were stored
// or the stored attribute cannot be read as a bitmask.
func (s *FlagStore) Get(control any) Flags {
	key := controlKey(control)
	if key == nil {
		return 0
	}

	if bag, ok := key.(AttributeBag); ok {
		if raw, exists := bag.Attribute(FlagsAttribute); exists {
			f, err := decodeFlagsAttribute(raw)
			if err != nil {
				return 0
			}
			return f
		}
	}

	if !reflect.ValueOf(key).Comparable() {
		return 0
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.flags[key]
}

// Delete forgets the flags of control. Attribute bags are left untouched.
func (s *FlagStore) Delete(control any) {
	key := controlKey(control)
	if key == nil || !reflect.ValueOf(key).Comparable() {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.flags, key)
}

// controlKey resolves descriptors to the control they wrap.
func controlKey(control any) any {
	if d, ok := control.(interface{ Widget() any }); ok {
		return d.Widget()
	}
	return control
}

// decodeFlagsAttribute reads a bag attribute as a bitmask. Only integers in
// the uint32 range and their string forms are accepted.
func decodeFlagsAttribute(raw any) (Flags, error) {
	v := reflect.ValueOf(raw)
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n := v.Uint(); n <= math.MaxUint32 {
			return Flags(n), nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n := v.Int(); n >= 0 && n <= math.MaxUint32 {
			return Flags(n), nil
		}
	case reflect.String:
		n, err := strconv.ParseUint(strings.TrimSpace(v.String()), 0, 32)
		if err != nil {
			return 0, fmt.Errorf("malformed flags attribute %q: %w", v.String(), err)
		}
		return Flags(n), nil
	}
	return 0, fmt.Errorf("malformed flags attribute %v (%T)", raw, raw)
}
