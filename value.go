// FILE: lixenwraith/bind/value.go
package bind

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap/zapcore"
)

// ValueType identifies the value type of a declared property.
type ValueType int

const (
	TypeInvalid ValueType = iota
	TypeBool
	TypeString
	TypeSecret
	TypeInt
	TypeColor
	TypeUUID
	TypeStringList
	TypeStructuredList
)

var valueTypeNames = map[ValueType]string{
	TypeBool:           "bool",
	TypeString:         "string",
	TypeSecret:         "secret",
	TypeInt:            "int",
	TypeColor:          "color",
	TypeUUID:           "uuid",
	TypeStringList:     "stringlist",
	TypeStructuredList: "structuredlist",
}

// valueTypeAliases maps every accepted table spelling to its type.
// Qt type names are accepted so existing declaration tables load unchanged.
var valueTypeAliases = map[string]ValueType{
	"bool":           TypeBool,
	"boolean":        TypeBool,
	"string":         TypeString,
	"text":           TypeString,
	"qstring":        TypeString,
	"secret":         TypeSecret,
	"password":       TypeSecret,
	"int":            TypeInt,
	"integer":        TypeInt,
	"color":          TypeColor,
	"colour":         TypeColor,
	"qcolor":         TypeColor,
	"uuid":           TypeUUID,
	"identifier":     TypeUUID,
	"quuid":          TypeUUID,
	"stringlist":     TypeStringList,
	"qstringlist":    TypeStringList,
	"structuredlist": TypeStructuredList,
	"json":           TypeStructuredList,
	"qjsonarray":     TypeStructuredList,
}

// String returns the canonical table spelling of the type.
func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// ParseValueType converts a table type name to a ValueType. Matching is case-insensitive.
func ParseValueType(s string) (ValueType, error) {
	if t, ok := valueTypeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return TypeInvalid, fmt.Errorf("unknown value type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	if _, ok := valueTypeNames[t]; !ok {
		return nil, fmt.Errorf("invalid value type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ValueType) UnmarshalText(text []byte) error {
	parsed, err := ParseValueType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Color is the value type of color properties.
type Color = colorful.Color

// Identifier is the value type of keyed-selection properties.
type Identifier = uuid.UUID

// StringList is a list of text values. It has no single-control representation.
type StringList []string

// StructuredList is a list of structured documents. It has no single-control representation.
type StructuredList []any

// Inert constrains the value types that only bind to passive controls.
type Inert interface {
	~[]string | ~[]any
}

const redacted = "[REDACTED]"

// Secret holds text that must not be rendered as cleartext.
// All formatting and encoding paths print a placeholder; PlainText is the only way out.
type Secret struct {
	plain string
}

// SecretFromPlainText wraps cleartext into a Secret.
func SecretFromPlainText(plain string) Secret {
	return Secret{plain: plain}
}

// PlainText unwraps the cleartext.
func (s Secret) PlainText() string {
	return s.plain
}

// IsEmpty reports whether the wrapped text is empty.
func (s Secret) IsEmpty() bool {
	return s.plain == ""
}

// Equal compares two secrets in constant time.
func (s Secret) Equal(other Secret) bool {
	return subtle.ConstantTimeCompare([]byte(s.plain), []byte(other.plain)) == 1
}

// String implements fmt.Stringer without revealing the cleartext.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer without revealing the cleartext.
func (s Secret) GoString() string {
	return "bind.Secret{" + redacted + "}"
}

// MarshalText implements encoding.TextMarshaler without revealing the cleartext.
func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// MarshalJSON implements json.Marshaler without revealing the cleartext.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s Secret) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("value", redacted)
	enc.AddBool("set", !s.IsEmpty())
	return nil
}
