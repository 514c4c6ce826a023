// FILE: lixenwraith/bind/decode.go
package bind

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// decodeValue is the single authoritative function for converting a raw
// table value (as produced by the TOML/YAML/JSON parsers) into a typed value.
func decodeValue[T any](raw any) (T, error) {
	var out T
	if err := decodeInto(raw, &out); err != nil {
		return out, err
	}
	return out, nil
}

// decodeInto decodes raw into target, which must be a non-nil pointer.
func decodeInto(raw any, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       getDecodeHook(),
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

// getDecodeHook returns the composite decode hook for all value conversions
func getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		// Engine types
		flagsHookFunc(),
		stringToColorHookFunc(),
		stringToIdentifierHookFunc(),
		stringToSecretHookFunc(),

		// Standard hooks
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

var (
	flagsType      = reflect.TypeOf(Flags(0))
	colorType      = reflect.TypeOf(Color{})
	identifierType = reflect.TypeOf(uuid.UUID{})
	secretType     = reflect.TypeOf(Secret{})
)

// flagsHookFunc handles Flags given as numbers, names or lists of names
func flagsHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != flagsType || f == flagsType {
			return data, nil
		}
		return ParseFlags(data)
	}
}

// stringToColorHookFunc handles hex color strings
func stringToColorHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != colorType {
			return data, nil
		}
		str := strings.TrimSpace(data.(string))
		if len(str) > 7 { // "#rrggbb"
			return nil, fmt.Errorf("invalid color length: %d", len(str))
		}
		return ParseColor(str)
	}
}

// stringToIdentifierHookFunc handles UUID strings
func stringToIdentifierHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != identifierType {
			return data, nil
		}
		str := data.(string)
		if str == "" {
			return uuid.Nil, nil
		}
		id, err := uuid.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier: %w", err)
		}
		return id, nil
	}
}

// stringToSecretHookFunc wraps plain strings into Secret
func stringToSecretHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != secretType {
			return data, nil
		}
		return SecretFromPlainText(data.(string)), nil
	}
}
