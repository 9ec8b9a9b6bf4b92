// Package jsoncodec is the structured-format codec shared by generated types.
// It wraps sonic in its encoding/json compatible configuration so generated
// MarshalJSON/UnmarshalJSON methods and hand-written callers agree on output.
package jsoncodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
)

var defaultConfig = sonic.ConfigStd

// RawMessage is a raw encoded JSON value.
type RawMessage = json.RawMessage

func Marshal(v any) ([]byte, error) {
	return defaultConfig.Marshal(v)
}

func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return defaultConfig.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v any) error {
	return defaultConfig.Unmarshal(data, v)
}

func Encode(w io.Writer, v any) error {
	enc := defaultConfig.NewEncoder(w)
	return enc.Encode(v)
}

func Decode(r io.Reader, v any) error {
	dec := defaultConfig.NewDecoder(r)
	return dec.Decode(v)
}

// MarshalEnum encodes an enum value as its symbolic name. Values without a
// name are written as bare numbers so they survive a round trip.
func MarshalEnum(v int32, names map[int32]string) ([]byte, error) {
	if name, ok := names[v]; ok {
		return Marshal(name)
	}
	return strconv.AppendInt(nil, int64(v), 10), nil
}

// UnmarshalEnum decodes an enum written either as a name or as a number.
// JSON null decodes to the zero value.
func UnmarshalEnum(data []byte, enum string, values map[string]int32) (int32, error) {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return 0, nil
	case len(data) > 0 && data[0] == '"':
		var name string
		if err := Unmarshal(data, &name); err != nil {
			return 0, fmt.Errorf("%s: %w", enum, err)
		}
		v, ok := values[name]
		if !ok {
			return 0, fmt.Errorf("%s: unknown value %q", enum, name)
		}
		return v, nil
	default:
		v, err := strconv.ParseInt(string(data), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid value %s", enum, data)
		}
		return int32(v), nil
	}
}

// CheckOneof reports an error when more than one member of a oneof is set.
func CheckOneof(name string, set ...bool) error {
	n := 0
	for _, ok := range set {
		if ok {
			n++
		}
	}
	if n > 1 {
		return fmt.Errorf("oneof %s: %d members set, at most one allowed", name, n)
	}
	return nil
}
