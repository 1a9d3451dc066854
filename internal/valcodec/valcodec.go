// Package valcodec converts between Go values and raw registry value payloads.
//
// Registry string kinds (REG_SZ, REG_EXPAND_SZ, REG_MULTI_SZ, REG_LINK) are
// stored as zero-terminated UTF-16LE; integer kinds are stored little-endian
// (REG_DWORD_BE big-endian). Everything else passes through as raw bytes.
package valcodec

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/regkit/pkg/types"
)

const (
	dwordSize = 4
	qwordSize = 8
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Infer maps a Go value to the registry type it would naturally be stored as.
// Returns ErrTypeMismatch for values with no registry representation.
func Infer(v any) (types.RegType, error) {
	switch x := v.(type) {
	case string:
		return types.REG_SZ, nil
	case []string:
		return types.REG_MULTI_SZ, nil
	case []byte:
		return types.REG_BINARY, nil
	case bool:
		return types.REG_DWORD, nil
	case int8, int16, int32, uint8, uint16, uint32:
		return types.REG_DWORD, nil
	case int:
		if x >= 0 && uint64(x) <= math.MaxUint32 {
			return types.REG_DWORD, nil
		}
		return types.REG_QWORD, nil
	case uint:
		if uint64(x) <= math.MaxUint32 {
			return types.REG_DWORD, nil
		}
		return types.REG_QWORD, nil
	case int64, uint64:
		return types.REG_QWORD, nil
	default:
		return types.REG_NONE, &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("no registry type for Go value of type %T", v),
		}
	}
}

// Encode converts v into a registry value of type t. Passing REG_NONE infers
// the type from v first.
func Encode(t types.RegType, v any) (types.Value, error) {
	if t == types.REG_NONE {
		inferred, err := Infer(v)
		if err != nil {
			return types.Value{}, err
		}
		t = inferred
	}

	switch t {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		s, ok := v.(string)
		if !ok {
			return types.Value{}, typeErr(t, v)
		}
		data, err := encodeUTF16LEZ(s)
		if err != nil {
			return types.Value{}, err
		}
		return types.Value{Type: t, Data: data}, nil

	case types.REG_MULTI_SZ:
		ss, ok := v.([]string)
		if !ok {
			return types.Value{}, typeErr(t, v)
		}
		var data []byte
		for _, s := range ss {
			enc, err := encodeUTF16LEZ(s)
			if err != nil {
				return types.Value{}, err
			}
			data = append(data, enc...)
		}
		// List terminator.
		data = append(data, 0, 0)
		return types.Value{Type: t, Data: data}, nil

	case types.REG_DWORD, types.REG_DWORD_BE:
		u, ok := toUint64(v)
		if !ok || u > math.MaxUint32 {
			return types.Value{}, typeErr(t, v)
		}
		data := make([]byte, dwordSize)
		if t == types.REG_DWORD_BE {
			binary.BigEndian.PutUint32(data, uint32(u))
		} else {
			binary.LittleEndian.PutUint32(data, uint32(u))
		}
		return types.Value{Type: t, Data: data}, nil

	case types.REG_QWORD:
		u, ok := toUint64(v)
		if !ok {
			return types.Value{}, typeErr(t, v)
		}
		data := make([]byte, qwordSize)
		binary.LittleEndian.PutUint64(data, u)
		return types.Value{Type: t, Data: data}, nil

	default:
		// REG_BINARY and the resource kinds carry raw bytes.
		b, ok := v.([]byte)
		if !ok {
			return types.Value{}, typeErr(t, v)
		}
		data := make([]byte, len(b))
		copy(data, b)
		return types.Value{Type: t, Data: data}, nil
	}
}

// Decode converts a stored registry value into its natural Go representation:
// string kinds decode to string (REG_MULTI_SZ to []string), integer kinds to
// uint32/uint64, everything else to a copy of the raw bytes.
func Decode(v types.Value) (any, error) {
	switch v.Type {
	case types.REG_SZ, types.REG_EXPAND_SZ, types.REG_LINK:
		return DecodeString(v.Data)
	case types.REG_MULTI_SZ:
		return DecodeStrings(v.Data)
	case types.REG_DWORD:
		return DecodeDWord(v.Data, binary.LittleEndian)
	case types.REG_DWORD_BE:
		return DecodeDWord(v.Data, binary.BigEndian)
	case types.REG_QWORD:
		return DecodeQWord(v.Data)
	default:
		data := make([]byte, len(v.Data))
		copy(data, v.Data)
		return data, nil
	}
}

// DecodeString decodes zero-terminated UTF-16LE data into a Go string.
func DecodeString(data []byte) (string, error) {
	if len(data)%2 != 0 {
		return "", &types.Error{Kind: types.ErrKindType, Msg: "utf16 string has odd length"}
	}
	// Trim the terminator if present; some writers omit it.
	if len(data) >= 2 && data[len(data)-2] == 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-2]
	}
	decoded, err := utf16LE.NewDecoder().Bytes(data)
	if err != nil {
		return "", &types.Error{Kind: types.ErrKindType, Msg: "decode utf16 string", Err: err}
	}
	return string(decoded), nil
}

// DecodeStrings decodes a REG_MULTI_SZ payload: zero-terminated UTF-16LE
// strings back to back, with an empty string terminating the list.
func DecodeStrings(data []byte) ([]string, error) {
	if len(data)%2 != 0 {
		return nil, &types.Error{Kind: types.ErrKindType, Msg: "multisz has odd length"}
	}
	var result []string
	start := 0
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			if i == start {
				break
			}
			s, err := DecodeString(data[start:i])
			if err != nil {
				return nil, err
			}
			result = append(result, s)
			start = i + 2
		}
	}
	return result, nil
}

// DecodeDWord decodes a 4-byte integer with the given byte order.
func DecodeDWord(data []byte, order binary.ByteOrder) (uint32, error) {
	if len(data) != dwordSize {
		return 0, &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("dword has %d bytes, want %d", len(data), dwordSize),
		}
	}
	return order.Uint32(data), nil
}

// DecodeQWord decodes an 8-byte little-endian integer.
func DecodeQWord(data []byte) (uint64, error) {
	if len(data) != qwordSize {
		return 0, &types.Error{
			Kind: types.ErrKindType,
			Msg:  fmt.Sprintf("qword has %d bytes, want %d", len(data), qwordSize),
		}
	}
	return binary.LittleEndian.Uint64(data), nil
}

// encodeUTF16LEZ encodes a string to UTF-16LE with a zero terminator.
func encodeUTF16LEZ(s string) ([]byte, error) {
	encoded, err := utf16LE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindType, Msg: "encode utf16 string", Err: err}
	}
	return append(encoded, 0, 0), nil
}

func toUint64(v any) (uint64, bool) {
	switch x := v.(type) {
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case int:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int8:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int16:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int32:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case int64:
		if x < 0 {
			return 0, false
		}
		return uint64(x), true
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	default:
		return 0, false
	}
}

func typeErr(t types.RegType, v any) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("cannot encode Go value of type %T as %s", v, t),
	}
}
