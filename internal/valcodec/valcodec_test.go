package valcodec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/pkg/types"
)

func TestEncodeString_ZeroTerminatedUTF16LE(t *testing.T) {
	v, err := Encode(types.REG_SZ, "AB")
	require.NoError(t, err)
	require.Equal(t, types.REG_SZ, v.Type)
	require.Equal(t, []byte{'A', 0, 'B', 0, 0, 0}, v.Data)
}

func TestDecodeString_ToleratesMissingTerminator(t *testing.T) {
	s, err := DecodeString([]byte{'H', 0, 'i', 0})
	require.NoError(t, err)
	require.Equal(t, "Hi", s)

	s, err = DecodeString([]byte{'H', 0, 'i', 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, "Hi", s)
}

func TestDecodeString_OddLength(t *testing.T) {
	_, err := DecodeString([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestStringRoundTrip_NonASCII(t *testing.T) {
	for _, s := range []string{"", "plain", "müller", "日本語", "emoji 🎉"} {
		v, err := Encode(types.REG_SZ, s)
		require.NoError(t, err)
		got, err := DecodeString(v.Data)
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
}

func TestMultiStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []string
	}{
		{name: "empty list", in: nil},
		{name: "single", in: []string{"one"}},
		{name: "several", in: []string{"a", "bb", "ccc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Encode(types.REG_MULTI_SZ, append([]string{}, tt.in...))
			require.NoError(t, err)
			got, err := DecodeStrings(v.Data)
			require.NoError(t, err)
			require.Equal(t, tt.in, got)
		})
	}
}

func TestDWordEncoding(t *testing.T) {
	v, err := Encode(types.REG_DWORD, uint32(0x01020304))
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, v.Data)

	be, err := Encode(types.REG_DWORD_BE, uint32(0x01020304))
	require.NoError(t, err)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, be.Data)

	u, err := DecodeDWord(v.Data, binary.LittleEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), u)

	u, err = DecodeDWord(be.Data, binary.BigEndian)
	require.NoError(t, err)
	require.Equal(t, uint32(0x01020304), u)
}

func TestDWordRejectsOutOfRange(t *testing.T) {
	_, err := Encode(types.REG_DWORD, int64(1)<<33)
	require.Error(t, err)

	_, err = Encode(types.REG_DWORD, -1)
	require.Error(t, err)
}

func TestQWordRoundTrip(t *testing.T) {
	v, err := Encode(types.REG_QWORD, uint64(1)<<40|7)
	require.NoError(t, err)
	require.Len(t, v.Data, 8)

	u, err := DecodeQWord(v.Data)
	require.NoError(t, err)
	require.Equal(t, uint64(1)<<40|7, u)
}

func TestDecodeSizedIntegerErrors(t *testing.T) {
	_, err := DecodeDWord([]byte{1, 2}, binary.LittleEndian)
	require.Error(t, err)

	_, err = DecodeQWord([]byte{1, 2, 3, 4})
	require.Error(t, err)
}

func TestBinaryEncodeCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	v, err := Encode(types.REG_BINARY, src)
	require.NoError(t, err)

	src[0] = 99
	require.Equal(t, []byte{1, 2, 3}, v.Data)
}

func TestInfer(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  types.RegType
	}{
		{name: "string", value: "s", want: types.REG_SZ},
		{name: "string slice", value: []string{"a"}, want: types.REG_MULTI_SZ},
		{name: "bytes", value: []byte{1}, want: types.REG_BINARY},
		{name: "bool", value: true, want: types.REG_DWORD},
		{name: "small int", value: 42, want: types.REG_DWORD},
		{name: "uint32", value: uint32(7), want: types.REG_DWORD},
		{name: "large int", value: int(1) << 40, want: types.REG_QWORD},
		{name: "int64", value: int64(5), want: types.REG_QWORD},
		{name: "uint64", value: uint64(5), want: types.REG_QWORD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestInfer_Unsupported(t *testing.T) {
	_, err := Infer(struct{}{})
	require.Error(t, err)

	var terr *types.Error
	require.ErrorAs(t, err, &terr)
	require.Equal(t, types.ErrKindType, terr.Kind)
}

func TestEncode_InfersWhenTypeIsNone(t *testing.T) {
	v, err := Encode(types.REG_NONE, 42)
	require.NoError(t, err)
	require.Equal(t, types.REG_DWORD, v.Type)
}

func TestEncode_WrongGoTypeForKind(t *testing.T) {
	_, err := Encode(types.REG_SZ, 42)
	require.Error(t, err)

	_, err = Encode(types.REG_MULTI_SZ, "not a slice")
	require.Error(t, err)

	_, err = Encode(types.REG_BINARY, "not bytes")
	require.Error(t, err)
}

func TestDecode_NaturalTypes(t *testing.T) {
	sz, _ := Encode(types.REG_SZ, "x")
	v, err := Decode(sz)
	require.NoError(t, err)
	require.Equal(t, "x", v)

	multi, _ := Encode(types.REG_MULTI_SZ, []string{"x"})
	v, err = Decode(multi)
	require.NoError(t, err)
	require.Equal(t, []string{"x"}, v)

	dw, _ := Encode(types.REG_DWORD, uint32(3))
	v, err = Decode(dw)
	require.NoError(t, err)
	require.Equal(t, uint32(3), v)

	qw, _ := Encode(types.REG_QWORD, uint64(3))
	v, err = Decode(qw)
	require.NoError(t, err)
	require.Equal(t, uint64(3), v)

	bin, _ := Encode(types.REG_BINARY, []byte{9})
	v, err = Decode(bin)
	require.NoError(t, err)
	require.Equal(t, []byte{9}, v)
}
