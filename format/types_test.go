package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpretation_Size(t *testing.T) {
	tests := []struct {
		interp Interpretation
		size   int
	}{
		{TypeInt8, 1},
		{TypeUint8, 1},
		{TypeInt16, 2},
		{TypeUint16, 2},
		{TypeInt32, 4},
		{TypeUint32, 4},
		{TypeInt64, 8},
		{TypeUint64, 8},
		{TypeFloat32, 4},
		{TypeFloat64, 8},
		{TypeUnknown, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.size, tt.interp.Size(), tt.interp.String())
	}
}

func TestInterpretation_Classification(t *testing.T) {
	require.True(t, TypeInt32.IsInteger())
	require.True(t, TypeInt32.IsSigned())
	require.False(t, TypeInt32.IsFloat())

	require.True(t, TypeUint64.IsInteger())
	require.False(t, TypeUint64.IsSigned())

	require.False(t, TypeFloat32.IsInteger())
	require.True(t, TypeFloat32.IsSigned())
	require.True(t, TypeFloat64.IsFloat())
}

func TestParseInterpretation_RoundTripsStrings(t *testing.T) {
	for _, interp := range []Interpretation{
		TypeInt8, TypeUint8, TypeInt16, TypeUint16,
		TypeInt32, TypeUint32, TypeInt64, TypeUint64,
		TypeFloat32, TypeFloat64,
	} {
		require.Equal(t, interp, ParseInterpretation(interp.String()))
	}

	require.Equal(t, TypeInt32, ParseInterpretation("int32"))
	require.Equal(t, TypeUnknown, ParseInterpretation("complex128"))
}

func TestInterpretation_MarshalJSON(t *testing.T) {
	out, err := TypeFloat64.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"double"`, string(out))
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xEE).String())
}

func TestEndianness_String(t *testing.T) {
	require.Equal(t, "NDR", NDR.String())
	require.Equal(t, "XDR", XDR.String())
}
