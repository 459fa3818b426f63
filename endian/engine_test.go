package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness_MatchesEncodedInteger(t *testing.T) {
	order := CheckEndianness()

	buf := make([]byte, 2)
	order.PutUint16(buf, 0x0100)

	if order == binary.BigEndian {
		require.Equal(t, byte(0x01), buf[0])
	} else {
		require.Equal(t, byte(0x00), buf[0])
	}
}

func TestNativeEngine_ConsistentWithChecks(t *testing.T) {
	engine := NativeEngine()

	if IsNativeLittleEndian() {
		require.False(t, IsNativeBigEndian())
		require.Equal(t, EndianEngine(binary.LittleEndian), engine)
	} else {
		require.True(t, IsNativeBigEndian())
		require.Equal(t, EndianEngine(binary.BigEndian), engine)
	}
}

func TestEngines_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint32(nil, 0xDEADBEEF)
		require.Len(t, buf, 4)
		require.Equal(t, uint32(0xDEADBEEF), engine.Uint32(buf))

		buf = engine.AppendUint64(buf[:0], 0x0102030405060708)
		require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
	}
}
