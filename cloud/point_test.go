package cloud

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sadkowsr/pointcloud/endian"
	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/format"
	"github.com/sadkowsr/pointcloud/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New(1, []schema.Dimension{
		{Name: "X", Position: 0, Interpretation: format.TypeInt32, Scale: 0.01},
		{Name: "Y", Position: 1, Interpretation: format.TypeInt32, Scale: 0.01},
		{Name: "Z", Position: 2, Interpretation: format.TypeInt32, Scale: 0.01},
		{Name: "Intensity", Position: 3, Interpretation: format.TypeUint16},
	}, schema.WithSRID(4326))
	require.NoError(t, err)

	return s
}

func TestPoint_NewPointIsZeroedAndOwned(t *testing.T) {
	s := testSchema(t)
	pt := NewPoint(s)

	require.Equal(t, Owned, pt.Mode())
	require.Len(t, pt.Data(), s.Size())
	for _, b := range pt.Data() {
		require.Zero(t, b)
	}
}

func TestPoint_FromDoublesStoresScaledIntegers(t *testing.T) {
	s, err := schema.New(1, []schema.Dimension{
		{Name: "X", Position: 0, Interpretation: format.TypeInt32, Scale: 0.01},
		{Name: "Y", Position: 1, Interpretation: format.TypeInt32, Scale: 0.01},
	})
	require.NoError(t, err)

	pt, err := PointFromDoubles(s, []float64{1.23, 4.56})
	require.NoError(t, err)

	engine := endian.NativeEngine()
	require.Equal(t, uint32(123), engine.Uint32(pt.Data()[0:4]))
	require.Equal(t, uint32(456), engine.Uint32(pt.Data()[4:8]))

	x, err := pt.DoubleByIndex(0)
	require.NoError(t, err)
	require.InDelta(t, 1.23, x, 1e-9)
}

func TestPoint_FromDoublesCountMismatch(t *testing.T) {
	s := testSchema(t)
	_, err := PointFromDoubles(s, []float64{1, 2})
	require.ErrorIs(t, err, errs.ErrValueCountMismatch)
}

func TestPoint_SetGetRoundTripWithinHalfScale(t *testing.T) {
	s := testSchema(t)
	pt := NewPoint(s)

	values := []float64{-12.345, 0.004, 9999.99, 42}
	for idx, v := range values {
		require.NoError(t, pt.SetDoubleByIndex(idx, v))
		got, err := pt.DoubleByIndex(idx)
		require.NoError(t, err)

		dim, err := s.Dimension(idx)
		require.NoError(t, err)
		require.LessOrEqual(t, math.Abs(got-v), dim.Scale/2, "dimension %d", idx)
	}
}

func TestPoint_SetDoubleByName(t *testing.T) {
	s := testSchema(t)
	pt := NewPoint(s)

	require.NoError(t, pt.SetDoubleByName("Intensity", 512))
	got, err := pt.DoubleByName("Intensity")
	require.NoError(t, err)
	require.Equal(t, 512.0, got)

	require.ErrorIs(t, pt.SetDoubleByName("Nope", 1), errs.ErrDimensionNotFound)
	_, err = pt.DoubleByName("Nope")
	require.ErrorIs(t, err, errs.ErrDimensionNotFound)
}

func TestPoint_IndexOutOfRange(t *testing.T) {
	s := testSchema(t)
	pt := NewPoint(s)

	_, err := pt.DoubleByIndex(s.NDims())
	require.ErrorIs(t, err, errs.ErrPositionOutOfRange)
	require.ErrorIs(t, pt.SetDoubleByIndex(-1, 0), errs.ErrPositionOutOfRange)
}

func TestPoint_RangeErrorOnOverflow(t *testing.T) {
	s := testSchema(t)
	pt := NewPoint(s)

	// Intensity is uint16: 70000 does not fit, nor does a negative value.
	require.ErrorIs(t, pt.SetDoubleByName("Intensity", 70000), errs.ErrValueOutOfRange)
	require.ErrorIs(t, pt.SetDoubleByName("Intensity", -1), errs.ErrValueOutOfRange)

	// X is int32 with scale 0.01: 2^31/100 overflows after scaling.
	require.ErrorIs(t, pt.SetDoubleByName("X", math.MaxInt32), errs.ErrValueOutOfRange)
}

func TestPoint_FloatDimensionsKeepPrecision(t *testing.T) {
	s, err := schema.New(1, []schema.Dimension{
		{Name: "X", Position: 0, Interpretation: format.TypeFloat64},
		{Name: "Y", Position: 1, Interpretation: format.TypeFloat32},
	})
	require.NoError(t, err)

	pt := NewPoint(s)
	require.NoError(t, pt.SetDoubleByIndex(0, 1.5e300))
	got, err := pt.DoubleByIndex(0)
	require.NoError(t, err)
	require.Equal(t, 1.5e300, got)

	require.NoError(t, pt.SetDoubleByIndex(1, 2.5))
	got, err = pt.DoubleByIndex(1)
	require.NoError(t, err)
	require.Equal(t, 2.5, got)
}

func TestPoint_BorrowedViewsShareBytes(t *testing.T) {
	s := testSchema(t)
	buf := make([]byte, s.Size())

	ro, err := PointFromData(s, buf)
	require.NoError(t, err)
	require.Equal(t, BorrowedRO, ro.Mode())

	rw, err := PointFromDataRW(s, buf)
	require.NoError(t, err)
	require.Equal(t, BorrowedRW, rw.Mode())

	// Writes through the RW view land in the caller's buffer...
	require.NoError(t, rw.SetDoubleByName("X", 3.14))
	x, err := ro.DoubleByName("X")
	require.NoError(t, err)
	require.InDelta(t, 3.14, x, 0.005)

	// ...while the RO view rejects mutation and leaves the buffer intact.
	snapshot := make([]byte, len(buf))
	copy(snapshot, buf)
	require.ErrorIs(t, ro.SetDoubleByName("X", 99), errs.ErrReadOnly)
	require.Equal(t, snapshot, buf)
}

func TestPoint_FromDataLengthChecked(t *testing.T) {
	s := testSchema(t)

	_, err := PointFromData(s, make([]byte, s.Size()-1))
	require.ErrorIs(t, err, errs.ErrBufferSizeMismatch)
	_, err = PointFromDataRW(s, make([]byte, s.Size()+1))
	require.ErrorIs(t, err, errs.ErrBufferSizeMismatch)
}

func TestPoint_Coordinates(t *testing.T) {
	s := testSchema(t)
	pt, err := PointFromDoubles(s, []float64{1.23, 4.56, 7.89, 0})
	require.NoError(t, err)

	x, err := pt.X()
	require.NoError(t, err)
	require.InDelta(t, 1.23, x, 1e-9)
	y, err := pt.Y()
	require.NoError(t, err)
	require.InDelta(t, 4.56, y, 1e-9)
}

func TestPoint_CoordinatesUnresolved(t *testing.T) {
	s, err := schema.New(1, []schema.Dimension{
		{Name: "Intensity", Position: 0, Interpretation: format.TypeUint16},
	})
	require.NoError(t, err)

	pt := NewPoint(s)
	_, err = pt.X()
	require.ErrorIs(t, err, errs.ErrUnresolvedCoordinates)
	_, err = pt.Y()
	require.ErrorIs(t, err, errs.ErrUnresolvedCoordinates)
}

func TestPoint_DoublesRoundTrip(t *testing.T) {
	s := testSchema(t)
	in := []float64{1.23, 4.56, 7.89, 100}
	pt, err := PointFromDoubles(s, in)
	require.NoError(t, err)

	out := pt.Doubles()
	require.Len(t, out, len(in))
	for i := range in {
		require.InDelta(t, in[i], out[i], 0.005, "dimension %d", i)
	}
}
