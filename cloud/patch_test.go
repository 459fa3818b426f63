package cloud

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/format"
	"github.com/sadkowsr/pointcloud/schema"
)

func testPoint(t *testing.T, s *schema.Schema, x, y float64) *Point {
	t.Helper()
	values := make([]float64, s.NDims())
	values[0], values[1] = x, y
	pt, err := PointFromDoubles(s, values)
	require.NoError(t, err)

	return pt
}

func TestPatch_NewPatchIsEmpty(t *testing.T) {
	s := testSchema(t)
	pa := NewPatch(s)

	require.Equal(t, Owned, pa.Mode())
	require.Zero(t, pa.Len())
	require.Positive(t, pa.Cap())
	require.True(t, pa.Bounds().IsEmpty())
	require.Empty(t, pa.Data())
}

func TestPatch_FirstPointEstablishesBounds(t *testing.T) {
	s := testSchema(t)
	pa := NewPatch(s)

	require.NoError(t, pa.AddPoint(testPoint(t, s, 1.0, 2.0)))

	b := pa.Bounds()
	require.Equal(t, 1.0, b.XMin)
	require.Equal(t, 1.0, b.XMax)
	require.Equal(t, 2.0, b.YMin)
	require.Equal(t, 2.0, b.YMax)
}

func TestPatch_BoundsExpandMonotonically(t *testing.T) {
	s := testSchema(t)
	pa := NewPatch(s)

	require.NoError(t, pa.AddPoint(testPoint(t, s, 1.0, 2.0)))
	require.NoError(t, pa.AddPoint(testPoint(t, s, 5.0, 2.0)))

	b := pa.Bounds()
	require.Equal(t, 1.0, b.XMin, "xmin unchanged")
	require.Equal(t, 5.0, b.XMax, "xmax expanded")
	require.Equal(t, 2.0, b.YMin, "ymin unchanged")
	require.Equal(t, 2.0, b.YMax, "ymax unchanged")

	// An interior point changes nothing.
	require.NoError(t, pa.AddPoint(testPoint(t, s, 3.0, 2.0)))
	require.Equal(t, b, pa.Bounds())
}

func TestPatch_AddPointGrowsAmortized(t *testing.T) {
	s := testSchema(t)
	pa := NewPatch(s)

	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, pa.AddPoint(testPoint(t, s, float64(i), float64(-i))))
	}

	require.Equal(t, n, pa.Len())
	require.GreaterOrEqual(t, pa.Cap(), n)
	require.Len(t, pa.Data(), n*s.Size())

	b := pa.Bounds()
	require.Equal(t, 0.0, b.XMin)
	require.Equal(t, float64(n-1), b.XMax)
	require.Equal(t, float64(-(n-1)), b.YMin)
	require.Equal(t, 0.0, b.YMax)

	// Records stay addressable and intact after growth.
	pt, err := pa.PointAt(n - 1)
	require.NoError(t, err)
	x, err := pt.X()
	require.NoError(t, err)
	require.InDelta(t, float64(n-1), x, 0.005)
}

func TestPatch_AddPointSchemaMismatch(t *testing.T) {
	s := testSchema(t)
	other := testSchema(t) // same layout, different instance
	pa := NewPatch(s)

	err := pa.AddPoint(testPoint(t, other, 1, 2))
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
	require.Zero(t, pa.Len())
}

func TestPatch_FromPoints(t *testing.T) {
	s := testSchema(t)
	points := []*Point{
		testPoint(t, s, 1.0, 10.0),
		testPoint(t, s, 2.0, 20.0),
		testPoint(t, s, 3.0, 30.0),
	}

	pa, err := PatchFromPoints(points)
	require.NoError(t, err)

	require.Equal(t, 3, pa.Len())
	require.Equal(t, 3, pa.Cap())
	require.Equal(t, Bounds{XMin: 1, XMax: 3, YMin: 10, YMax: 30}, pa.Bounds())

	// Source points are copied, not referenced.
	require.NoError(t, points[0].SetDoubleByName("X", 99))
	first, err := pa.PointAt(0)
	require.NoError(t, err)
	x, err := first.X()
	require.NoError(t, err)
	require.InDelta(t, 1.0, x, 0.005)
}

func TestPatch_FromPointsSchemaMismatch(t *testing.T) {
	a := testSchema(t)
	b := testSchema(t)

	pa, err := PatchFromPoints([]*Point{
		testPoint(t, a, 1, 2),
		testPoint(t, b, 3, 4),
	})
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
	require.Nil(t, pa)
}

func TestPatch_FromPointsEmpty(t *testing.T) {
	_, err := PatchFromPoints(nil)
	require.ErrorIs(t, err, errs.ErrNoPoints)
}

func TestPatch_FromDataIsReadOnly(t *testing.T) {
	s := testSchema(t)
	src := NewPatch(s)
	require.NoError(t, src.AddPoint(testPoint(t, s, 1.0, 2.0)))
	require.NoError(t, src.AddPoint(testPoint(t, s, 3.0, 4.0)))

	pa, err := PatchFromData(s, src.Data(), 2)
	require.NoError(t, err)

	require.Equal(t, BorrowedRO, pa.Mode())
	require.Equal(t, 2, pa.Len())
	require.Zero(t, pa.Cap(), "borrowed patches report zero capacity")
	require.Equal(t, src.Bounds(), pa.Bounds(), "bounds recomputed by scanning")

	err = pa.AddPoint(testPoint(t, s, 5.0, 6.0))
	require.ErrorIs(t, err, errs.ErrReadOnly)
	require.Equal(t, 2, pa.Len())
}

func TestPatch_FromDataLengthChecked(t *testing.T) {
	s := testSchema(t)
	_, err := PatchFromData(s, make([]byte, s.Size()), 2)
	require.ErrorIs(t, err, errs.ErrPointCountMismatch)
}

func TestPatch_FromDataOwnedIsGrowable(t *testing.T) {
	s := testSchema(t)
	src := NewPatch(s)
	require.NoError(t, src.AddPoint(testPoint(t, s, 1.0, 2.0)))

	buf := make([]byte, len(src.Data()))
	copy(buf, src.Data())

	pa, err := PatchFromDataOwned(s, buf, 1)
	require.NoError(t, err)
	require.Equal(t, Owned, pa.Mode())

	require.NoError(t, pa.AddPoint(testPoint(t, s, 3.0, 4.0)))
	require.Equal(t, 2, pa.Len())
	require.Equal(t, Bounds{XMin: 1, XMax: 3, YMin: 2, YMax: 4}, pa.Bounds())
}

func TestPatch_AddPointRequiresCoordinates(t *testing.T) {
	s, err := schema.New(1, []schema.Dimension{
		{Name: "Intensity", Position: 0, Interpretation: format.TypeUint16},
	})
	require.NoError(t, err)

	pa := NewPatch(s)
	pt := NewPoint(s)
	require.ErrorIs(t, pa.AddPoint(pt), errs.ErrUnresolvedCoordinates)
	require.Zero(t, pa.Len())
}

func TestPatch_PointAt(t *testing.T) {
	s := testSchema(t)
	pa := NewPatch(s)
	require.NoError(t, pa.AddPoint(testPoint(t, s, 1.0, 2.0)))

	_, err := pa.PointAt(1)
	require.ErrorIs(t, err, errs.ErrPositionOutOfRange)
	_, err = pa.PointAt(-1)
	require.ErrorIs(t, err, errs.ErrPositionOutOfRange)

	pt, err := pa.PointAt(0)
	require.NoError(t, err)
	require.Equal(t, BorrowedRO, pt.Mode())
	require.ErrorIs(t, pt.SetDoubleByName("X", 9), errs.ErrReadOnly)
}
