package cloud

import (
	"fmt"

	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/handlers"
	"github.com/sadkowsr/pointcloud/schema"
)

// initialPatchPoints sizes the first allocation of an owned patch buffer.
// Growth doubles from there, keeping appends amortized O(1).
const initialPatchPoints = 16

// Patch is a collection of same-schema point records stored contiguously,
// with a bounding box maintained incrementally as points are added. Owned
// patches grow; borrowed patches are read-only views over external memory
// (typically a decoded wire record payload) with zero capacity.
type Patch struct {
	schema  *schema.Schema
	data    []byte
	npoints int
	bounds  Bounds
	mode    Ownership
}

// NewPatch creates an empty owned patch. The bounding box starts at the
// empty sentinel so the first added point establishes real bounds.
func NewPatch(s *schema.Schema) *Patch {
	return &Patch{
		schema: s,
		data:   handlers.Alloc(initialPatchPoints * s.Size())[:0],
		bounds: EmptyBounds(),
		mode:   Owned,
	}
}

// PatchFromPoints builds an owned patch from a set of points that must all
// reference the identical schema instance. Each point's bytes are copied
// into one contiguous buffer; the source points are neither mutated nor
// taken ownership of. Capacity equals the point count.
func PatchFromPoints(points []*Point) (*Patch, error) {
	if len(points) == 0 {
		return nil, errs.ErrNoPoints
	}

	s := points[0].Schema()
	for i, pt := range points {
		if pt.Schema() != s {
			return nil, fmt.Errorf("%w: point %d references a different schema", errs.ErrSchemaMismatch, i)
		}
	}

	size := s.Size()
	data := handlers.Alloc(len(points) * size)
	bounds := EmptyBounds()
	for i, pt := range points {
		copy(data[i*size:], pt.Data())
		if x, err := pt.X(); err == nil {
			y, _ := pt.Y()
			bounds.Extend(x, y)
		}
	}

	return &Patch{
		schema:  s,
		data:    data,
		npoints: len(points),
		bounds:  bounds,
		mode:    Owned,
	}, nil
}

// PatchFromData wraps externally owned bytes holding npoints concatenated
// records as a read-only patch without copying. The bounding box is computed
// by scanning the records when the schema resolves coordinates; it stays at
// the empty sentinel otherwise.
func PatchFromData(s *schema.Schema, data []byte, npoints int) (*Patch, error) {
	if len(data) != npoints*s.Size() {
		return nil, fmt.Errorf("%w: %d points of %d bytes need %d, got %d",
			errs.ErrPointCountMismatch, npoints, s.Size(), npoints*s.Size(), len(data))
	}

	return &Patch{
		schema:  s,
		data:    data,
		npoints: npoints,
		bounds:  scanBounds(s, data, npoints),
		mode:    BorrowedRO,
	}, nil
}

// PatchFromDataOwned is PatchFromData for a buffer whose ownership passes to
// the patch, as when a compressed wire payload is materialized into fresh
// memory. The resulting patch is growable.
func PatchFromDataOwned(s *schema.Schema, data []byte, npoints int) (*Patch, error) {
	if len(data) != npoints*s.Size() {
		return nil, fmt.Errorf("%w: %d points of %d bytes need %d, got %d",
			errs.ErrPointCountMismatch, npoints, s.Size(), npoints*s.Size(), len(data))
	}

	return &Patch{
		schema:  s,
		data:    data,
		npoints: npoints,
		bounds:  scanBounds(s, data, npoints),
		mode:    Owned,
	}, nil
}

func scanBounds(s *schema.Schema, data []byte, npoints int) Bounds {
	bounds := EmptyBounds()
	xPos, okX := s.XPosition()
	yPos, okY := s.YPosition()
	if !okX || !okY {
		return bounds
	}

	xDim, _ := s.Dimension(xPos)
	yDim, _ := s.Dimension(yPos)
	size := s.Size()
	for i := 0; i < npoints; i++ {
		rec := data[i*size : (i+1)*size]
		bounds.Extend(readDouble(rec, xDim), readDouble(rec, yDim))
	}

	return bounds
}

// AddPoint appends a copy of the point's bytes and expands the bounding box
// with its coordinates. Borrowed patches fail with ErrReadOnly, points from
// a different schema instance with ErrSchemaMismatch. A failed add leaves
// the patch unchanged.
func (pa *Patch) AddPoint(pt *Point) error {
	if pa.mode != Owned {
		return fmt.Errorf("%w: patch is %s", errs.ErrReadOnly, pa.mode)
	}
	if pt.Schema() != pa.schema {
		return errs.ErrSchemaMismatch
	}

	x, err := pt.X()
	if err != nil {
		return err
	}
	y, err := pt.Y()
	if err != nil {
		return err
	}

	size := pa.schema.Size()
	used := pa.npoints * size
	if used+size > cap(pa.data) {
		newCap := 2 * cap(pa.data)
		if newCap < used+size {
			newCap = used + size
		}
		pa.data = handlers.Realloc(pa.data, newCap)[:used]
	}

	pa.data = append(pa.data, pt.Data()...)
	pa.bounds.Extend(x, y)
	pa.npoints++

	return nil
}

// Schema returns the schema shared by every record in the patch.
func (pa *Patch) Schema() *schema.Schema {
	return pa.schema
}

// Mode returns the patch's ownership tag.
func (pa *Patch) Mode() Ownership {
	return pa.mode
}

// Len returns the number of points in the patch.
func (pa *Patch) Len() int {
	return pa.npoints
}

// Cap returns how many points the patch can hold without growing. Borrowed
// patches report 0, since they never grow.
func (pa *Patch) Cap() int {
	if pa.mode != Owned {
		return 0
	}

	return cap(pa.data) / pa.schema.Size()
}

// Bounds returns the current bounding box.
func (pa *Patch) Bounds() Bounds {
	return pa.bounds
}

// Data returns the concatenated record bytes, npoints*schema.Size() long.
func (pa *Patch) Data() []byte {
	return pa.data[:pa.npoints*pa.schema.Size()]
}

// PointAt returns a read-only zero-copy view over the i-th record. The view
// stays valid until an owned patch grows its buffer.
func (pa *Patch) PointAt(i int) (*Point, error) {
	if i < 0 || i >= pa.npoints {
		return nil, fmt.Errorf("%w: point %d of %d", errs.ErrPositionOutOfRange, i, pa.npoints)
	}

	size := pa.schema.Size()

	return PointFromData(pa.schema, pa.data[i*size:(i+1)*size])
}
