package cloud

import (
	"fmt"

	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/handlers"
	"github.com/sadkowsr/pointcloud/schema"
)

// Point is a single record's raw bytes interpreted through a schema. The
// buffer is always exactly schema.Size() bytes long; ownership decides
// whether it is private (Owned) or a zero-copy view over external memory
// (BorrowedRO/BorrowedRW).
//
// The schema is held by reference and shared; a Point never mutates it.
type Point struct {
	schema *schema.Schema
	data   []byte
	mode   Ownership
}

// NewPoint creates an owned point with a zeroed buffer of schema size,
// allocated through the installed allocation handler.
func NewPoint(s *schema.Schema) *Point {
	return &Point{
		schema: s,
		data:   handlers.Alloc(s.Size()),
		mode:   Owned,
	}
}

// PointFromData wraps externally owned bytes as a read-only point without
// copying. The buffer must be exactly schema size. Mutating operations fail
// with ErrReadOnly, and the wrapped buffer is never touched.
func PointFromData(s *schema.Schema, data []byte) (*Point, error) {
	if len(data) != s.Size() {
		return nil, fmt.Errorf("%w: got %d bytes, schema %d needs %d",
			errs.ErrBufferSizeMismatch, len(data), s.PCID(), s.Size())
	}

	return &Point{schema: s, data: data, mode: BorrowedRO}, nil
}

// PointFromDataRW wraps externally owned bytes as a mutable view without
// copying. Writes go through to the supplied buffer in place; the point
// still never grows, reallocates or releases it.
func PointFromDataRW(s *schema.Schema, data []byte) (*Point, error) {
	if len(data) != s.Size() {
		return nil, fmt.Errorf("%w: got %d bytes, schema %d needs %d",
			errs.ErrBufferSizeMismatch, len(data), s.PCID(), s.Size())
	}

	return &Point{schema: s, data: data, mode: BorrowedRW}, nil
}

// PointFromDoubles creates an owned point from one real-world value per
// dimension, in position order. Each value runs through the dimension's
// inverse scale/offset transform; integer dimensions fail with
// ErrValueOutOfRange when the rounded stored value exceeds their width.
func PointFromDoubles(s *schema.Schema, values []float64) (*Point, error) {
	if len(values) != s.NDims() {
		return nil, fmt.Errorf("%w: got %d values, schema %d has %d dimensions",
			errs.ErrValueCountMismatch, len(values), s.PCID(), s.NDims())
	}

	pt := NewPoint(s)
	dims := s.Dimensions()
	for i := range dims {
		if err := writeDouble(pt.data, &dims[i], values[i]); err != nil {
			return nil, err
		}
	}

	return pt, nil
}

// Schema returns the schema the point is interpreted through.
func (p *Point) Schema() *schema.Schema {
	return p.schema
}

// Mode returns the point's ownership tag.
func (p *Point) Mode() Ownership {
	return p.mode
}

// Data returns the point's raw record bytes. For borrowed points this is
// the externally owned buffer itself.
func (p *Point) Data() []byte {
	return p.data
}

// DoubleByIndex reads the dimension at the given position, widens the stored
// value to a float64 and applies the scale/offset transform.
func (p *Point) DoubleByIndex(idx int) (float64, error) {
	dim, err := p.schema.Dimension(idx)
	if err != nil {
		return 0, err
	}

	return readDouble(p.data, dim), nil
}

// DoubleByName reads the named dimension through the schema's name index.
func (p *Point) DoubleByName(name string) (float64, error) {
	dim, err := p.schema.DimensionByName(name)
	if err != nil {
		return 0, err
	}

	return readDouble(p.data, dim), nil
}

// SetDoubleByIndex writes a real-world value into the dimension at the given
// position through the inverse scale/offset transform.
func (p *Point) SetDoubleByIndex(idx int, val float64) error {
	if !p.mode.Mutable() {
		return fmt.Errorf("%w: point is %s", errs.ErrReadOnly, p.mode)
	}
	dim, err := p.schema.Dimension(idx)
	if err != nil {
		return err
	}

	return writeDouble(p.data, dim, val)
}

// SetDoubleByName writes a real-world value into the named dimension.
func (p *Point) SetDoubleByName(name string, val float64) error {
	if !p.mode.Mutable() {
		return fmt.Errorf("%w: point is %s", errs.ErrReadOnly, p.mode)
	}
	dim, err := p.schema.DimensionByName(name)
	if err != nil {
		return err
	}

	return writeDouble(p.data, dim, val)
}

// X returns the X coordinate via the schema's resolved coordinate position.
func (p *Point) X() (float64, error) {
	pos, ok := p.schema.XPosition()
	if !ok {
		return 0, errs.ErrUnresolvedCoordinates
	}

	return p.DoubleByIndex(pos)
}

// Y returns the Y coordinate via the schema's resolved coordinate position.
func (p *Point) Y() (float64, error) {
	pos, ok := p.schema.YPosition()
	if !ok {
		return 0, errs.ErrUnresolvedCoordinates
	}

	return p.DoubleByIndex(pos)
}

// Doubles reads every dimension in position order into a fresh slice of
// real-world values, the inverse of PointFromDoubles.
func (p *Point) Doubles() []float64 {
	dims := p.schema.Dimensions()
	values := make([]float64, len(dims))
	for i := range dims {
		values[i] = readDouble(p.data, &dims[i])
	}

	return values
}
