package schema

import (
	"strings"

	"github.com/sadkowsr/pointcloud/format"
)

// Dimension describes one named, typed field of a point record, e.g. X, Y or
// Intensity. A Dimension is the parsed form of one <pc:dimension> entry in a
// pointcloud schema document; parsing the document itself is the embedder's
// concern.
//
// Stored values relate to real-world values through the linear transform
// real = stored*Scale + Offset.
type Dimension struct {
	// Name uniquely identifies the dimension within its schema.
	Name string `json:"name"`

	// Description is free text carried from the schema document.
	Description string `json:"description,omitempty"`

	// Position is the 0-based ordinal of the dimension. Positions across a
	// schema must form a contiguous, duplicate-free 0..ndims-1 range.
	Position int `json:"position"`

	// Size is the number of bytes the dimension occupies in a record. Leave
	// zero to derive it from the interpretation; a non-zero value must match
	// the interpretation width.
	Size int `json:"size"`

	// ByteOffset is the dimension's offset within a record. It is computed
	// during schema construction as the cumulative sum of preceding sizes;
	// any input value is ignored.
	ByteOffset int `json:"byteoffset"`

	// Interpretation is the numeric storage kind of the dimension.
	Interpretation format.Interpretation `json:"interpretation"`

	// Scale multiplies the stored value. Leave zero for the default of 1.
	Scale float64 `json:"scale"`

	// Offset shifts the scaled value.
	Offset float64 `json:"offset"`

	// Active marks the dimension as participating in active storage.
	// Inactive dimensions keep their slot in the record layout but are
	// reserved from the embedding format's point of view.
	Active bool `json:"active"`
}

// IsCoordinateX reports whether the dimension is the X coordinate by the
// name convention used when no explicit coordinate option is given.
func (d *Dimension) IsCoordinateX() bool {
	return strings.EqualFold(d.Name, "X")
}

// IsCoordinateY reports whether the dimension is the Y coordinate by name
// convention.
func (d *Dimension) IsCoordinateY() bool {
	return strings.EqualFold(d.Name, "Y")
}
