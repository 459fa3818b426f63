// Package pointcloud provides a schema-driven binary codec for geometric
// point records.
//
// A schema describes the exact binary layout of one point record as an
// ordered set of named, typed dimensions (X, Y, Intensity, ...), each with a
// linear scale/offset transform between its stored representation and its
// real-world double value. Points and patches (point collections with a
// maintained bounding box) are containers over that layout, either owning
// their bytes or borrowing them zero-copy from external buffers. The wire
// package converts containers to and from size-prefixed, schema-identified
// records for storage or transport, with optional payload compression and
// explicit endian normalization.
//
// # Basic Usage
//
// Building a schema and round-tripping a point:
//
//	import (
//	    "github.com/sadkowsr/pointcloud"
//	    "github.com/sadkowsr/pointcloud/format"
//	    "github.com/sadkowsr/pointcloud/schema"
//	)
//
//	s, _ := pointcloud.NewSchema(1, []schema.Dimension{
//	    {Name: "X", Position: 0, Interpretation: format.TypeInt32, Scale: 0.01},
//	    {Name: "Y", Position: 1, Interpretation: format.TypeInt32, Scale: 0.01},
//	    {Name: "Z", Position: 2, Interpretation: format.TypeInt32, Scale: 0.01},
//	    {Name: "Intensity", Position: 3, Interpretation: format.TypeUint16},
//	}, schema.WithSRID(4326))
//
//	pt, _ := pointcloud.NewPointFromDoubles(s, []float64{1.23, 4.56, 7.89, 100})
//
//	codec := pointcloud.NewCodec()
//	record, _ := codec.EncodePoint(pt)
//
//	reg := pointcloud.NewRegistry(s)
//	decoded, _ := codec.DecodePoint(record, reg)
//	x, _ := decoded.X() // 1.23
//
// Patches accumulate points and their bounding box:
//
//	pa := pointcloud.NewPatch(s)
//	_ = pa.AddPoint(pt)
//	record, _ = codec.EncodePatch(pa)
//
// This package is a thin convenience layer; the schema, cloud, wire,
// compress and handlers packages carry the full API.
package pointcloud

import (
	"github.com/sadkowsr/pointcloud/cloud"
	"github.com/sadkowsr/pointcloud/schema"
	"github.com/sadkowsr/pointcloud/wire"
)

// Version is the point cloud format version this codec implements.
const Version = "1.0"

// NewSchema builds a validated, immutable schema from externally parsed
// dimension descriptors. See schema.New for validation rules and options.
func NewSchema(pcid uint32, dims []schema.Dimension, opts ...schema.Option) (*schema.Schema, error) {
	return schema.New(pcid, dims, opts...)
}

// NewPoint creates an owned, zeroed point for the schema.
func NewPoint(s *schema.Schema) *cloud.Point {
	return cloud.NewPoint(s)
}

// NewPointFromDoubles creates an owned point from one real-world value per
// dimension, in position order.
func NewPointFromDoubles(s *schema.Schema, values []float64) (*cloud.Point, error) {
	return cloud.PointFromDoubles(s, values)
}

// NewPatch creates an empty owned patch for the schema.
func NewPatch(s *schema.Schema) *cloud.Patch {
	return cloud.NewPatch(s)
}

// NewPatchFromPoints builds an owned patch by copying a set of same-schema
// points.
func NewPatchFromPoints(points []*cloud.Point) (*cloud.Patch, error) {
	return cloud.PatchFromPoints(points)
}

// NewCodec creates a wire codec with default (native byte order) settings.
func NewCodec(opts ...wire.Option) *wire.Codec {
	return wire.NewCodec(opts...)
}

// NewRegistry builds a map-backed schema registry keyed by PCID, for
// standalone use; embedding applications usually implement
// wire.SchemaRegistry over their own schema storage.
func NewRegistry(schemas ...*schema.Schema) wire.StaticRegistry {
	return wire.NewStaticRegistry(schemas...)
}
