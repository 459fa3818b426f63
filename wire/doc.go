// Package wire converts in-memory point and patch containers to and from
// the flat serialized records used for storage and transport.
//
// Record layouts are byte-exact:
//
//	point:  [u32 total_size][u32 pcid][schema.size bytes of field data]
//	patch:  [u32 total_size][f32 xmin][f32 xmax][f32 ymin][f32 ymax]
//	        [u32 pcid][u32 npoints][payload: raw or compressed]
//
// total_size counts the whole record including the size field. The patch
// bounding box is narrowed to 32-bit floats for compact storage; decode
// recomputes exact bounds from the records instead of trusting it. Headers
// are written with the codec's engine (native order by default); field
// payload bytes are always native, with FlipEndian as the explicit
// normalization step for cross-architecture exchange.
//
// Decoding resolves the schema identifier through a SchemaRegistry supplied
// by the caller; the registry is an external collaborator, keeping the codec
// free of global state.
package wire
