// Package cloud provides the in-memory point and patch containers built on
// top of a schema-defined record layout.
//
// A Point is one record's raw bytes interpreted through a schema; a Patch is
// a growable collection of same-schema records with an incrementally
// maintained bounding box. Both come in owned and borrowed flavors: owned
// containers hold a private buffer allocated through the handlers package,
// borrowed containers are zero-copy views over externally owned bytes (for
// example a wire record payload) and never mutate or grow them.
//
// Field values move through the linear scale/offset transform declared by
// the dimension: real = stored*scale + offset. Record bytes are in the
// host's native byte order; cross-architecture buffers must be normalized
// with the wire package's endian flip before field access.
package cloud
