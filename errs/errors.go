// Package errs defines the sentinel errors returned by the pointcloud codec.
//
// All failures are reported through these values (possibly wrapped with
// call-site context); callers should match them with errors.Is. Diagnostic
// messages emitted through the handlers package are observability only and
// never substitute for error returns.
package errs

import "errors"

// Schema validation errors.
var (
	// ErrEmptySchema indicates a schema was built with no dimensions.
	ErrEmptySchema = errors.New("schema has no dimensions")
	// ErrDuplicateDimensionName indicates two dimensions share a name.
	ErrDuplicateDimensionName = errors.New("duplicate dimension name")
	// ErrGappedDimensionPositions indicates dimension positions are not a
	// contiguous 0..ndims-1 range.
	ErrGappedDimensionPositions = errors.New("dimension positions are not contiguous from zero")
	// ErrDuplicateDimensionPosition indicates two dimensions share a position.
	ErrDuplicateDimensionPosition = errors.New("duplicate dimension position")
	// ErrDimensionSizeMismatch indicates a dimension size disagrees with its
	// interpretation width.
	ErrDimensionSizeMismatch = errors.New("dimension size does not match interpretation width")
	// ErrInvalidInterpretation indicates a dimension has an unknown storage kind.
	ErrInvalidInterpretation = errors.New("invalid dimension interpretation")
	// ErrUnresolvedCoordinates indicates an operation requires X/Y coordinate
	// dimensions that the schema does not resolve.
	ErrUnresolvedCoordinates = errors.New("schema does not resolve x/y coordinate dimensions")
)

// Lookup errors.
var (
	// ErrDimensionNotFound indicates an unknown dimension name.
	ErrDimensionNotFound = errors.New("dimension name not found")
	// ErrPositionOutOfRange indicates a dimension index outside 0..ndims-1.
	ErrPositionOutOfRange = errors.New("dimension position out of range")
	// ErrSchemaNotRegistered indicates a registry lookup miss during decode.
	ErrSchemaNotRegistered = errors.New("schema identifier not registered")
)

// Container errors.
var (
	// ErrSchemaMismatch indicates an operation across incompatible schemas.
	ErrSchemaMismatch = errors.New("point and patch schemas differ")
	// ErrReadOnly indicates mutation was attempted on a borrowed container.
	ErrReadOnly = errors.New("container is read-only")
	// ErrValueOutOfRange indicates a scaled value does not fit the target
	// storage width.
	ErrValueOutOfRange = errors.New("scaled value exceeds dimension storage width")
	// ErrBufferSizeMismatch indicates a supplied buffer does not match the
	// schema-implied length.
	ErrBufferSizeMismatch = errors.New("buffer length does not match schema size")
	// ErrValueCountMismatch indicates a double array with the wrong number of
	// elements for the schema.
	ErrValueCountMismatch = errors.New("value count does not match schema dimension count")
	// ErrNoPoints indicates a patch was requested from an empty point set.
	ErrNoPoints = errors.New("no points supplied")
)

// Wire codec errors.
var (
	// ErrMalformedRecord indicates a wire record too short for its header or
	// with a size field disagreeing with its payload.
	ErrMalformedRecord = errors.New("malformed wire record")
	// ErrMalformedHex indicates a hex string with odd length or non-hex bytes.
	ErrMalformedHex = errors.New("malformed hex input")
	// ErrUnknownCompression indicates a compression selector with no codec
	// registered for it.
	ErrUnknownCompression = errors.New("unknown compression type")
	// ErrPointCountMismatch indicates a patch payload whose length disagrees
	// with its declared point count.
	ErrPointCountMismatch = errors.New("payload length does not match point count")
)
