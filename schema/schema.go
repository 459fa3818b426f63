// Package schema defines the record layout a point cloud is encoded
// against: an ordered set of typed dimensions plus the metadata (identifier,
// spatial reference, compression selector) a wire record needs to round-trip
// through storage.
//
// A Schema is built once from externally parsed dimension descriptors,
// validated, and immutable afterwards. Points and patches hold it by
// reference and never copy it, so one Schema may back any number of
// containers; concurrent reads are safe as long as nobody mutates published
// dimension slices.
package schema

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/format"
	"github.com/sadkowsr/pointcloud/handlers"
	"github.com/sadkowsr/pointcloud/internal/options"
)

const unresolved = -1

// Schema is an immutable, validated record layout.
type Schema struct {
	pcid        uint32
	srid        uint32
	compression format.CompressionType
	dims        []Dimension
	size        int
	xPos        int
	yPos        int
	byName      map[string]int
}

type config struct {
	srid        uint32
	compression format.CompressionType
	xName       string
	yName       string
}

// Option configures schema construction.
type Option = options.Option[*config]

// WithSRID sets the spatial reference identifier.
func WithSRID(srid uint32) Option {
	return options.NoError(func(cfg *config) {
		cfg.srid = srid
	})
}

// WithCompression sets the compression selector applied to patch payloads
// encoded against this schema.
func WithCompression(compression format.CompressionType) Option {
	return options.NoError(func(cfg *config) {
		cfg.compression = compression
	})
}

// WithCoordinates names the dimensions holding the X and Y coordinates,
// overriding the case-insensitive "X"/"Y" name convention. Construction
// fails if either name is absent from the dimension list.
func WithCoordinates(xName, yName string) Option {
	return options.New(func(cfg *config) error {
		if xName == "" || yName == "" {
			return fmt.Errorf("%w: coordinate dimension names must be non-empty", errs.ErrUnresolvedCoordinates)
		}
		cfg.xName = xName
		cfg.yName = yName

		return nil
	})
}

// New builds a Schema from externally parsed dimension descriptors.
//
// Dimensions may arrive in any order; they are sorted by Position, which
// must form a contiguous 0..ndims-1 range with no duplicates. Byte offsets
// are computed as the cumulative sum of sizes in position order, a zero Size
// is derived from the interpretation, and a zero Scale defaults to 1.
// Duplicate names, gapped positions, size/interpretation disagreement, and
// unknown interpretations all fail construction.
//
// The input slice is copied; the caller keeps ownership of it.
func New(pcid uint32, dims []Dimension, opts ...Option) (*Schema, error) {
	if len(dims) == 0 {
		return nil, errs.ErrEmptySchema
	}

	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	owned := make([]Dimension, len(dims))
	copy(owned, dims)

	ndims := len(owned)
	seen := make([]bool, ndims)
	for i := range owned {
		dim := &owned[i]

		width := dim.Interpretation.Size()
		if width == 0 {
			return nil, fmt.Errorf("%w: dimension %q", errs.ErrInvalidInterpretation, dim.Name)
		}
		if dim.Size == 0 {
			dim.Size = width
		} else if dim.Size != width {
			return nil, fmt.Errorf("%w: dimension %q has size %d, interpretation %s is %d bytes",
				errs.ErrDimensionSizeMismatch, dim.Name, dim.Size, dim.Interpretation, width)
		}

		if dim.Scale == 0 {
			dim.Scale = 1
		}

		if dim.Position < 0 || dim.Position >= ndims {
			return nil, fmt.Errorf("%w: dimension %q at position %d of %d",
				errs.ErrGappedDimensionPositions, dim.Name, dim.Position, ndims)
		}
		if seen[dim.Position] {
			return nil, fmt.Errorf("%w: position %d", errs.ErrDuplicateDimensionPosition, dim.Position)
		}
		seen[dim.Position] = true
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].Position < owned[j].Position
	})

	s := &Schema{
		pcid:        pcid,
		srid:        cfg.srid,
		compression: cfg.compression,
		dims:        owned,
		xPos:        unresolved,
		yPos:        unresolved,
		byName:      make(map[string]int, ndims),
	}

	offset := 0
	for i := range owned {
		dim := &owned[i]
		if _, dup := s.byName[dim.Name]; dup {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateDimensionName, dim.Name)
		}
		s.byName[dim.Name] = i

		dim.ByteOffset = offset
		offset += dim.Size
	}
	s.size = offset

	if err := s.resolveCoordinates(cfg); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Schema) resolveCoordinates(cfg *config) error {
	if cfg.xName != "" {
		xi, ok := s.byName[cfg.xName]
		if !ok {
			return fmt.Errorf("%w: no dimension named %q", errs.ErrUnresolvedCoordinates, cfg.xName)
		}
		yi, ok := s.byName[cfg.yName]
		if !ok {
			return fmt.Errorf("%w: no dimension named %q", errs.ErrUnresolvedCoordinates, cfg.yName)
		}
		s.xPos, s.yPos = xi, yi

		return nil
	}

	for i := range s.dims {
		if s.xPos == unresolved && s.dims[i].IsCoordinateX() {
			s.xPos = i
		}
		if s.yPos == unresolved && s.dims[i].IsCoordinateY() {
			s.yPos = i
		}
	}

	// Name convention is best-effort; schemas without spatial semantics stay
	// constructible and only coordinate-dependent operations fail later.
	return nil
}

// PCID returns the schema identifier used to resolve the schema through an
// external registry during decode.
func (s *Schema) PCID() uint32 {
	return s.pcid
}

// SRID returns the spatial reference identifier.
func (s *Schema) SRID() uint32 {
	return s.srid
}

// Compression returns the patch payload compression selector.
func (s *Schema) Compression() format.CompressionType {
	return s.compression
}

// NDims returns the number of dimensions.
func (s *Schema) NDims() int {
	return len(s.dims)
}

// Size returns the byte width of one point record.
func (s *Schema) Size() int {
	return s.size
}

// Dimensions returns the descriptors in position order. The returned slice
// is the schema's own storage; callers must not modify it.
func (s *Schema) Dimensions() []Dimension {
	return s.dims
}

// Dimension returns the descriptor at the given position.
func (s *Schema) Dimension(position int) (*Dimension, error) {
	if position < 0 || position >= len(s.dims) {
		return nil, fmt.Errorf("%w: position %d, schema has %d dimensions",
			errs.ErrPositionOutOfRange, position, len(s.dims))
	}

	return &s.dims[position], nil
}

// DimensionByName returns the descriptor with the given name through the
// O(1) name index.
func (s *Schema) DimensionByName(name string) (*Dimension, error) {
	i, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrDimensionNotFound, name)
	}

	return &s.dims[i], nil
}

// XPosition returns the index of the X coordinate dimension, with ok=false
// when the schema does not resolve one.
func (s *Schema) XPosition() (int, bool) {
	return s.xPos, s.xPos != unresolved
}

// YPosition returns the index of the Y coordinate dimension.
func (s *Schema) YPosition() (int, bool) {
	return s.yPos, s.yPos != unresolved
}

// IsValid reports whether the schema carries everything needed to work with
// spatial point data: at least one dimension, a size equal to the sum of the
// dimension sizes, and resolved X/Y coordinate positions. It never returns
// an error; failures are reported as false, with the reason emitted through
// the warning handler.
func (s *Schema) IsValid() bool {
	if len(s.dims) == 0 {
		handlers.Warnf("schema %d has no dimensions", s.pcid)
		return false
	}

	sum := 0
	for i := range s.dims {
		sum += s.dims[i].Size
	}
	if sum != s.size {
		handlers.Warnf("schema %d size %d does not match dimension sum %d", s.pcid, s.size, sum)
		return false
	}

	if s.xPos == unresolved || s.yPos == unresolved {
		handlers.Warnf("schema %d does not resolve x/y coordinate dimensions", s.pcid)
		return false
	}

	return true
}

// Fingerprint returns a 64-bit xxHash of the canonical layout: dimension
// names, interpretations, sizes and scale/offset transforms in position
// order. Two schemas with the same fingerprint describe byte-compatible
// records, which makes it a cheap cross-check on registry lookups.
func (s *Schema) Fingerprint() uint64 {
	digest := xxhash.New()
	var buf [8]byte
	for i := range s.dims {
		dim := &s.dims[i]
		_, _ = digest.WriteString(dim.Name)
		buf[0] = byte(dim.Interpretation)
		buf[1] = byte(dim.Size)
		_, _ = digest.Write(buf[:2])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(dim.Scale))
		_, _ = digest.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(dim.Offset))
		_, _ = digest.Write(buf[:])
	}

	return digest.Sum64()
}

// Same reports whether other is the identical schema instance or shares its
// identifier and layout fingerprint. Containers use pointer identity; Same
// is the looser check for registry-resolved schemas.
func (s *Schema) Same(other *Schema) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}

	return s.pcid == other.pcid && s.Fingerprint() == other.Fingerprint()
}
