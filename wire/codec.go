package wire

import (
	"fmt"
	"math"

	"github.com/sadkowsr/pointcloud/cloud"
	"github.com/sadkowsr/pointcloud/compress"
	"github.com/sadkowsr/pointcloud/endian"
	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/format"
	"github.com/sadkowsr/pointcloud/handlers"
	"github.com/sadkowsr/pointcloud/internal/options"
	"github.com/sadkowsr/pointcloud/internal/pool"
)

// Record header layout offsets.
const (
	PointHeaderSize = 8  // [u32 size][u32 pcid]
	PatchHeaderSize = 28 // [u32 size][4 x f32 bounds][u32 pcid][u32 npoints]

	pointPCIDOffset   = 4
	patchBoundsOffset = 4
	patchPCIDOffset   = 20
	patchCountOffset  = 24
)

// Codec encodes and decodes wire records. The zero-configuration codec
// writes headers in the host's native byte order, matching the convention
// that records travel machine-endian with normalization as an explicit step.
type Codec struct {
	engine endian.EndianEngine
}

// Option configures a Codec.
type Option = options.Option[*Codec]

// WithEngine sets the byte order used for record headers.
func WithEngine(engine endian.EndianEngine) Option {
	return options.NoError(func(c *Codec) {
		c.engine = engine
	})
}

// WithLittleEndian writes headers little-endian regardless of host order.
func WithLittleEndian() Option {
	return WithEngine(endian.GetLittleEndianEngine())
}

// WithBigEndian writes headers big-endian regardless of host order.
func WithBigEndian() Option {
	return WithEngine(endian.GetBigEndianEngine())
}

// NewCodec creates a wire codec. Options are infallible; the default engine
// is the host's native order.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{engine: endian.NativeEngine()}
	_ = options.Apply(c, opts...)

	return c
}

// EncodePoint serializes a point as [u32 total_size][u32 pcid][raw record].
// The point's buffer is written verbatim; no byte-order normalization is
// applied to field data.
func (c *Codec) EncodePoint(pt *cloud.Point) ([]byte, error) {
	s := pt.Schema()
	total := PointHeaderSize + s.Size()

	bb := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(bb)

	bb.B = c.engine.AppendUint32(bb.B, uint32(total))
	bb.B = c.engine.AppendUint32(bb.B, s.PCID())
	bb.B = append(bb.B, pt.Data()...)

	return bb.CopyOut(), nil
}

// DecodePoint reads a point record, resolves its schema through the
// registry, and wraps the payload as a borrowed read-only point without
// copying. The returned point aliases data; it stays valid only as long as
// the caller keeps the buffer alive and unmodified.
func (c *Codec) DecodePoint(data []byte, reg SchemaRegistry) (*cloud.Point, error) {
	payload, pcid, err := c.splitRecord(data, PointHeaderSize, pointPCIDOffset)
	if err != nil {
		return nil, err
	}

	s, err := reg.Resolve(pcid)
	if err != nil {
		return nil, err
	}
	if len(payload) != s.Size() {
		return nil, fmt.Errorf("%w: point payload is %d bytes, schema %d needs %d",
			errs.ErrMalformedRecord, len(payload), pcid, s.Size())
	}

	return cloud.PointFromData(s, payload)
}

// EncodePatch serializes a patch as [u32 total_size][f32 bounds x4]
// [u32 pcid][u32 npoints][payload]. The bounding box is narrowed to 32-bit
// floats; the payload is the raw concatenated records or, when the schema
// selects a compression scheme, that codec's opaque output.
func (c *Codec) EncodePatch(pa *cloud.Patch) ([]byte, error) {
	s := pa.Schema()

	codec, err := compress.GetCodec(s.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, s.Compression())
	}
	payload, err := codec.Compress(pa.Data())
	if err != nil {
		return nil, fmt.Errorf("compressing patch payload: %w", err)
	}

	total := PatchHeaderSize + len(payload)
	bounds := pa.Bounds()

	bb := pool.GetPatchBuffer()
	defer pool.PutPatchBuffer(bb)

	bb.B = c.engine.AppendUint32(bb.B, uint32(total))
	bb.B = c.engine.AppendUint32(bb.B, math.Float32bits(float32(bounds.XMin)))
	bb.B = c.engine.AppendUint32(bb.B, math.Float32bits(float32(bounds.XMax)))
	bb.B = c.engine.AppendUint32(bb.B, math.Float32bits(float32(bounds.YMin)))
	bb.B = c.engine.AppendUint32(bb.B, math.Float32bits(float32(bounds.YMax)))
	bb.B = c.engine.AppendUint32(bb.B, s.PCID())
	bb.B = c.engine.AppendUint32(bb.B, uint32(pa.Len()))
	bb.B = append(bb.B, payload...)

	return bb.CopyOut(), nil
}

// DecodePatch reads a patch record and resolves its schema through the
// registry. An uncompressed payload is wrapped as a borrowed read-only
// patch over data without copying; a compressed payload is materialized
// into a freshly owned patch. Either way the bounding box is recomputed
// from the records, since the header stores it at reduced precision.
func (c *Codec) DecodePatch(data []byte, reg SchemaRegistry) (*cloud.Patch, error) {
	payload, pcid, err := c.splitRecord(data, PatchHeaderSize, patchPCIDOffset)
	if err != nil {
		return nil, err
	}
	npoints := int(c.engine.Uint32(data[patchCountOffset : patchCountOffset+4]))

	s, err := reg.Resolve(pcid)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(s.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, s.Compression())
	}

	if s.Compression() == format.CompressionNone {
		return cloud.PatchFromData(s, payload, npoints)
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompressing patch payload: %w", err)
	}

	return cloud.PatchFromDataOwned(s, raw, npoints)
}

// DecodePatchBounds reads only the reduced-precision bounding box from a
// patch record header, without resolving the schema or touching the
// payload. Useful for coarse spatial filtering before full decode.
func (c *Codec) DecodePatchBounds(data []byte) (cloud.Bounds, error) {
	if len(data) < PatchHeaderSize {
		return cloud.Bounds{}, fmt.Errorf("%w: %d bytes is shorter than a patch header",
			errs.ErrMalformedRecord, len(data))
	}

	b := data[patchBoundsOffset:]

	return cloud.Bounds{
		XMin: float64(math.Float32frombits(c.engine.Uint32(b[0:4]))),
		XMax: float64(math.Float32frombits(c.engine.Uint32(b[4:8]))),
		YMin: float64(math.Float32frombits(c.engine.Uint32(b[8:12]))),
		YMax: float64(math.Float32frombits(c.engine.Uint32(b[12:16]))),
	}, nil
}

// PeekPointPCID reads the schema identifier from a point record without
// resolving it, so callers can look up the schema before a full decode.
func (c *Codec) PeekPointPCID(data []byte) (uint32, error) {
	if len(data) < PointHeaderSize {
		return 0, fmt.Errorf("%w: %d bytes is shorter than a point header",
			errs.ErrMalformedRecord, len(data))
	}

	return c.engine.Uint32(data[pointPCIDOffset : pointPCIDOffset+4]), nil
}

// PeekPatchPCID reads the schema identifier from a patch record.
func (c *Codec) PeekPatchPCID(data []byte) (uint32, error) {
	if len(data) < PatchHeaderSize {
		return 0, fmt.Errorf("%w: %d bytes is shorter than a patch header",
			errs.ErrMalformedRecord, len(data))
	}

	return c.engine.Uint32(data[patchPCIDOffset : patchPCIDOffset+4]), nil
}

// splitRecord validates the size-prefixed framing shared by point and patch
// records and returns the payload past the header plus the schema id.
func (c *Codec) splitRecord(data []byte, headerSize, pcidOffset int) ([]byte, uint32, error) {
	if len(data) < headerSize {
		return nil, 0, fmt.Errorf("%w: %d bytes is shorter than the %d byte header",
			errs.ErrMalformedRecord, len(data), headerSize)
	}

	total := int(c.engine.Uint32(data[0:4]))
	if total < headerSize || total > len(data) {
		return nil, 0, fmt.Errorf("%w: declared size %d, buffer holds %d",
			errs.ErrMalformedRecord, total, len(data))
	}
	if total < len(data) {
		// Trailing bytes past the declared size are tolerated but suspicious.
		handlers.Warnf("wire record declares %d bytes, buffer holds %d; ignoring trailer", total, len(data))
	}

	pcid := c.engine.Uint32(data[pcidOffset : pcidOffset+4])

	return data[headerSize:total], pcid, nil
}
