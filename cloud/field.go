package cloud

import (
	"fmt"
	"math"

	"github.com/sadkowsr/pointcloud/endian"
	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/format"
	"github.com/sadkowsr/pointcloud/schema"
)

// fieldEngine reads and writes record bytes in the host's byte order.
// Cross-architecture buffers go through wire.FlipEndian first.
var fieldEngine = endian.NativeEngine()

// readDouble reads the dimension's raw stored value from data, widens it to
// a float64 and applies the scale/offset transform.
func readDouble(data []byte, dim *schema.Dimension) float64 {
	field := data[dim.ByteOffset : dim.ByteOffset+dim.Size]

	var raw float64
	switch dim.Interpretation {
	case format.TypeInt8:
		raw = float64(int8(field[0]))
	case format.TypeUint8:
		raw = float64(field[0])
	case format.TypeInt16:
		raw = float64(int16(fieldEngine.Uint16(field)))
	case format.TypeUint16:
		raw = float64(fieldEngine.Uint16(field))
	case format.TypeInt32:
		raw = float64(int32(fieldEngine.Uint32(field)))
	case format.TypeUint32:
		raw = float64(fieldEngine.Uint32(field))
	case format.TypeInt64:
		raw = float64(int64(fieldEngine.Uint64(field)))
	case format.TypeUint64:
		raw = float64(fieldEngine.Uint64(field))
	case format.TypeFloat32:
		raw = float64(math.Float32frombits(fieldEngine.Uint32(field)))
	case format.TypeFloat64:
		raw = math.Float64frombits(fieldEngine.Uint64(field))
	}

	return raw*dim.Scale + dim.Offset
}

// writeDouble applies the inverse scale/offset transform and stores the
// result into data at the dimension's offset. Integer interpretations round
// to nearest and fail with ErrValueOutOfRange when the rounded value exceeds
// the storage width; float interpretations store the scaled value at the
// dimension's precision.
func writeDouble(data []byte, dim *schema.Dimension, val float64) error {
	scaled := (val - dim.Offset) / dim.Scale
	field := data[dim.ByteOffset : dim.ByteOffset+dim.Size]

	if dim.Interpretation.IsFloat() {
		switch dim.Interpretation {
		case format.TypeFloat32:
			fieldEngine.PutUint32(field, math.Float32bits(float32(scaled)))
		case format.TypeFloat64:
			fieldEngine.PutUint64(field, math.Float64bits(scaled))
		}

		return nil
	}

	stored := math.Round(scaled)

	switch dim.Interpretation {
	case format.TypeInt8:
		if stored < math.MinInt8 || stored > math.MaxInt8 {
			return overflowErr(dim, val, stored)
		}
		field[0] = byte(int8(stored))
	case format.TypeUint8:
		if stored < 0 || stored > math.MaxUint8 {
			return overflowErr(dim, val, stored)
		}
		field[0] = byte(stored)
	case format.TypeInt16:
		if stored < math.MinInt16 || stored > math.MaxInt16 {
			return overflowErr(dim, val, stored)
		}
		fieldEngine.PutUint16(field, uint16(int16(stored)))
	case format.TypeUint16:
		if stored < 0 || stored > math.MaxUint16 {
			return overflowErr(dim, val, stored)
		}
		fieldEngine.PutUint16(field, uint16(stored))
	case format.TypeInt32:
		if stored < math.MinInt32 || stored > math.MaxInt32 {
			return overflowErr(dim, val, stored)
		}
		fieldEngine.PutUint32(field, uint32(int32(stored)))
	case format.TypeUint32:
		if stored < 0 || stored > math.MaxUint32 {
			return overflowErr(dim, val, stored)
		}
		fieldEngine.PutUint32(field, uint32(stored))
	case format.TypeInt64:
		if stored < math.MinInt64 || stored >= math.MaxInt64 {
			return overflowErr(dim, val, stored)
		}
		fieldEngine.PutUint64(field, uint64(int64(stored)))
	case format.TypeUint64:
		if stored < 0 || stored >= math.MaxUint64 {
			return overflowErr(dim, val, stored)
		}
		fieldEngine.PutUint64(field, uint64(stored))
	}

	return nil
}

func overflowErr(dim *schema.Dimension, val, stored float64) error {
	return fmt.Errorf("%w: value %g scales to %g, dimension %q stores %s",
		errs.ErrValueOutOfRange, val, stored, dim.Name, dim.Interpretation)
}
