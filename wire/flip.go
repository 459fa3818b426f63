package wire

import (
	"fmt"

	"github.com/sadkowsr/pointcloud/errs"
	"github.com/sadkowsr/pointcloud/schema"
)

// FlipEndian byte-swaps every field of npoints concatenated schema-shaped
// records in place, according to each dimension's declared width. One-byte
// fields are untouched, and field order and record boundaries never change,
// so applying the flip twice restores the buffer exactly. It is the explicit
// normalization step for buffers produced on a machine of the opposite byte
// order.
//
// The buffer is returned for chaining.
func FlipEndian(buf []byte, s *schema.Schema, npoints int) ([]byte, error) {
	size := s.Size()
	if len(buf) != npoints*size {
		return nil, fmt.Errorf("%w: %d points of %d bytes need %d, got %d",
			errs.ErrPointCountMismatch, npoints, size, npoints*size, len(buf))
	}

	dims := s.Dimensions()
	for p := 0; p < npoints; p++ {
		rec := buf[p*size : (p+1)*size]
		for d := range dims {
			dim := &dims[d]
			if dim.Size < 2 {
				continue
			}
			field := rec[dim.ByteOffset : dim.ByteOffset+dim.Size]
			for i, j := 0, len(field)-1; i < j; i, j = i+1, j-1 {
				field[i], field[j] = field[j], field[i]
			}
		}
	}

	return buf, nil
}
