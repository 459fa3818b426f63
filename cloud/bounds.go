package cloud

import "math"

// Bounds is the tight 2D enclosure of every point ever added to a patch.
// It only expands: no removal operation exists, so a patch bounding box is
// monotonically non-shrinking for the patch's lifetime.
type Bounds struct {
	XMin float64
	XMax float64
	YMin float64
	YMax float64
}

// EmptyBounds returns the sentinel enclosure (+Inf mins, -Inf maxes) so the
// first extension establishes real bounds.
func EmptyBounds() Bounds {
	return Bounds{
		XMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMin: math.Inf(1),
		YMax: math.Inf(-1),
	}
}

// IsEmpty reports whether no point has established bounds yet.
func (b Bounds) IsEmpty() bool {
	return b.XMin > b.XMax
}

// Extend expands the bounds to enclose (x, y). It never shrinks.
func (b *Bounds) Extend(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if y > b.YMax {
		b.YMax = y
	}
}
