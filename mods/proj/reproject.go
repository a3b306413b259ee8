package proj

import (
	"fmt"
	"math"
)

// ReprojectPoints converts count points starting at offset from one
// projection to another, in place. xy holds interleaved x, y pairs and z
// the third ordinates, one per point. z may be nil, heights are then
// taken as zero and not written back.
func ReprojectPoints(xy, z []float64, from, to *Projection, offset, count int) error {
	if from == nil || to == nil {
		return fmt.Errorf("reproject: %w", ErrUnknownMethod)
	}
	if offset < 0 || count < 0 {
		return fmt.Errorf("reproject offset %d count %d: %w", offset, count, ErrDataSize)
	}
	if len(xy) < 2*(offset+count) {
		return fmt.Errorf("reproject xy len %d, want %d: %w", len(xy), 2*(offset+count), ErrDataSize)
	}
	if z != nil && len(z) < offset+count {
		return fmt.Errorf("reproject z len %d, want %d: %w", len(z), offset+count, ErrDataSize)
	}
	if from == to {
		return nil
	}
	for i := offset; i < offset+count; i++ {
		x, y, h := xy[2*i], xy[2*i+1], 0.0
		if z != nil {
			h = z[i]
		}
		lon, lat, hh, err := from.be.toLonLat(x, y, h)
		if err != nil {
			return fmt.Errorf("%s point %d: %w", from.code, i, err)
		}
		ox, oy, oz, err := to.be.fromLonLat(lon, lat, hh)
		if err != nil {
			return fmt.Errorf("%s point %d: %w", to.code, i, err)
		}
		if !finite(ox) || !finite(oy) || !finite(oz) {
			return fmt.Errorf("%s to %s point %d: %w", from.code, to.code, i, ErrOutOfDomain)
		}
		xy[2*i], xy[2*i+1] = ox, oy
		if z != nil {
			z[i] = oz
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
