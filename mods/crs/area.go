package crs

import (
	"fmt"
	"math"

	"github.com/machbase/neo-crs/mods/nums"
)

// CRSAreaOfUse is the longitude/latitude rectangle, in degrees, where a
// system is valid. Rectangles crossing the antimeridian are not supported,
// express them as two areas.
type CRSAreaOfUse struct {
	west, south, east, north float64
}

func NewAreaOfUse(west, south, east, north float64) (*CRSAreaOfUse, error) {
	ret := &CRSAreaOfUse{west: west, south: south, east: east, north: north}
	for _, v := range []float64{west, south, east, north} {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w [%s]", ErrInvalidBounds, ret)
		}
	}
	if west > east || south > north {
		return nil, fmt.Errorf("%w [%s]", ErrInvalidBounds, ret)
	}
	return ret, nil
}

func (a *CRSAreaOfUse) WestBoundLongitudeDeg() float64 { return a.west }
func (a *CRSAreaOfUse) SouthBoundLatitudeDeg() float64 { return a.south }
func (a *CRSAreaOfUse) EastBoundLongitudeDeg() float64 { return a.east }
func (a *CRSAreaOfUse) NorthBoundLatitudeDeg() float64 { return a.north }

// Contains reports whether the position lies in the area, edges included.
func (a *CRSAreaOfUse) Contains(lon, lat float64) bool {
	return lon >= a.west && lon <= a.east &&
		lat >= a.south && lat <= a.north
}

func (a *CRSAreaOfUse) String() string {
	return fmt.Sprintf("west[%v], south[%v], east[%v], north[%v]", a.west, a.south, a.east, a.north)
}

// IsValid reports whether v, as x=longitude and y=latitude, lies in the area.
func IsValid(v nums.Vector3D, area *CRSAreaOfUse) bool {
	return area.Contains(v.X, v.Y)
}
