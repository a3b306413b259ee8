package proj

import (
	"fmt"
	"math"

	geoproj "github.com/ctessum/geom/proj"
	"github.com/wroge/wgs84"
)

// backend converts the native coordinates of a projection from and to
// WGS84 longitude, latitude (degrees) and ellipsoidal height.
type backend interface {
	toLonLat(x, y, z float64) (lon, lat, h float64, err error)
	fromLonLat(lon, lat, h float64) (x, y, z float64, err error)
}

type transformFunc = func(a, b, c float64) (a2, b2, c2 float64)

// wgs84Backend is built on github.com/wroge/wgs84 transformations.
// toMeter scales planar coordinates of systems whose native unit is not the metre.
type wgs84Backend struct {
	fwd     transformFunc
	inv     transformFunc
	toMeter float64
	planar  bool
}

func (b *wgs84Backend) toLonLat(x, y, z float64) (float64, float64, float64, error) {
	if b.planar && b.toMeter != 1 {
		x, y = x*b.toMeter, y*b.toMeter
	}
	lon, lat, h := b.inv(x, y, z)
	return lon, lat, h, nil
}

func (b *wgs84Backend) fromLonLat(lon, lat, h float64) (float64, float64, float64, error) {
	x, y, z := b.fwd(lon, lat, h)
	if b.planar && b.toMeter != 1 {
		x, y = x/b.toMeter, y/b.toMeter
	}
	return x, y, z, nil
}

// srBackend is built on a github.com/ctessum/geom/proj spatial reference,
// used for definitions parsed from PROJ or WKT strings. It is planar only:
// heights pass through unchanged.
type srBackend struct {
	fwd geoproj.Transformer
	inv geoproj.Transformer
}

const lonLatWGS84 = "+proj=longlat +datum=WGS84 +no_defs"

func newSRBackend(sr *geoproj.SR) (*srBackend, error) {
	ll, err := geoproj.Parse(lonLatWGS84)
	if err != nil {
		return nil, err
	}
	fwd, err := ll.NewTransform(sr)
	if err != nil {
		return nil, err
	}
	inv, err := sr.NewTransform(ll)
	if err != nil {
		return nil, err
	}
	return &srBackend{fwd: fwd, inv: inv}, nil
}

func (b *srBackend) toLonLat(x, y, z float64) (float64, float64, float64, error) {
	lon, lat, err := b.inv(x, y)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrOutOfDomain, err.Error())
	}
	return lon, lat, z, nil
}

func (b *srBackend) fromLonLat(lon, lat, h float64) (float64, float64, float64, error) {
	x, y, err := b.fwd(lon, lat)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %s", ErrOutOfDomain, err.Error())
	}
	return x, y, h, nil
}

// newGeocentBackend converts between WGS84 longitude/latitude and
// earth-centred, earth-fixed coordinates of a datum on the given ellipsoid.
func newGeocentBackend(e ellipsoid) *wgs84Backend {
	xyz := wgs84.Datum{Spheroid: e}.XYZ()
	return &wgs84Backend{
		fwd:     wgs84.Transform(wgs84.WGS84().LonLat(), xyz),
		inv:     wgs84.Transform(xyz, wgs84.WGS84().LonLat()),
		toMeter: 1,
	}
}

// ellipsoidOf returns the ellipsoid of a parsed spatial reference,
// WGS84 when the definition does not name one.
func ellipsoidOf(sr *geoproj.SR) ellipsoid {
	if math.IsNaN(sr.A) || sr.A <= 0 {
		return ellipsoids["WGS84"]
	}
	if sr.Es <= 0 {
		// sphere, zero flattening
		return ellipsoid{a: sr.A, rf: math.Inf(1)}
	}
	return ellipsoid{a: sr.A, rf: 1 / (1 - math.Sqrt(1-sr.Es))}
}
