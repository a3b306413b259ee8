package crs

import (
	"fmt"

	"github.com/machbase/neo-crs/mods/nums"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

// Wgs84BBox is the bounding box of a set of WGS 84 points,
// x being the longitude and y the latitude in degrees.
type Wgs84BBox struct {
	bound orb.Bound
	empty bool
}

// NewWgs84BBox returns the box of the given points, empty without points.
func NewWgs84BBox(pts ...nums.Vector3D) *Wgs84BBox {
	if len(pts) == 0 {
		return &Wgs84BBox{empty: true}
	}
	b := orb.Point{pts[0].X, pts[0].Y}.Bound()
	for _, p := range pts[1:] {
		b = b.Extend(orb.Point{p.X, p.Y})
	}
	return &Wgs84BBox{bound: b}
}

// boxOf unions the bounds of the geometries, skipping nil and empty ones.
// Members of collections are visited one by one, orb unions them
// starting from the first member even when its bound is empty.
func boxOf(geoms ...orb.Geometry) *Wgs84BBox {
	ret := NewWgs84BBox()
	for _, g := range geoms {
		var b *Wgs84BBox
		switch gg := g.(type) {
		case nil:
			continue
		case orb.Collection:
			b = boxOf(gg...)
		case orb.MultiLineString:
			b = boxOf(toGeometries(gg)...)
		case orb.MultiPolygon:
			b = boxOf(toGeometries(gg)...)
		default:
			if gb := gg.Bound(); !gb.IsEmpty() {
				b = &Wgs84BBox{bound: gb}
			}
		}
		if b == nil || b.empty {
			continue
		}
		if ret.empty {
			ret = b
		} else {
			ret.bound = ret.bound.Union(b.bound)
		}
	}
	return ret
}

func toGeometries[T orb.Geometry](list []T) []orb.Geometry {
	ret := make([]orb.Geometry, len(list))
	for i, g := range list {
		ret[i] = g
	}
	return ret
}

// FromGeoJSON returns the box of a GeoJSON FeatureCollection, Feature or geometry.
// Geometries without coordinates do not extend the box.
func FromGeoJSON(data []byte) (*Wgs84BBox, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid geojson")
	}
	typ := gjson.GetBytes(data, "type").String()
	switch typ {
	case "FeatureCollection":
		obj, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("invalid geojson %s", err.Error())
		}
		geoms := make([]orb.Geometry, 0, len(obj.Features))
		for _, f := range obj.Features {
			geoms = append(geoms, f.Geometry)
		}
		return boxOf(geoms...), nil
	case "Feature":
		obj, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("invalid geojson %s", err.Error())
		}
		return boxOf(obj.Geometry), nil
	case "Point", "MultiPoint", "LineString", "MultiLineString", "Polygon", "MultiPolygon", "GeometryCollection":
		obj, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("invalid geojson %s", err.Error())
		}
		return boxOf(obj.Geometry()), nil
	default:
		return nil, fmt.Errorf("invalid geojson type %q", typ)
	}
}

func (b *Wgs84BBox) Empty() bool { return b.empty }

// Bound is the box as an orb.Bound, the zero bound if empty.
func (b *Wgs84BBox) Bound() orb.Bound { return b.bound }

func (b *Wgs84BBox) WestBoundLongitudeDeg() float64 { return b.bound.Min.Lon() }
func (b *Wgs84BBox) SouthBoundLatitudeDeg() float64 { return b.bound.Min.Lat() }
func (b *Wgs84BBox) EastBoundLongitudeDeg() float64 { return b.bound.Max.Lon() }
func (b *Wgs84BBox) NorthBoundLatitudeDeg() float64 { return b.bound.Max.Lat() }

// AreaOfUse converts a non empty box into an area of use.
func (b *Wgs84BBox) AreaOfUse() (*CRSAreaOfUse, error) {
	if b.empty {
		return nil, fmt.Errorf("%w [empty box]", ErrInvalidBounds)
	}
	return NewAreaOfUse(b.WestBoundLongitudeDeg(), b.SouthBoundLatitudeDeg(), b.EastBoundLongitudeDeg(), b.NorthBoundLatitudeDeg())
}

func (b *Wgs84BBox) String() string {
	if b.empty {
		return "empty"
	}
	return fmt.Sprintf("west[%v], south[%v], east[%v], north[%v]",
		b.WestBoundLongitudeDeg(), b.SouthBoundLatitudeDeg(), b.EastBoundLongitudeDeg(), b.NorthBoundLatitudeDeg())
}
