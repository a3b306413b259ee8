// Package proj is the numeric engine behind coordinate reference systems:
// registry projection definitions, the embedded authority code database,
// definition string parsing and point reprojection.
//
// Every projection converts to and from WGS84 longitude/latitude/height,
// which is the pivot of all reprojections.
package proj

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

type Kind int

const (
	Projected Kind = iota
	Geographic
	Geocentric
)

func (k Kind) String() string {
	switch k {
	case Geographic:
		return "geographic"
	case Geocentric:
		return "geocentric"
	default:
		return "projected"
	}
}

func ParseKind(s string) (Kind, error) {
	switch s {
	case "projected":
		return Projected, nil
	case "geographic":
		return Geographic, nil
	case "geocentric":
		return Geocentric, nil
	default:
		return Projected, fmt.Errorf("unknown crs kind %q", s)
	}
}

// Native unit names of registry projections.
const (
	UnitMeter  = "Meter"
	UnitFoot   = "Foot"
	UnitYard   = "Yard"
	UnitLink   = "Link"
	UnitDegree = "Degree"
)

var (
	ErrParse          = errors.New("invalid projection definition")
	ErrDataSize       = errors.New("data size mismatch")
	ErrOutOfDomain    = errors.New("coordinate out of projection domain")
	ErrUnknownMethod  = errors.New("unknown projection method")
	ErrUnknownEllipse = errors.New("unknown ellipsoid")
)

// ParseError reports a definition string that the engine could not parse.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	in := e.Input
	if len(in) > 64 {
		cut := 61
		for cut > 0 && !utf8.RuneStart(in[cut]) {
			cut--
		}
		in = in[:cut] + "..."
	}
	return fmt.Sprintf("%s %q: %s", ErrParse.Error(), in, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Bounds is a longitude/latitude rectangle in degrees.
type Bounds struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.West && lon <= b.East && lat >= b.South && lat <= b.North
}

// Projection is an immutable registry projection definition.
type Projection struct {
	code  string
	title string
	kind  Kind
	unit  string
	area  *Bounds
	proj4 string
	esri  string
	be    backend
}

// Code is the unique name of the projection, e.g. "EPSG:4326".
func (p *Projection) Code() string        { return p.code }
func (p *Projection) Title() string       { return p.title }
func (p *Projection) Kind() Kind          { return p.kind }
func (p *Projection) IsLatLon() bool      { return p.kind == Geographic }
func (p *Projection) IsGeocentric() bool  { return p.kind == Geocentric }
func (p *Projection) Proj4String() string { return p.proj4 }
func (p *Projection) EsriString() string  { return p.esri }

// UnitName returns the native unit name of the projection.
// Registry records use Meter, Foot, Yard, Link or Degree; a parsed
// definition with an unrecognised unit keeps the engine's own name.
func (p *Projection) UnitName() string { return p.unit }

// Area returns the area of use, if the definition carries one.
func (p *Projection) Area() (Bounds, bool) {
	if p.area == nil {
		return Bounds{}, false
	}
	return *p.area, true
}

func (p *Projection) String() string {
	if p.title == "" {
		return p.code
	}
	return fmt.Sprintf("%s %s", p.code, p.title)
}
