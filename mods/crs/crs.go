// Package crs describes coordinate reference systems and projects points
// between them. A CRSData wraps either a registry projection of the
// proj package or a CustomCRSInfo with a user supplied transform.
package crs

import (
	"errors"
	"fmt"

	"github.com/machbase/neo-crs/mods/nums"
	"github.com/machbase/neo-crs/mods/proj"
	"github.com/machbase/neo-crs/mods/units"
)

// variant is implemented only by registryVariant and customVariant.
type variant interface {
	name() string
}

type registryVariant struct {
	prj *proj.Projection
}

func (v registryVariant) name() string { return v.prj.Code() }

type customVariant struct {
	info *CustomCRSInfo
}

func (v customVariant) name() string { return v.info.Name() }

// CRSData is an immutable coordinate reference system descriptor.
type CRSData struct {
	v variant
}

// NewCRSData wraps a registry projection; prj must not be nil.
func NewCRSData(prj *proj.Projection) *CRSData {
	if prj == nil {
		panic("crs: nil projection")
	}
	return &CRSData{v: registryVariant{prj: prj}}
}

// NewCustomCRSData wraps a custom system; info must not be nil.
func NewCustomCRSData(info *CustomCRSInfo) *CRSData {
	if info == nil {
		panic("crs: nil custom info")
	}
	return &CRSData{v: customVariant{info: info}}
}

// NewEsriCRSData parses an Esri WKT definition.
func NewEsriCRSData(name, esri string) (*CRSData, error) {
	prj, err := proj.ParseEsri(name, esri)
	if err != nil {
		return nil, err
	}
	return NewCRSData(prj), nil
}

// NewProj4CRSData parses a PROJ definition.
func NewProj4CRSData(name, def string) (*CRSData, error) {
	prj, err := proj.ParseProj4(name, def)
	if err != nil {
		return nil, err
	}
	return NewCRSData(prj), nil
}

func (c *CRSData) Name() string { return c.v.name() }

func (c *CRSData) IsCustom() bool {
	_, ok := c.v.(customVariant)
	return ok
}

func (c *CRSData) IsGeocentric() bool {
	switch v := c.v.(type) {
	case customVariant:
		return v.info.IsGeocentric()
	case registryVariant:
		return v.prj.IsGeocentric()
	}
	return false
}

// IsLatLon reports an angular system. A custom system reports its
// geocentric flag.
func (c *CRSData) IsLatLon() bool {
	switch v := c.v.(type) {
	case customVariant:
		return v.info.IsGeocentric()
	case registryVariant:
		return v.prj.IsLatLon()
	}
	return false
}

// Unit returns the measurement unit of the coordinates.
// A registry system whose linear unit is not one of Meter, Foot, Yard
// or Link fails with ErrUnsupportedUnit.
func (c *CRSData) Unit() (units.Unit, error) {
	switch v := c.v.(type) {
	case customVariant:
		return v.info.Unit(), nil
	case registryVariant:
		if v.prj.IsLatLon() {
			return units.Degree, nil
		}
		switch name := v.prj.UnitName(); name {
		case proj.UnitMeter:
			return units.Meter, nil
		case proj.UnitFoot:
			return units.Foot, nil
		case proj.UnitYard:
			return units.Yard, nil
		case proj.UnitLink:
			return units.Link, nil
		default:
			return units.Unit{}, fmt.Errorf("%s: %w [%s]", v.prj.Code(), ErrUnsupportedUnit, name)
		}
	}
	return units.Unit{}, ErrUnsupportedUnit
}

// UnitTolerance returns the default tolerance of the domain set expressed
// in the unit of this system.
func (c *CRSData) UnitTolerance(ds units.DomainSet) (float64, error) {
	u, err := c.Unit()
	if err != nil {
		return 0, err
	}
	return ds.Tolerance(u)
}

// Proj4String is empty for custom systems.
func (c *CRSData) Proj4String() string {
	if v, ok := c.v.(registryVariant); ok {
		return v.prj.Proj4String()
	}
	return ""
}

// EsriString is empty for custom systems.
func (c *CRSData) EsriString() string {
	if v, ok := c.v.(registryVariant); ok {
		return v.prj.EsriString()
	}
	return ""
}

// Projection returns the wrapped registry projection, nil for custom systems.
func (c *CRSData) Projection() *proj.Projection {
	if v, ok := c.v.(registryVariant); ok {
		return v.prj
	}
	return nil
}

// Custom returns the wrapped custom info, nil for registry systems.
func (c *CRSData) Custom() *CustomCRSInfo {
	if v, ok := c.v.(customVariant); ok {
		return v.info
	}
	return nil
}

// AreaOfUse returns the area of use of a registry system that declares one.
func (c *CRSData) AreaOfUse() (*CRSAreaOfUse, bool) {
	v, ok := c.v.(registryVariant)
	if !ok {
		return nil, false
	}
	b, ok := v.prj.Area()
	if !ok {
		return nil, false
	}
	area, err := NewAreaOfUse(b.West, b.South, b.East, b.North)
	if err != nil {
		return nil, false
	}
	return area, true
}

func (c *CRSData) String() string {
	switch v := c.v.(type) {
	case customVariant:
		return v.info.String()
	case registryVariant:
		return v.prj.String()
	}
	return ""
}

// Project converts v from this system to the given one.
//
// When either side is custom its transform receives v unchanged, the
// source transform taking precedence over the target one. Otherwise the
// planar coordinates and the height are reprojected by the engine.
func (c *CRSData) Project(v nums.Vector3D, to *CRSData) (nums.Vector3D, error) {
	if to == nil {
		return nums.Vector3D{}, errors.New("crs: nil target system")
	}
	if c.IsCustom() || to.IsCustom() {
		info := c.Custom()
		if info == nil {
			info = to.Custom()
		}
		projectCounter.Inc(1)
		customProjectCounter.Inc(1)
		if info.Transformer() == nil {
			return nums.Vector3D{}, fmt.Errorf("crs %s: no custom transform", info.Name())
		}
		return info.Transformer().Transform(v, c, to)
	}
	projectCounter.Inc(1)
	xy := []float64{v.X, v.Y}
	z := []float64{v.Z}
	if err := proj.ReprojectPoints(xy, z, c.Projection(), to.Projection(), 0, 1); err != nil {
		return nums.Vector3D{}, fmt.Errorf("project %s to %s: %w", c.Name(), to.Name(), err)
	}
	return nums.NewVector3D(xy[0], xy[1], z[0]), nil
}

// Project converts v from one system to another.
func Project(v nums.Vector3D, from, to *CRSData) (nums.Vector3D, error) {
	return from.Project(v, to)
}
