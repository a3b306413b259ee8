package crs

import (
	"fmt"

	"github.com/machbase/neo-crs/mods/nums"
	"github.com/machbase/neo-crs/mods/units"
)

// CustomTransformer projects a point from one system to another.
// Implementations are expected to be pure: same input, same output.
type CustomTransformer interface {
	Transform(v nums.Vector3D, from, to *CRSData) (nums.Vector3D, error)
}

// CustomTransformFunc adapts a function to CustomTransformer.
type CustomTransformFunc func(v nums.Vector3D, from, to *CRSData) (nums.Vector3D, error)

func (fn CustomTransformFunc) Transform(v nums.Vector3D, from, to *CRSData) (nums.Vector3D, error) {
	return fn(v, from, to)
}

// CustomCRSInfo describes a coordinate system that converts with a
// user supplied transform instead of a registry projection.
type CustomCRSInfo struct {
	name       string
	geocentric bool
	unit       units.Unit
	fn         CustomTransformer
}

func NewCustomCRSInfo(name string, geocentric bool, unit units.Unit, fn CustomTransformer) *CustomCRSInfo {
	return &CustomCRSInfo{
		name:       name,
		geocentric: geocentric,
		unit:       unit,
		fn:         fn,
	}
}

func (ci *CustomCRSInfo) Name() string                   { return ci.name }
func (ci *CustomCRSInfo) IsGeocentric() bool             { return ci.geocentric }
func (ci *CustomCRSInfo) Unit() units.Unit               { return ci.unit }
func (ci *CustomCRSInfo) Transformer() CustomTransformer { return ci.fn }

func (ci *CustomCRSInfo) String() string {
	return fmt.Sprintf("name:%s isgeo:%v mu:%s", ci.name, ci.geocentric, ci.unit)
}
