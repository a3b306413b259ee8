// Package units holds the measurement units used to describe coordinate
// reference systems and the default tolerances of each measure domain.
package units

import (
	"errors"
	"fmt"
	"math"
)

type Domain int

const (
	Length Domain = iota + 1
	PlaneAngle
)

func (d Domain) String() string {
	switch d {
	case Length:
		return "length"
	case PlaneAngle:
		return "plane angle"
	default:
		return "unknown"
	}
}

// Unit is a measurement unit; Factor converts a value in this unit to the
// domain base unit (metre for Length, radian for PlaneAngle).
type Unit struct {
	Name   string
	Symbol string
	Domain Domain
	Factor float64
}

var (
	Meter     = Unit{Name: "meter", Symbol: "m", Domain: Length, Factor: 1}
	Kilometer = Unit{Name: "kilometer", Symbol: "km", Domain: Length, Factor: 1000}
	Foot      = Unit{Name: "foot", Symbol: "ft", Domain: Length, Factor: 0.3048}
	Yard      = Unit{Name: "yard", Symbol: "yd", Domain: Length, Factor: 0.9144}
	// Gunter's link, 1/100 of a chain
	Link   = Unit{Name: "link", Symbol: "lk", Domain: Length, Factor: 0.201168}
	Degree = Unit{Name: "degree", Symbol: "°", Domain: PlaneAngle, Factor: math.Pi / 180}
	Radian = Unit{Name: "radian", Symbol: "rad", Domain: PlaneAngle, Factor: 1}
)

var ErrDomainMismatch = errors.New("unit domain mismatch")

func (u Unit) String() string {
	return u.Symbol
}

func (u Unit) IsZero() bool {
	return u.Domain == 0
}

// Convert converts v expressed in u into the unit to.
func (u Unit) Convert(v float64, to Unit) (float64, error) {
	if u.Domain != to.Domain {
		return 0, fmt.Errorf("%w: %s to %s", ErrDomainMismatch, u.Domain, to.Domain)
	}
	if u == to {
		return v, nil
	}
	return v * u.Factor / to.Factor, nil
}

// Measure is a value with its unit.
type Measure struct {
	Value float64
	Unit  Unit
}

func (m Measure) Convert(to Unit) (float64, error) {
	return m.Unit.Convert(m.Value, to)
}

func (m Measure) String() string {
	return fmt.Sprintf("%v%s", m.Value, m.Unit.Symbol)
}

// DomainSet is the set of working units of a project, each with the
// tolerance used by default when values of that domain are compared.
type DomainSet struct {
	Length     DomainDefault
	PlaneAngle DomainDefault
}

type DomainDefault struct {
	Unit             Unit
	DefaultTolerance Measure
}

// DefaultDomainSet works in metres with a 1e-4 m tolerance and in radians with a 1e-1° tolerance.
func DefaultDomainSet() DomainSet {
	return DomainSet{
		Length: DomainDefault{
			Unit:             Meter,
			DefaultTolerance: Measure{Value: 1e-4, Unit: Meter},
		},
		PlaneAngle: DomainDefault{
			Unit:             Radian,
			DefaultTolerance: Measure{Value: 1e-1, Unit: Degree},
		},
	}
}

// Tolerance returns the default tolerance of the domain of u, expressed in u.
func (ds DomainSet) Tolerance(u Unit) (float64, error) {
	switch u.Domain {
	case Length:
		return ds.Length.DefaultTolerance.Convert(u)
	case PlaneAngle:
		return ds.PlaneAngle.DefaultTolerance.Convert(u)
	default:
		return 0, fmt.Errorf("%w: %s", ErrDomainMismatch, u.Domain)
	}
}
