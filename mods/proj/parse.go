package proj

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	geoproj "github.com/ctessum/geom/proj"
)

// ParseEsri builds a projection from an Esri flavoured WKT definition.
func ParseEsri(name, def string) (*Projection, error) {
	def = strings.TrimSpace(def)
	if !strings.Contains(def, "CS[") {
		return nil, &ParseError{Input: def, Reason: "not a WKT definition"}
	}
	ret, err := parse(name, def)
	if err != nil {
		return nil, err
	}
	ret.esri = def
	return ret, nil
}

// ParseProj4 builds a projection from a PROJ definition string.
// Yard and link units are not known to the engine, a matching
// +to_meter is appended for them.
func ParseProj4(name, def string) (*Projection, error) {
	def = strings.TrimSpace(def)
	if !strings.HasPrefix(def, "+") {
		return nil, &ParseError{Input: def, Reason: "not a PROJ definition"}
	}
	engineDef := def
	if !strings.Contains(def, "+to_meter=") {
		if m := reProj4Units.FindStringSubmatch(def); m != nil {
			if u := normalizeUnit(m[1]); u == UnitYard || u == UnitLink {
				engineDef = fmt.Sprintf("%s +to_meter=%s", def, strconv.FormatFloat(unitToMeter[u], 'f', -1, 64))
			}
		}
	}
	ret, err := parse(name, engineDef)
	if err != nil {
		return nil, err
	}
	ret.proj4 = def
	return ret, nil
}

var (
	reProj4Units = regexp.MustCompile(`\+units=([A-Za-z-]+)`)
	reWKTUnit    = regexp.MustCompile(`UNIT\["([^"]+)"`)
)

func parse(name, def string) (*Projection, error) {
	p := cachedParse(def)
	if p == nil {
		var err error
		if p, err = parseDef(def); err != nil {
			return nil, err
		}
		storeParse(def, p)
	}
	return &Projection{code: name, title: name, kind: p.kind, unit: p.unit, be: p.be}, nil
}

func parseDef(def string) (ret *parsed, err error) {
	defer func() {
		if r := recover(); r != nil {
			ret, err = nil, &ParseError{Input: def, Reason: fmt.Sprintf("%v", r)}
		}
	}()
	sr, err := geoproj.Parse(def)
	if err != nil {
		return nil, &ParseError{Input: def, Reason: err.Error()}
	}
	ret = &parsed{}
	switch sr.Name {
	case "longlat", "identity":
		ret.kind = Geographic
		ret.unit = UnitDegree
	case "geocent":
		ret.kind = Geocentric
		ret.unit = parsedUnit(sr, def)
		ret.be = newGeocentBackend(ellipsoidOf(sr))
		return ret, nil
	default:
		ret.kind = Projected
		ret.unit = parsedUnit(sr, def)
	}
	be, err := newSRBackend(sr)
	if err != nil {
		return nil, &ParseError{Input: def, Reason: err.Error()}
	}
	ret.be = be
	return ret, nil
}

// parsedUnit resolves the native linear unit of a parsed definition.
func parsedUnit(sr *geoproj.SR, def string) string {
	if sr.Units != "" {
		if u := normalizeUnit(sr.Units); u != "" {
			return u
		}
		return sr.Units
	}
	if u := unitFromFactor(sr.ToMeter); u != "" {
		return u
	}
	if m := reWKTUnit.FindAllStringSubmatch(def, -1); len(m) > 0 {
		last := m[len(m)-1][1]
		if u := normalizeUnit(last); u != "" {
			return u
		}
		return last
	}
	return UnitMeter
}

func normalizeUnit(s string) string {
	switch strings.ToLower(strings.ReplaceAll(s, "_", " ")) {
	case "m", "meter", "metre", "meters", "metres":
		return UnitMeter
	case "ft", "foot", "feet", "international foot":
		return UnitFoot
	case "yd", "yard", "yards":
		return UnitYard
	case "link", "links", "lk":
		return UnitLink
	case "degree", "degrees", "deg":
		return UnitDegree
	}
	return ""
}

func unitFromFactor(f float64) string {
	if f == 0 || f == 1 {
		return ""
	}
	for name, v := range unitToMeter {
		if math.Abs(v-f) < 1e-9 {
			return name
		}
	}
	return ""
}
