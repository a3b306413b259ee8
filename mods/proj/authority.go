package proj

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	geoproj "github.com/ctessum/geom/proj"
	"github.com/wroge/wgs84"
	"gopkg.in/yaml.v3"
)

// Authority is the default authority of registry records.
const Authority = "EPSG"

//go:embed epsg.yaml
var authorityData []byte

// Record is an entry of the authority code database.
type Record struct {
	Authority string    `yaml:"authority"`
	Code      int       `yaml:"code"`
	Title     string    `yaml:"title"`
	Kind      string    `yaml:"kind"`
	Unit      string    `yaml:"unit"`
	Method    string    `yaml:"method"`
	Ellipsoid string    `yaml:"ellipsoid"`
	Params    Params    `yaml:"params"`
	Area      []float64 `yaml:"area,flow"`
	Proj4     string    `yaml:"proj4"`
	Esri      string    `yaml:"esri"`
}

// Params of a transverse mercator projection, angles in degrees, offsets in metres.
type Params struct {
	Lon0 float64 `yaml:"lon0"`
	Lat0 float64 `yaml:"lat0"`
	K0   float64 `yaml:"k0"`
	X0   float64 `yaml:"x0"`
	Y0   float64 `yaml:"y0"`
}

func (r Record) Name() string {
	auth := r.Authority
	if auth == "" {
		auth = Authority
	}
	return fmt.Sprintf("%s:%d", strings.ToUpper(auth), r.Code)
}

type ellipsoid struct {
	a, rf float64
}

// A and Fi satisfy wgs84.Spheroid
func (e ellipsoid) A() float64  { return e.a }
func (e ellipsoid) Fi() float64 { return e.rf }

var ellipsoids = map[string]ellipsoid{
	"WGS84":         {a: 6378137, rf: 298.257223563},
	"GRS80":         {a: 6378137, rf: 298.257222101},
	"Bessel":        {a: 6377397.155, rf: 299.1528128},
	"International": {a: 6378388, rf: 297},
	"Clarke1866":    {a: 6378206.4, rf: 294.9786982},
}

var unitToMeter = map[string]float64{
	UnitMeter: 1,
	UnitFoot:  0.3048,
	UnitYard:  0.9144,
	UnitLink:  0.201168,
}

// FromRecord builds a registry projection from an authority record.
func FromRecord(rec Record) (*Projection, error) {
	kind, err := ParseKind(rec.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rec.Name(), err)
	}
	ell, ok := ellipsoids[rec.Ellipsoid]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", rec.Name(), ErrUnknownEllipse, rec.Ellipsoid)
	}
	ret := &Projection{
		code:  rec.Name(),
		title: rec.Title,
		kind:  kind,
		unit:  rec.Unit,
		proj4: rec.Proj4,
		esri:  rec.Esri,
	}
	switch len(rec.Area) {
	case 0:
	case 4:
		ret.area = &Bounds{West: rec.Area[0], South: rec.Area[1], East: rec.Area[2], North: rec.Area[3]}
	default:
		return nil, fmt.Errorf("%s: area requires west, south, east, north", rec.Name())
	}

	datum := wgs84.Datum{Spheroid: ell}
	if ret.area != nil {
		area := *ret.area
		datum.Area = wgs84.AreaFunc(func(lon, lat float64) bool {
			return area.Contains(lon, lat)
		})
	}

	epsg := wgs84.EPSG()
	switch rec.Method {
	case "lonlat":
		epsg.Add(rec.Code, datum.LonLat())
	case "webmerc":
		epsg.Add(rec.Code, wgs84.WebMercator())
	case "geocent":
		ret.be = newGeocentBackend(ell)
		return ret, nil
	case "tmerc":
		// the series expansion of wgs84's transverse mercator drifts by
		// about 1e-6 degree on a round trip, the PROJ engine does not
		sr, err := geoproj.Parse(tmercDef(rec, ell))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Name(), err)
		}
		if ret.be, err = newSRBackend(sr); err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Name(), err)
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("%s: %w %q", rec.Name(), ErrUnknownMethod, rec.Method)
	}
	toMeter, ok := unitToMeter[rec.Unit]
	if !ok {
		// unknown units keep native coordinates in metres
		toMeter = 1
	}
	ret.be = &wgs84Backend{
		fwd:     wgs84.Transform(wgs84.WGS84().LonLat(), epsg.Code(rec.Code)),
		inv:     wgs84.Transform(epsg.Code(rec.Code), wgs84.WGS84().LonLat()),
		toMeter: toMeter,
		planar:  kind == Projected,
	}
	return ret, nil
}

// tmercDef returns the PROJ definition of a transverse mercator record,
// built from its params when the record has none.
func tmercDef(rec Record, ell ellipsoid) string {
	if rec.Proj4 != "" {
		return rec.Proj4
	}
	p := rec.Params
	toMeter, ok := unitToMeter[rec.Unit]
	if !ok {
		toMeter = 1
	}
	return fmt.Sprintf("+proj=tmerc +lat_0=%s +lon_0=%s +k=%s +x_0=%s +y_0=%s +a=%s +rf=%s +to_meter=%s +no_defs",
		fmtFloat(p.Lat0), fmtFloat(p.Lon0), fmtFloat(p.K0), fmtFloat(p.X0), fmtFloat(p.Y0),
		fmtFloat(ell.a), fmtFloat(ell.rf), fmtFloat(toMeter))
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AuthorityRecords returns the records of the embedded authority database
// followed by the generated WGS 84 / UTM zones.
func AuthorityRecords() ([]Record, error) {
	recs := []Record{}
	if err := yaml.Unmarshal(authorityData, &recs); err != nil {
		return nil, fmt.Errorf("authority database: %w", err)
	}
	for zone := 1; zone <= 60; zone++ {
		recs = append(recs, utmRecord(zone, false), utmRecord(zone, true))
	}
	return recs, nil
}

// AuthorityCodes enumerates every projection of the authority database.
func AuthorityCodes() ([]*Projection, error) {
	recs, err := AuthorityRecords()
	if err != nil {
		return nil, err
	}
	ret := make([]*Projection, 0, len(recs))
	for _, rec := range recs {
		p, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		ret = append(ret, p)
	}
	return ret, nil
}

// utmRecord returns EPSG:326zz (north) or EPSG:327zz (south).
func utmRecord(zone int, south bool) Record {
	lon0 := float64(zone*6 - 183)
	code, hemi, northing, proj4South := 32600+zone, "N", 0.0, ""
	area := []float64{lon0 - 3, 0, lon0 + 3, 84}
	if south {
		code, hemi, northing, proj4South = 32700+zone, "S", 10000000.0, " +south"
		area = []float64{lon0 - 3, -80, lon0 + 3, 0}
	}
	return Record{
		Authority: Authority,
		Code:      code,
		Title:     fmt.Sprintf("WGS 84 / UTM zone %d%s", zone, hemi),
		Kind:      "projected",
		Unit:      UnitMeter,
		Method:    "tmerc",
		Ellipsoid: "WGS84",
		Params:    Params{Lon0: lon0, Lat0: 0, K0: 0.9996, X0: 500000, Y0: northing},
		Area:      area,
		Proj4:     fmt.Sprintf("+proj=utm +zone=%d%s +datum=WGS84 +units=m +no_defs", zone, proj4South),
		Esri: fmt.Sprintf(`PROJCS["WGS_1984_UTM_Zone_%d%s",%s,PROJECTION["Transverse_Mercator"],`+
			`PARAMETER["False_Easting",500000.0],PARAMETER["False_Northing",%.1f],`+
			`PARAMETER["Central_Meridian",%.1f],PARAMETER["Scale_Factor",0.9996],`+
			`PARAMETER["Latitude_Of_Origin",0.0],UNIT["Meter",1.0]]`, zone, hemi, esriGCSWGS84, northing, lon0),
	}
}

const esriGCSWGS84 = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",SPHEROID["WGS_1984",6378137.0,298.257223563]],` +
	`PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`
