package proj_test

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/machbase/neo-crs/mods/proj"
	"github.com/stretchr/testify/require"
)

func TestParseProj4(t *testing.T) {
	tests := []struct {
		def  string
		kind proj.Kind
		unit string
	}{
		{"+proj=longlat +datum=WGS84 +no_defs", proj.Geographic, proj.UnitDegree},
		{"+proj=utm +zone=52 +datum=WGS84 +units=m +no_defs", proj.Projected, proj.UnitMeter},
		{"+proj=tmerc +lat_0=0 +lon_0=0 +k=1 +x_0=0 +y_0=0 +ellps=WGS84 +units=ft", proj.Projected, proj.UnitFoot},
		{"+proj=tmerc +lat_0=0 +lon_0=0 +k=1 +x_0=0 +y_0=0 +ellps=WGS84 +units=yd", proj.Projected, proj.UnitYard},
		{"+proj=tmerc +lat_0=0 +lon_0=0 +k=1 +x_0=0 +y_0=0 +ellps=WGS84 +units=link", proj.Projected, proj.UnitLink},
	}
	for _, tt := range tests {
		p, err := proj.ParseProj4("custom", tt.def)
		require.NoError(t, err, tt.def)
		require.Equal(t, "custom", p.Code())
		require.Equal(t, tt.kind, p.Kind(), tt.def)
		require.Equal(t, tt.unit, p.UnitName(), tt.def)
		require.Equal(t, tt.def, p.Proj4String())
		require.Empty(t, p.EsriString())
	}
}

func TestParseEsri(t *testing.T) {
	for _, code := range []string{"EPSG:4326", "EPSG:5186", "EPSG:32652"} {
		src := authority(t, code)
		p, err := proj.ParseEsri("esri", src.EsriString())
		require.NoError(t, err, code)
		require.Equal(t, src.Kind(), p.Kind(), code)
		require.Equal(t, src.UnitName(), p.UnitName(), code)
		require.Equal(t, src.EsriString(), p.EsriString())
	}
}

func TestParseFailure(t *testing.T) {
	for _, def := range []string{"", "garbage", "EPSG:4326"} {
		_, err := proj.ParseProj4("bad", def)
		require.True(t, errors.Is(err, proj.ErrParse), def)

		_, err = proj.ParseEsri("bad", def)
		require.True(t, errors.Is(err, proj.ErrParse), def)
	}

	_, err := proj.ParseEsri("bad", `PROJCS["broken",GEOGCS[`)
	require.True(t, errors.Is(err, proj.ErrParse))
	var pe *proj.ParseError
	require.True(t, errors.As(err, &pe))
	require.Contains(t, pe.Error(), "broken")
}

func TestParseErrorTruncate(t *testing.T) {
	// 60 ASCII bytes then multi-byte runes straddling the cut
	in := strings.Repeat("x", 60) + strings.Repeat("좌표", 10)
	pe := &proj.ParseError{Input: in, Reason: "test"}
	msg := pe.Error()
	require.True(t, utf8.ValidString(msg), msg)
	require.Contains(t, msg, strings.Repeat("x", 60)+"...")
	require.True(t, errors.Is(pe, proj.ErrParse))

	short := &proj.ParseError{Input: "좌표계", Reason: "test"}
	require.Contains(t, short.Error(), "좌표계")
}

func TestParseCache(t *testing.T) {
	def := "+proj=tmerc +lat_0=38 +lon_0=129 +k=1 +x_0=200000 +y_0=600000 +ellps=GRS80 +units=m +no_defs"
	a, err := proj.ParseProj4("east-a", def)
	require.NoError(t, err)
	n := proj.ParseCacheLen()
	b, err := proj.ParseProj4("east-b", def)
	require.NoError(t, err)
	require.Equal(t, n, proj.ParseCacheLen())
	require.Equal(t, "east-a", a.Code())
	require.Equal(t, "east-b", b.Code())

	wgs := authority(t, "EPSG:4326")
	xa, xb := []float64{129.5, 37.5}, []float64{129.5, 37.5}
	require.NoError(t, proj.ReprojectPoints(xa, nil, wgs, a, 0, 1))
	require.NoError(t, proj.ReprojectPoints(xb, nil, wgs, b, 0, 1))
	require.Equal(t, xa, xb)
}
