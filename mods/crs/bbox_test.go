package crs_test

import (
	"errors"
	"testing"

	"github.com/machbase/neo-crs/mods/crs"
	"github.com/machbase/neo-crs/mods/nums"
	"github.com/stretchr/testify/require"
)

func TestWgs84BBox(t *testing.T) {
	box := crs.NewWgs84BBox()
	require.True(t, box.Empty())
	require.Equal(t, "empty", box.String())
	_, err := box.AreaOfUse()
	require.True(t, errors.Is(err, crs.ErrInvalidBounds))

	box = crs.NewWgs84BBox(
		nums.NewVector3D(12.49, 41.90, 20),
		nums.NewVector3D(9.19, 45.46, 120),
		nums.NewVector3D(14.25, 40.85, 17),
	)
	require.False(t, box.Empty())
	require.Equal(t, 9.19, box.WestBoundLongitudeDeg())
	require.Equal(t, 40.85, box.SouthBoundLatitudeDeg())
	require.Equal(t, 14.25, box.EastBoundLongitudeDeg())
	require.Equal(t, 45.46, box.NorthBoundLatitudeDeg())

	area, err := box.AreaOfUse()
	require.NoError(t, err)
	require.True(t, area.Contains(12.49, 41.90))
	require.False(t, area.Contains(15, 41.90))

	single := crs.NewWgs84BBox(nums.NewVector2D(1, 2))
	require.Equal(t, 1.0, single.WestBoundLongitudeDeg())
	require.Equal(t, 1.0, single.EastBoundLongitudeDeg())
	require.Equal(t, 2.0, single.Bound().Min.Lat())
}

func TestWgs84BBoxGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		json string
		w, s float64
		e, n float64
	}{
		{
			name: "point",
			json: `{"type":"Point","coordinates":[126.97,37.56]}`,
			w:    126.97, s: 37.56, e: 126.97, n: 37.56,
		},
		{
			name: "linestring",
			json: `{"type":"LineString","coordinates":[[126.97,37.56],[129.07,35.17]]}`,
			w:    126.97, s: 35.17, e: 129.07, n: 37.56,
		},
		{
			name: "feature",
			json: `{"type":"Feature","properties":{"name":"seoul"},
				"geometry":{"type":"Polygon","coordinates":[[[126.7,37.4],[127.2,37.4],[127.2,37.7],[126.7,37.7],[126.7,37.4]]]}}`,
			w: 126.7, s: 37.4, e: 127.2, n: 37.7,
		},
		{
			name: "collection",
			json: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[-3.70,40.41]}},
				{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[2.35,48.85]}}]}`,
			w: -3.70, s: 40.41, e: 2.35, n: 48.85,
		},
	}
	for _, tt := range tests {
		box, err := crs.FromGeoJSON([]byte(tt.json))
		require.NoError(t, err, tt.name)
		require.False(t, box.Empty(), tt.name)
		require.InDelta(t, tt.w, box.WestBoundLongitudeDeg(), 1e-12, tt.name)
		require.InDelta(t, tt.s, box.SouthBoundLatitudeDeg(), 1e-12, tt.name)
		require.InDelta(t, tt.e, box.EastBoundLongitudeDeg(), 1e-12, tt.name)
		require.InDelta(t, tt.n, box.NorthBoundLatitudeDeg(), 1e-12, tt.name)
	}

	box, err := crs.FromGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	require.NoError(t, err)
	require.True(t, box.Empty())

	_, err = crs.FromGeoJSON([]byte(`{"type":"Circle"}`))
	require.Error(t, err)
	_, err = crs.FromGeoJSON([]byte(`not json`))
	require.Error(t, err)
}

func TestWgs84BBoxGeoJSONEmptyGeometry(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "collection",
			json: `{"type":"FeatureCollection","features":[
				{"type":"Feature","properties":{},"geometry":{"type":"MultiPoint","coordinates":[]}},
				{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[10,20]}}]}`,
		},
		{
			name: "geometry collection",
			json: `{"type":"GeometryCollection","geometries":[
				{"type":"LineString","coordinates":[]},
				{"type":"GeometryCollection","geometries":[{"type":"MultiPoint","coordinates":[]},{"type":"Point","coordinates":[10,20]}]}]}`,
		},
		{
			name: "multipolygon",
			json: `{"type":"MultiPolygon","coordinates":[[],[[[10,20],[10,20],[10,20],[10,20]]]]}`,
		},
	}
	for _, tt := range tests {
		box, err := crs.FromGeoJSON([]byte(tt.json))
		require.NoError(t, err, tt.name)
		require.False(t, box.Empty(), tt.name)
		require.Equal(t, "west[10], south[20], east[10], north[20]", box.String(), tt.name)
	}

	for _, doc := range []string{
		`{"type":"MultiPoint","coordinates":[]}`,
		`{"type":"GeometryCollection","geometries":[]}`,
		`{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[]}}`,
		`{"type":"Feature","properties":{},"geometry":null}`,
	} {
		box, err := crs.FromGeoJSON([]byte(doc))
		require.NoError(t, err, doc)
		require.True(t, box.Empty(), doc)
		_, err = box.AreaOfUse()
		require.True(t, errors.Is(err, crs.ErrInvalidBounds), doc)
	}
}
