package crs_test

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/machbase/neo-crs/mods/crs"
	"github.com/machbase/neo-crs/mods/logging"
	"github.com/machbase/neo-crs/mods/nums"
	"github.com/machbase/neo-crs/mods/proj"
	"github.com/machbase/neo-crs/mods/units"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	cat := crs.NewCatalog()

	wgs, err := cat.Lookup("EPSG:4326")
	require.NoError(t, err)
	require.True(t, wgs.IsLatLon())
	require.False(t, wgs.IsCustom())

	merc, err := cat.Lookup("EPSG:3857")
	require.NoError(t, err)
	require.False(t, merc.IsCustom())
	require.False(t, merc.IsLatLon())

	_, err = cat.Lookup("EPSG:0")
	require.True(t, errors.Is(err, crs.ErrNotFound))
	require.Contains(t, err.Error(), "EPSG:0")

	shortcut, err := cat.WGS84()
	require.NoError(t, err)
	require.Same(t, wgs, shortcut)
	again, err := cat.WGS84()
	require.NoError(t, err)
	require.Same(t, shortcut, again)

	shortcut, err = cat.WebMercator()
	require.NoError(t, err)
	require.Same(t, merc, shortcut)

	names, err := cat.Names()
	require.NoError(t, err)
	require.Equal(t, cat.Len(), len(names))
	require.True(t, sort.StringsAreSorted(names))
	require.Contains(t, names, "EPSG:32652")
}

func TestCatalogRegisterCustom(t *testing.T) {
	buf := &bytes.Buffer{}
	cat := crs.NewCatalog(crs.WithLog(logging.NewLog("crs-test", buf)))
	before := cat.Len()

	info := crs.NewCustomCRSInfo("site-grid", false, units.Foot, shift(10))
	registered, err := cat.RegisterCustom(info)
	require.NoError(t, err)
	require.Equal(t, before+1, cat.Len())

	found, err := cat.Lookup("site-grid")
	require.NoError(t, err)
	require.Same(t, registered, found)
	require.True(t, found.IsCustom())
	u, err := found.Unit()
	require.NoError(t, err)
	require.Equal(t, units.Foot, u)

	// collisions fail and keep the existing entry
	_, err = cat.RegisterCustom(crs.NewCustomCRSInfo("site-grid", true, units.Meter, shift(0)))
	require.True(t, errors.Is(err, crs.ErrDuplicate))
	_, err = cat.RegisterCustom(crs.NewCustomCRSInfo("EPSG:4326", false, units.Meter, shift(0)))
	require.True(t, errors.Is(err, crs.ErrDuplicate))
	found, err = cat.Lookup("site-grid")
	require.NoError(t, err)
	require.Same(t, registered, found)
	wgs, err := cat.WGS84()
	require.NoError(t, err)
	require.False(t, wgs.IsCustom())
	require.Equal(t, before+1, cat.Len())
	require.Contains(t, buf.String(), "register site-grid rejected")

	parsed, err := crs.NewProj4CRSData("local-tm", "+proj=tmerc +lat_0=0 +lon_0=127 +k=1 +x_0=0 +y_0=0 +ellps=GRS80 +units=m")
	require.NoError(t, err)
	require.NoError(t, cat.Register(parsed))
	found, err = cat.Lookup("local-tm")
	require.NoError(t, err)
	require.False(t, found.IsCustom())
	require.True(t, errors.Is(cat.Register(parsed), crs.ErrDuplicate))
}

func TestCatalogConcurrentFirstAccess(t *testing.T) {
	var calls int32
	cat := crs.NewCatalog(crs.WithSource(func() ([]*proj.Projection, error) {
		atomic.AddInt32(&calls, 1)
		return proj.AuthorityCodes()
	}))

	wg := sync.WaitGroup{}
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := cat.Lookup("EPSG:3857"); err != nil {
				errs <- err
			}
		}()
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("custom-%d", n)
			if _, err := cat.RegisterCustom(crs.NewCustomCRSInfo(name, false, units.Meter, shift(0))); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < 32; i++ {
		_, err := cat.Lookup(fmt.Sprintf("custom-%d", i))
		require.NoError(t, err)
	}
}

func TestCatalogSource(t *testing.T) {
	cat := crs.NewCatalog(crs.WithSource(func() ([]*proj.Projection, error) {
		return nil, errors.New("database unavailable")
	}))
	_, err := cat.Lookup("EPSG:4326")
	require.ErrorContains(t, err, "database unavailable")
	_, err = cat.WGS84()
	require.Error(t, err)
	_, err = cat.RegisterCustom(crs.NewCustomCRSInfo("x", false, units.Meter, shift(0)))
	require.Error(t, err)
	require.Equal(t, 0, cat.Len())

	empty := crs.NewCatalog(crs.WithSource(func() ([]*proj.Projection, error) {
		return nil, nil
	}))
	_, err = empty.WebMercator()
	require.True(t, errors.Is(err, crs.ErrNotFound))
}

func TestDefaultCatalog(t *testing.T) {
	require.Same(t, crs.Default(), crs.Default())

	wgs, err := crs.WGS84()
	require.NoError(t, err)
	merc, err := crs.WebMercator()
	require.NoError(t, err)

	_, err = crs.RegisterCustom(crs.NewCustomCRSInfo("default-local", false, units.Meter, shift(1000)))
	require.NoError(t, err)
	local, err := crs.Lookup("default-local")
	require.NoError(t, err)

	p, err := crs.Project(nums.NewVector3D(12.49, 41.90, 0), wgs, merc)
	require.NoError(t, err)
	p, err = merc.Project(p, local)
	require.NoError(t, err)
	require.InDelta(t, 1391380.44, p.X, 1e-2)
}

func TestStats(t *testing.T) {
	projected, custom, populations := crs.Stats()

	cat := crs.NewCatalog()
	wgs, err := cat.WGS84()
	require.NoError(t, err)
	merc, err := cat.WebMercator()
	require.NoError(t, err)
	local := crs.NewCustomCRSData(crs.NewCustomCRSInfo("local", false, units.Meter, shift(1)))

	_, err = wgs.Project(nums.NewVector2D(1, 1), merc)
	require.NoError(t, err)
	_, err = wgs.Project(nums.NewVector2D(1, 1), local)
	require.NoError(t, err)

	p2, c2, pop2 := crs.Stats()
	require.Equal(t, projected+2, p2)
	require.Equal(t, custom+1, c2)
	require.Equal(t, populations+1, pop2)
}
