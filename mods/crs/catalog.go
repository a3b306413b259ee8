package crs

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/machbase/neo-crs/mods/logging"
	"github.com/machbase/neo-crs/mods/proj"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const (
	NameWGS84       = "EPSG:4326"
	NameWebMercator = "EPSG:3857"
)

// Catalog maps names to coordinate reference systems. It is populated
// from the authority database on first use and is append only afterwards.
type Catalog struct {
	log     logging.Log
	source  func() ([]*proj.Projection, error)
	entries cmap.ConcurrentMap[string, *CRSData]

	populateOnce sync.Once
	populateErr  error

	wgs84Once sync.Once
	wgs84     *CRSData
	wgs84Err  error

	mercOnce sync.Once
	merc     *CRSData
	mercErr  error
}

type Option func(*Catalog)

// WithSource replaces the authority database the catalog is populated from.
func WithSource(fn func() ([]*proj.Projection, error)) Option {
	return func(c *Catalog) {
		c.source = fn
	}
}

func WithLog(log logging.Log) Option {
	return func(c *Catalog) {
		c.log = log
	}
}

func NewCatalog(opts ...Option) *Catalog {
	ret := &Catalog{
		source:  proj.AuthorityCodes,
		entries: cmap.New[*CRSData](),
	}
	for _, o := range opts {
		o(ret)
	}
	if ret.log == nil {
		ret.log = logging.GetLog("crs-catalog")
	}
	return ret
}

func (c *Catalog) populate() error {
	c.populateOnce.Do(func() {
		tick := time.Now()
		list, err := c.source()
		if err != nil {
			c.populateErr = fmt.Errorf("crs catalog: %w", err)
			c.log.Errorf("populate %s", err.Error())
			return
		}
		for _, p := range list {
			if !c.entries.SetIfAbsent(p.Code(), NewCRSData(p)) {
				c.log.Warnf("duplicated authority code %s ignored", p.Code())
			}
		}
		populateTimer.UpdateSince(tick)
		c.log.Infof("populated %d crs in %v", c.entries.Count(), time.Since(tick))
	})
	return c.populateErr
}

// Lookup returns the system registered with the given name.
func (c *Catalog) Lookup(name string) (*CRSData, error) {
	if err := c.populate(); err != nil {
		return nil, err
	}
	if ret, ok := c.entries.Get(name); ok {
		return ret, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// RegisterCustom adds a custom system named after info.
// An existing name is never replaced, it fails with ErrDuplicate.
func (c *Catalog) RegisterCustom(info *CustomCRSInfo) (*CRSData, error) {
	ret := NewCustomCRSData(info)
	if err := c.Register(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Register adds a system, typically parsed from a definition string.
func (c *Catalog) Register(d *CRSData) error {
	if err := c.populate(); err != nil {
		return err
	}
	if !c.entries.SetIfAbsent(d.Name(), d) {
		c.log.Warnf("register %s rejected, name exists", d.Name())
		return fmt.Errorf("%w: %s", ErrDuplicate, d.Name())
	}
	c.log.Debugf("registered %s", d.String())
	return nil
}

// Names returns the sorted names of all systems.
func (c *Catalog) Names() ([]string, error) {
	if err := c.populate(); err != nil {
		return nil, err
	}
	ret := c.entries.Keys()
	sort.Strings(ret)
	return ret, nil
}

func (c *Catalog) Len() int {
	if err := c.populate(); err != nil {
		return 0
	}
	return c.entries.Count()
}

// WGS84 is the geographic WGS 84 system, EPSG:4326.
func (c *Catalog) WGS84() (*CRSData, error) {
	c.wgs84Once.Do(func() {
		c.wgs84, c.wgs84Err = c.Lookup(NameWGS84)
	})
	return c.wgs84, c.wgs84Err
}

// WebMercator is the spherical mercator of web maps, EPSG:3857.
func (c *Catalog) WebMercator() (*CRSData, error) {
	c.mercOnce.Do(func() {
		c.merc, c.mercErr = c.Lookup(NameWebMercator)
	})
	return c.merc, c.mercErr
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the process wide catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = NewCatalog()
	})
	return defaultCatalog
}

func Lookup(name string) (*CRSData, error) {
	return Default().Lookup(name)
}

func RegisterCustom(info *CustomCRSInfo) (*CRSData, error) {
	return Default().RegisterCustom(info)
}

func WGS84() (*CRSData, error) {
	return Default().WGS84()
}

func WebMercator() (*CRSData, error) {
	return Default().WebMercator()
}
