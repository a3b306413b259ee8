package main

import (
	"fmt"
	"os"

	"github.com/machbase/neo-crs/mods/crs"
	"github.com/machbase/neo-crs/mods/logging"
	"gopkg.in/yaml.v3"
)

// Config is the yaml config file of neo-crs.
//
//	log:
//	  filename: "-"
//	  defaultLevel: INFO
//	definitions:
//	  - name: SITE:1
//	    proj4: "+proj=tmerc +lat_0=38 +lon_0=127 +k=1 +x_0=200000 +y_0=600000 +ellps=GRS80 +units=m"
type Config struct {
	Log         *logging.Config `yaml:"log"`
	Definitions []Definition    `yaml:"definitions"`
}

// Definition is a coordinate reference system given by either
// an Esri WKT or a PROJ string.
type Definition struct {
	Name  string `yaml:"name"`
	Esri  string `yaml:"esri"`
	Proj4 string `yaml:"proj4"`
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ret := &Config{}
	if err := yaml.Unmarshal(b, ret); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return ret, nil
}

func (d Definition) CRSData() (*crs.CRSData, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("definition without name")
	}
	switch {
	case d.Esri != "" && d.Proj4 != "":
		return nil, fmt.Errorf("definition %s: esri and proj4 are exclusive", d.Name)
	case d.Esri != "":
		return crs.NewEsriCRSData(d.Name, d.Esri)
	case d.Proj4 != "":
		return crs.NewProj4CRSData(d.Name, d.Proj4)
	default:
		return nil, fmt.Errorf("definition %s: esri or proj4 is required", d.Name)
	}
}
