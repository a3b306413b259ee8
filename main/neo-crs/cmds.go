package main

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/machbase/neo-crs/mods/crs"
	"github.com/machbase/neo-crs/mods/logging"
	"github.com/machbase/neo-crs/mods/nums"
	"github.com/spf13/cobra"
)

type App struct {
	catalog *crs.Catalog
	log     logging.Log
}

func (app *App) setup(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	var conf *Config
	if configPath != "" {
		if conf, err = LoadConfig(configPath); err != nil {
			return err
		}
		if conf.Log != nil {
			if err := logging.Configure(conf.Log); err != nil {
				return err
			}
		}
	}
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	if levelName != "" {
		lvl, ok := logging.ParseLogLevelP(levelName)
		if !ok {
			return fmt.Errorf("invalid log level: %q", levelName)
		}
		logging.SetDefaultLevel(lvl)
	}
	app.log = logging.GetLog("neo-crs")

	if conf == nil {
		return nil
	}
	for _, def := range conf.Definitions {
		d, err := def.CRSData()
		if err != nil {
			return err
		}
		if err := app.catalog.Register(d); err != nil {
			return err
		}
		app.log.Infof("definition %s registered", d.Name())
	}
	return nil
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	return tw
}

func unitName(d *crs.CRSData) string {
	u, err := d.Unit()
	if err != nil {
		return "unsupported"
	}
	return u.Name
}

func kindName(d *crs.CRSData) string {
	if d.IsCustom() {
		if d.IsGeocentric() {
			return "custom geocentric"
		}
		return "custom"
	}
	return d.Projection().Kind().String()
}

func (app *App) doList(cmd *cobra.Command, args []string) error {
	filter, err := cmd.Flags().GetString("filter")
	if err != nil {
		return err
	}
	if filter != "" {
		if _, err := path.Match(filter, ""); err != nil {
			return fmt.Errorf("invalid filter %q: %w", filter, err)
		}
	}
	names, err := app.catalog.Names()
	if err != nil {
		return err
	}
	tw := newTable()
	tw.AppendHeader(table.Row{"NAME", "TITLE", "KIND", "UNIT"})
	count := 0
	for _, name := range names {
		if filter != "" {
			if ok, _ := path.Match(filter, name); !ok {
				continue
			}
		}
		d, err := app.catalog.Lookup(name)
		if err != nil {
			return err
		}
		title := ""
		if prj := d.Projection(); prj != nil {
			title = prj.Title()
		}
		tw.AppendRow(table.Row{name, title, kindName(d), unitName(d)})
		count++
	}
	tw.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d systems", count)})
	fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
	return nil
}

func (app *App) doInfo(cmd *cobra.Command, args []string) error {
	d, err := app.catalog.Lookup(args[0])
	if err != nil {
		return err
	}
	tw := newTable()
	tw.AppendHeader(table.Row{"PROPERTY", "VALUE"})
	tw.AppendRow(table.Row{"Name", d.Name()})
	if prj := d.Projection(); prj != nil {
		tw.AppendRow(table.Row{"Title", prj.Title()})
	}
	tw.AppendRow(table.Row{"Kind", kindName(d)})
	if u, err := d.Unit(); err != nil {
		tw.AppendRow(table.Row{"Unit", err.Error()})
	} else {
		tw.AppendRow(table.Row{"Unit", fmt.Sprintf("%s (%s)", u.Name, u.Symbol)})
	}
	tw.AppendRow(table.Row{"Custom", d.IsCustom()})
	tw.AppendRow(table.Row{"LatLon", d.IsLatLon()})
	tw.AppendRow(table.Row{"Geocentric", d.IsGeocentric()})
	if area, ok := d.AreaOfUse(); ok {
		tw.AppendRow(table.Row{"Area of use", area.String()})
	}
	if s := d.Proj4String(); s != "" {
		tw.AppendRow(table.Row{"PROJ", s})
	}
	if s := d.EsriString(); s != "" {
		tw.AppendRow(table.Row{"ESRI", s})
	}
	fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
	return nil
}

func (app *App) doProject(cmd *cobra.Command, args []string) error {
	fromName, err := cmd.Flags().GetString("from")
	if err != nil {
		return err
	}
	toName, err := cmd.Flags().GetString("to")
	if err != nil {
		return err
	}
	checkArea, err := cmd.Flags().GetBool("check-area")
	if err != nil {
		return err
	}
	from, err := app.catalog.Lookup(fromName)
	if err != nil {
		return err
	}
	to, err := app.catalog.Lookup(toName)
	if err != nil {
		return err
	}
	ords := []float64{0, 0, 0}
	for i, a := range args {
		if ords[i], err = strconv.ParseFloat(a, 64); err != nil {
			return fmt.Errorf("invalid ordinate %q", a)
		}
	}
	v := nums.NewVector3D(ords[0], ords[1], ords[2])
	if checkArea && from.IsLatLon() && !from.IsCustom() {
		if area, ok := to.AreaOfUse(); ok && !crs.IsValid(v, area) {
			return fmt.Errorf("%s is outside the area of use of %s [%s]", v, to.Name(), area)
		}
	}
	p, err := from.Project(v, to)
	if err != nil {
		return err
	}
	app.log.Debugf("project %s %s -> %s %s", from.Name(), v, to.Name(), p)
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(p.X, 'f', -1, 64),
		strconv.FormatFloat(p.Y, 'f', -1, 64),
		strconv.FormatFloat(p.Z, 'f', -1, 64))
	return nil
}

func (app *App) doBBox(cmd *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	box, err := crs.FromGeoJSON(b)
	if err != nil {
		return err
	}
	if box.Empty() {
		return errors.New("no geometry found")
	}
	tw := newTable()
	tw.AppendHeader(table.Row{"WEST", "SOUTH", "EAST", "NORTH"})
	tw.AppendRow(table.Row{
		box.WestBoundLongitudeDeg(),
		box.SouthBoundLatitudeDeg(),
		box.EastBoundLongitudeDeg(),
		box.NorthBoundLatitudeDeg(),
	})
	fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
	return nil
}
