package crs

import (
	gometrics "github.com/rcrowley/go-metrics"
)

var (
	projectCounter       gometrics.Counter
	customProjectCounter gometrics.Counter
	populateTimer        gometrics.Timer
)

func init() {
	projectCounter = gometrics.NewRegisteredCounter("crs.project", gometrics.DefaultRegistry)
	customProjectCounter = gometrics.NewRegisteredCounter("crs.project.custom", gometrics.DefaultRegistry)
	populateTimer = gometrics.NewRegisteredTimer("crs.catalog.populate", gometrics.DefaultRegistry)
}

// Stats returns the number of projected points, of which by custom
// transforms, and the number of catalog populations.
func Stats() (projected, custom, populations int64) {
	return projectCounter.Count(), customProjectCounter.Count(), populateTimer.Count()
}
