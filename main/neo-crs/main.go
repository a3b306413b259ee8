package main

import (
	"context"

	"github.com/machbase/neo-crs/mods/crs"
	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(NewCmd().ExecuteContext(context.Background()))
}

func NewCmd() *cobra.Command {
	return newCmd(crs.Default())
}

func newCmd(cat *crs.Catalog) *cobra.Command {
	cobra.EnableCommandSorting = false

	app := &App{catalog: cat}
	rootCmd := &cobra.Command{
		Use:           "neo-crs [command] [flags] [args]",
		Short:         "neo-crs looks up coordinate reference systems and projects points",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: app.setup,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "`<path>` to the yaml config file")
	rootCmd.PersistentFlags().String("log-level", "", "`<level>` TRACE, DEBUG, INFO, WARN, ERROR")

	listCmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "List coordinate reference systems",
		RunE:  app.doList,
	}
	listCmd.Args = cobra.NoArgs
	listCmd.Flags().StringP("filter", "f", "", "`<pattern>` of names to list, e.g. 'EPSG:326*'")

	infoCmd := &cobra.Command{
		Use:   "info [flags] <name>",
		Short: "Show a coordinate reference system",
		RunE:  app.doInfo,
	}
	infoCmd.Args = cobra.ExactArgs(1)

	projectCmd := &cobra.Command{
		Use:   "project [flags] <x> <y> [z]",
		Short: "Project a point",
		RunE:  app.doProject,
	}
	projectCmd.Args = cobra.RangeArgs(2, 3)
	projectCmd.Flags().String("from", crs.NameWGS84, "`<name>` of the source system")
	projectCmd.Flags().String("to", crs.NameWebMercator, "`<name>` of the target system")
	projectCmd.Flags().Bool("check-area", false, "fail when a longitude/latitude input is outside the target area of use")

	bboxCmd := &cobra.Command{
		Use:   "bbox [flags] <file.geojson>",
		Short: "Print the WGS 84 bounding box of a GeoJSON file",
		RunE:  app.doBBox,
	}
	bboxCmd.Args = cobra.ExactArgs(1)

	rootCmd.AddCommand(
		listCmd,
		infoCmd,
		projectCmd,
		bboxCmd,
	)
	return rootCmd
}
