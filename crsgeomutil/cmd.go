/*
Copyright © 2018 the crsgeom authors.
This file is part of crsgeom.

crsgeom is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

crsgeom is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with crsgeom.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package crsgeomutil holds the commands behind the crsgeom
// command-line tool.
package crsgeomutil

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ctessum/unit"

	"github.com/spatialmodel/crsgeom"
	"github.com/spatialmodel/crsgeom/encoding/geojson"
	"github.com/spatialmodel/crsgeom/randgeom"
	"github.com/spatialmodel/crsgeom/reproject"
	"github.com/spatialmodel/crsgeom/srs"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()

	// Options are the configuration options available to the
	// crsgeom tool.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "proj",
			usage: `
              proj specifies the PROJ4 definition of the reference system the
              input coordinates are in. If empty, the input is treated as
              longitude/latitude degrees and lengths are reported in meters.`,
			shorthand:  "p",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{infoCmd.Flags()},
		},
		{
			name: "from",
			usage: `
              from specifies the PROJ4 definition of the reference system the
              input coordinates are in.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{reprojectCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to specifies the PROJ4 definition of the reference system to
              reproject the input coordinates into.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{reprojectCmd.Flags()},
		},
		{
			name: "scenario",
			usage: `
              scenario specifies the TOML file describing the geometry to
              generate.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{randomCmd.Flags()},
		},
		{
			name: "seed",
			usage: `
              seed overrides the scenario's random seed. Zero keeps the
              scenario's own seed.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{randomCmd.Flags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, v, option.usage)
				} else {
					set.IntP(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(infoCmd)
	Root.AddCommand(reprojectCmd)
	Root.AddCommand(randomCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("crsgeom: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "crsgeom",
	Short: "A coordinate-system-aware geometry tool.",
	Long: `crsgeom inspects, reprojects and generates geospatial geometry.
Use the subcommands specified below to access the functionality.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag) or by using command-line
arguments.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of crsgeom.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("crsgeom v%s\n", crsgeom.Version)
	},
	DisableAutoGenTag: true,
}

var infoCmd = &cobra.Command{
	Use:   "info [file.geojson]",
	Short: "Summarize a GeoJSON geometry.",
	Long: `info reads GeoJSON from the given file (or standard input) and prints
the geometry's point count, bounds, length and area. Input in
longitude/latitude degrees (the default) is measured on the sphere and
reported in meters; input in a projected system (--proj) is measured in
the projection's own units.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		return Info(cmd.OutOrStdout(), data, Cfg.GetString("proj"))
	},
	DisableAutoGenTag: true,
}

var reprojectCmd = &cobra.Command{
	Use:   "reproject [file.geojson]",
	Short: "Reproject a GeoJSON geometry.",
	Long: `reproject reads GeoJSON from the given file (or standard input),
transforms its coordinates from the --from reference system into the
--to reference system, and writes the result as GeoJSON to standard
output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(args)
		if err != nil {
			return err
		}
		out, err := Reproject(data, Cfg.GetString("from"), Cfg.GetString("to"))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
	DisableAutoGenTag: true,
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate synthetic GeoJSON geometry.",
	Long: `random generates the synthetic geometry described by a TOML scenario
file (--scenario) and writes it as a GeoJSON GeometryCollection to
standard output. Coordinates are longitude/latitude degrees.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario := Cfg.GetString("scenario")
		if scenario == "" {
			return fmt.Errorf("crsgeom: the random command requires the --scenario flag")
		}
		out, err := Random(scenario, cast.ToInt64(Cfg.Get("seed")))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
	DisableAutoGenTag: true,
}

// readInput returns the contents of the file named by the first
// argument, or standard input if there is no argument or it is "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("crsgeom: reading input: %w", err)
	}
	return data, nil
}

// Info decodes GeoJSON and writes a summary of the geometry to w. If
// projRef is empty the coordinates are treated as longitude/latitude
// degrees and measures are spherical; otherwise they are treated as
// being in the projected system projRef defines.
func Info(w io.Writer, data []byte, projRef string) error {
	if projRef == "" {
		g, err := geojson.Decode(data, crsgeom.Geodetic{})
		if err != nil {
			return err
		}
		return printInfo(w, g, true)
	}
	g, err := geojson.Decode(data, crsgeom.NewProjected(projRef))
	if err != nil {
		return err
	}
	return printInfo(w, g, false)
}

var squareMeters = unit.Dimensions{unit.LengthDim: 2}

func printInfo[C crsgeom.CRS](w io.Writer, g crsgeom.Geometry[crsgeom.Point[C]], meters bool) error {
	fmt.Fprintf(w, "points: %d\n", crsgeom.NumPoints(g))
	b, err := crsgeom.BoundsOf(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bounds: (%g, %g) to (%g, %g)\n",
		b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
	length, err := crsgeom.Length(g)
	if err != nil {
		return err
	}
	area, err := crsgeom.Area(g)
	if err != nil {
		return err
	}
	if meters {
		fmt.Fprintf(w, "length: %v\n", unit.New(length, unit.Meter))
		fmt.Fprintf(w, "area: %v\n", unit.New(area, squareMeters))
	} else {
		fmt.Fprintf(w, "length: %g\n", length)
		fmt.Fprintf(w, "area: %g\n", area)
	}
	return nil
}

// Reproject decodes GeoJSON whose coordinates are in the fromRef
// reference system, transforms them into the toRef system, and
// re-encodes the result.
func Reproject(data []byte, fromRef, toRef string) ([]byte, error) {
	if fromRef == "" || toRef == "" {
		return nil, fmt.Errorf("crsgeom: the reproject command requires the --from and --to flags")
	}
	src := crsgeom.NewProjected(fromRef)
	dst := crsgeom.NewProjected(toRef)
	g, err := geojson.Decode(data, src)
	if err != nil {
		return nil, err
	}
	out, err := reproject.Geometry(g, src, dst, srs.New())
	if err != nil {
		return nil, err
	}
	return geojson.Encode(out)
}

// Random generates the geometry a TOML scenario file describes and
// encodes it as a GeoJSON GeometryCollection. A nonzero seed overrides
// the scenario's seed.
func Random(scenarioFile string, seed int64) ([]byte, error) {
	s, err := randgeom.LoadScenario(scenarioFile)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		s.Seed = seed
	}
	if s.Seed == 0 {
		log.Println("crsgeom: no seed given; using OS entropy")
	}
	geoms, err := randgeom.Run(s, crsgeom.Geodetic{})
	if err != nil {
		return nil, err
	}
	return geojson.Encode[crsgeom.Geodetic](crsgeom.NewCollection(geoms))
}
