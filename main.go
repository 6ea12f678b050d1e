package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/kml2osmand/convert"
	"github.com/dave/kml2osmand/elevation"
	"github.com/dave/kml2osmand/globals"
	"github.com/dave/kml2osmand/kml"
	"github.com/dave/kml2osmand/logging"
	"github.com/dave/kml2osmand/output"
	"github.com/dave/kml2osmand/preview"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(viper.New(), os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper, console io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kml2osmand [flags] <kml_file> <gpx_file>",
		Short: "Convert KML waypoints and tracks to OsmAnd GPX",
		Long: `Converts a KML or KMZ file exported from Google My Maps into a GPX file with the
OsmAnd extensions for track color, width and waypoint icons. Google icons are
translated into similar OsmAnd icons.

With --layers a GPX file is written for every layer, named with the output
name, a dash and the layer name. The file must be imported into OsmAnd with
"import as one track" for the track colors and width to take effect.`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}
			return loadConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, args[0], args[1], console)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolP("layers", "l", false, "write the tracks and waypoints of each layer to a separate GPX file")
	flags.StringP("transparency", "t", globals.DEFAULT_TRACK_TRANSPARENCY, "transparency for all tracks as 2 hex digits, 00 is transparent and FF opaque")
	flags.StringP("split", "s", globals.NO_SPLIT, "distance splits along tracks in miles, between 0.0 and 100.0")
	flags.IntP("width", "w", globals.DEFAULT_TRACK_WIDTH, "width for all tracks, 1-24")
	flags.String("track-color", globals.DEFAULT_TRACK_COLOR, "color for tracks without a style")
	flags.String("icon-color", globals.DEFAULT_ICON_COLOR, "color for waypoints without an inline color")
	flags.StringSlice("ignore", globals.DEFAULT_IGNORE, "layer names that are not converted")
	flags.Bool("elevations", false, "look up missing or zero elevations in SRTM data")
	flags.Bool("plain-desc", false, "convert html descriptions to plain text")
	flags.Bool("preview", false, "write a PNG preview next to each GPX file")
	flags.Int("preview-size", preview.DefaultSize, "width and height of the preview in pixels")
	flags.String("log-level", "info", "debug, info, warn or error")
	flags.String("log-file", "", "also write JSON logs to this file")
	flags.String("config", "", "config file (default ./.kml2osmand.yaml)")

	cmd.SetErr(console)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kml2osmand %s\n", globals.VERSION)
		},
	}
}

// loadConfig reads settings from KML2OSMAND_* environment variables and the
// optional config file. Flags given on the command line take precedence.
func loadConfig(v *viper.Viper) error {
	v.SetEnvPrefix("KML2OSMAND")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %q: %w", cfg, err)
		}
		return nil
	}
	v.SetConfigName(".kml2osmand")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func options(v *viper.Viper, out string) convert.Options {
	return convert.Options{
		Output:       out,
		Layers:       v.GetBool("layers"),
		Transparency: v.GetString("transparency"),
		Split:        v.GetString("split"),
		Width:        v.GetInt("width"),
		TrackColor:   v.GetString("track-color"),
		IconColor:    v.GetString("icon-color"),
		Ignore:       v.GetStringSlice("ignore"),
		PlainDesc:    v.GetBool("plain-desc"),
	}
}

func run(v *viper.Viper, in, out string, console io.Writer) error {
	logger, err := logging.New(v.GetString("log-level"), v.GetString("log-file"), console)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := options(v, out)
	if err := opts.Validate(); err != nil {
		return err
	}
	if size := v.GetInt("preview-size"); size < 1 {
		return fmt.Errorf("%w: preview size %d is not positive", convert.ErrInvalidOption, size)
	}

	logger.Info("KML to OsmAnd GPX file conversion",
		zap.String("version", globals.VERSION),
		zap.String("input", in),
		zap.String("output", out),
		zap.String("output path", filepath.Dir(out)),
		zap.String("output name", filepath.Base(out)),
		zap.Bool("layers", opts.Layers),
		zap.String("transparency", "0x"+opts.Transparency),
		zap.Int("width", opts.Width),
		zap.String("split", opts.Split))

	root, err := kml.Load(in)
	if err != nil {
		return fmt.Errorf("loading kml: %w", err)
	}

	var filler *elevation.Filler
	if v.GetBool("elevations") {
		srtm, err := elevation.NewSrtm(http.DefaultClient)
		if err != nil {
			return err
		}
		filler = elevation.NewFiller(srtm)
	}

	emitter := &output.Files{
		Preview:     v.GetBool("preview"),
		PreviewSize: v.GetInt("preview-size"),
		Logger:      logger,
	}
	converter := convert.New(convert.NewBuilder(opts, filler, logger), emitter, logger)
	totals, err := converter.Run(&root)
	if err != nil {
		return fmt.Errorf("converting %q: %w", in, err)
	}
	if filler != nil {
		logger.Debug("elevation lookups", zap.Int("locations", filler.Cached()))
	}
	logger.Info("conversion complete", zap.Int("files", totals.Files))
	return nil
}
