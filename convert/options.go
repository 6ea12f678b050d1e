package convert

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/dave/kml2osmand/globals"
)

var ErrInvalidOption = errors.New("invalid option")

var (
	transparencyRegex = regexp.MustCompile(`^[0-9A-Fa-f]{2}$`)
	colorRegex        = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
)

type Options struct {
	Output       string   // output file, or path and name prefix when Layers is set
	Layers       bool     // one output file per layer
	Transparency string   // AA hex applied to every track
	Split        string   // split interval in miles, or globals.NO_SPLIT
	Width        int      // track width 1-24
	TrackColor   string   // for tracks without a style
	IconColor    string   // for waypoints that have no usable inline color
	Ignore       []string // layer names that are skipped
	PlainDesc    bool     // flatten html descriptions
}

func DefaultOptions() Options {
	return Options{
		Transparency: globals.DEFAULT_TRACK_TRANSPARENCY,
		Split:        globals.NO_SPLIT,
		Width:        globals.DEFAULT_TRACK_WIDTH,
		TrackColor:   globals.DEFAULT_TRACK_COLOR,
		IconColor:    globals.DEFAULT_ICON_COLOR,
		Ignore:       append([]string{}, globals.DEFAULT_IGNORE...),
	}
}

func (o Options) Validate() error {
	if o.Output == "" {
		return fmt.Errorf("%w: no output file", ErrInvalidOption)
	}
	if !transparencyRegex.MatchString(o.Transparency) {
		return fmt.Errorf("%w: transparency %q is not a 2 digit hex value", ErrInvalidOption, o.Transparency)
	}
	if o.Width < 1 || o.Width > 24 {
		return fmt.Errorf("%w: width %d is not between 1 and 24", ErrInvalidOption, o.Width)
	}
	if !colorRegex.MatchString(o.TrackColor) {
		return fmt.Errorf("%w: track color %q is not a 6 digit hex value", ErrInvalidOption, o.TrackColor)
	}
	if !colorRegex.MatchString(o.IconColor) {
		return fmt.Errorf("%w: icon color %q is not a 6 digit hex value", ErrInvalidOption, o.IconColor)
	}
	if _, err := o.FileExtensions(); err != nil {
		return err
	}
	return nil
}

// FileExtensions builds the file level settings. The split interval is
// converted from miles to meters.
func (o Options) FileExtensions() (FileExtensions, error) {
	ext := FileExtensions{Width: o.Width}
	if o.Split == globals.NO_SPLIT || o.Split == "" {
		return ext, nil
	}
	miles, err := strconv.ParseFloat(o.Split, 64)
	if err != nil || miles <= 0 || miles > 100 {
		return FileExtensions{}, fmt.Errorf("%w: split %q is not a distance between 0 and 100 miles", ErrInvalidOption, o.Split)
	}
	ext.Split = true
	ext.SplitInterval = int(math.Round(miles * globals.METERS_PER_MILE))
	return ext, nil
}

func (o Options) ignored(name string) bool {
	for _, ignore := range o.Ignore {
		if name == ignore {
			return true
		}
	}
	return false
}

// LayerPath is the output file for a layer: the output name with "-" and the
// layer name appended, in the output's directory.
func LayerPath(output, layer string) string {
	layer = strings.NewReplacer("/", "_", `\`, "_").Replace(layer)
	return filepath.Join(filepath.Dir(output), filepath.Base(output)+"-"+layer+".gpx")
}
