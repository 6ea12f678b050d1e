package convert

import (
	"fmt"
	"strings"

	"github.com/dave/kml2osmand/elevation"
	"github.com/dave/kml2osmand/htmltext"
	"github.com/dave/kml2osmand/kml"
	"github.com/dave/kml2osmand/style"
	"go.uber.org/zap"
)

// Builder turns placemarks into waypoint and track records.
type Builder struct {
	Options    Options
	Elevations *elevation.Filler // nil disables elevation lookups
	Logger     *zap.Logger
}

func NewBuilder(opts Options, elevations *elevation.Filler, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{Options: opts, Elevations: elevations, Logger: logger}
}

// Point converts a placemark with <Point> geometry. Placemarks without point
// coordinates return nil.
func (b *Builder) Point(pm *kml.Placemark) (*Point, error) {
	if pm.Point == nil || strings.TrimSpace(pm.Point.Coordinates) == "" {
		return nil, nil
	}
	name := strings.TrimSpace(pm.Name)
	pos, hasEle, err := pm.Point.Pos()
	if err != nil {
		return nil, fmt.Errorf("waypoint %q: %w", name, err)
	}
	desc, err := b.description(pm)
	if err != nil {
		return nil, fmt.Errorf("waypoint %q: %w", name, err)
	}
	if b.Elevations != nil {
		changed, err := b.Elevations.Fill(&pos)
		if err != nil {
			return nil, fmt.Errorf("waypoint %q: %w", name, err)
		}
		hasEle = hasEle || changed
	}

	// New style icons carry an icon number and a color:
	//	#icon-1577-DB4436-nodesc
	// old style icons only the number:
	//	#icon-1369
	//	#icon-1085-labelson
	ref := style.ParseRef(pm.StyleUrl)
	icon := style.Classify(ref.IconKey())
	inline, hasInline := ref.InlineColor()
	color := style.ResolveIconColor(icon, inline, hasInline, ref.LabelSuffix(), b.Options.IconColor)

	b.Logger.Debug("waypoint",
		zap.String("name", name),
		zap.String("style", pm.StyleUrl),
		zap.String("icon", icon.Name),
		zap.String("color", color))

	return &Point{
		Pos:    pos,
		HasEle: hasEle,
		Name:   name,
		Desc:   desc,
		Icon:   icon,
		Color:  color,
	}, nil
}

// Path converts a placemark with <LineString> geometry. Placemarks without
// line coordinates return nil. A malformed coordinate fails the whole path.
func (b *Builder) Path(pm *kml.Placemark) (*Path, error) {
	if pm.LineString == nil || strings.TrimSpace(pm.LineString.Coordinates) == "" {
		return nil, nil
	}
	name := strings.TrimSpace(pm.Name)
	line, err := pm.LineString.Line()
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", name, err)
	}
	desc, err := b.description(pm)
	if err != nil {
		return nil, fmt.Errorf("track %q: %w", name, err)
	}
	if b.Elevations != nil {
		if _, err := b.Elevations.FillLine(line); err != nil {
			return nil, fmt.Errorf("track %q: %w", name, err)
		}
	}

	//	#line-0F9D58-1000
	// is color and width. The width (1000-32000) is not used, OsmAnd only has a
	// width for the whole file.
	ref := style.ParseRef(pm.StyleUrl)
	inline, hasInline := ref.LineColor()
	color := style.ResolveTrackColor(inline, hasInline, b.Options.TrackColor)

	b.Logger.Debug("track",
		zap.String("name", name),
		zap.Int("points", len(line)),
		zap.Float64("km", line.Length()),
		zap.String("start", fmt.Sprintf("%v,%v", line.Start().Lat, line.Start().Lon)),
		zap.String("end", fmt.Sprintf("%v,%v", line.End().Lat, line.End().Lon)),
		zap.String("color", color))

	return &Path{
		Name:         name,
		Desc:         desc,
		Vertices:     line,
		Color:        color,
		Transparency: b.Options.Transparency,
	}, nil
}

func (b *Builder) description(pm *kml.Placemark) (string, error) {
	desc := strings.TrimSpace(pm.Description)
	if !b.Options.PlainDesc || desc == "" {
		return desc, nil
	}
	return htmltext.Plain(desc)
}
