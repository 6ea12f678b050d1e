// Package output writes converted documents as OsmAnd GPX files.
package output

import (
	"strings"

	"github.com/dave/kml2osmand/convert"
	"github.com/dave/kml2osmand/globals"
	"github.com/dave/kml2osmand/gpx"
	"github.com/dave/kml2osmand/preview"
	"go.uber.org/zap"
)

// Files is the convert.Emitter that saves GPX files, and optionally a PNG
// preview beside each of them.
type Files struct {
	Preview     bool
	PreviewSize int
	Logger      *zap.Logger
}

func (f *Files) Emit(doc *convert.Document, fpath string) error {
	if err := GPX(doc).Save(fpath); err != nil {
		return err
	}
	if !f.Preview {
		return nil
	}
	size := f.PreviewSize
	if size == 0 {
		size = preview.DefaultSize
	}
	png := strings.TrimSuffix(fpath, ".gpx") + ".png"
	if err := preview.Save(doc, size, png); err != nil {
		return err
	}
	if f.Logger != nil {
		f.Logger.Debug("wrote preview", zap.String("file", png))
	}
	return nil
}

// GPX builds the GPX document: waypoints first, then tracks, then the file
// level extensions.
func GPX(doc *convert.Document) *gpx.Root {
	root := gpx.New("kml2osmand " + globals.VERSION)
	for _, p := range doc.Points {
		w := gpx.Waypoint{
			Lat:  gpx.Coord(p.Pos.Lat),
			Lon:  gpx.Coord(p.Pos.Lon),
			Name: p.Name,
			Desc: p.Desc,
			Extensions: &gpx.WaypointExtensions{
				Icon:       p.Icon.Name,
				Background: string(p.Icon.Shape),
				Color:      "#" + p.Color,
			},
		}
		if p.HasEle {
			w.Ele = gpx.Coord(p.Pos.Ele)
		}
		root.Waypoints = append(root.Waypoints, w)
	}
	for _, p := range doc.Paths {
		root.Tracks = append(root.Tracks, gpx.Track{
			Name:       p.Name,
			Desc:       p.Desc,
			Segments:   []gpx.TrackSegment{{Points: gpx.LineTrackPoints(p.Vertices)}},
			Extensions: &gpx.TrackExtensions{Color: "#" + p.ARGB()},
		})
	}
	root.Extensions = fileExtensions(doc.Extensions)
	return root
}

func fileExtensions(ext convert.FileExtensions) *gpx.FileExtensions {
	out := &gpx.FileExtensions{
		Width:           ext.Width,
		ShowArrows:      ext.ShowArrows,
		ShowStartFinish: ext.ShowStartFinish,
		SplitType:       globals.NO_SPLIT,
	}
	if ext.Split {
		interval := ext.SplitInterval
		out.SplitType = "distance"
		out.SplitInterval = &interval
	}
	return out
}
