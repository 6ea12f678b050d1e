// Package preview renders a converted document to a PNG so a conversion can be
// checked without loading it into OsmAnd.
package preview

import (
	"fmt"
	"math"

	"github.com/dave/kml2osmand/convert"
	"github.com/dave/kml2osmand/geo"
	"github.com/fogleman/gg"
)

const (
	DefaultSize = 512
	margin      = 16.0
	markerSize  = 5.0
)

// Render draws the tracks of doc in their OsmAnd colors with the waypoints on
// top, scaled to fit a size x size image.
func Render(doc *convert.Document, size int) *gg.Context {
	dc := gg.NewContext(size, size)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	project := fit(doc, float64(size))

	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineWidth(lineWidth(doc.Extensions.Width))
	for _, path := range doc.Paths {
		if len(path.Vertices) == 0 {
			continue
		}
		dc.NewSubPath()
		for _, pos := range path.Vertices {
			x, y := project(pos)
			dc.LineTo(x, y)
		}
		// gg wants RRGGBBAA
		dc.SetHexColor("#" + path.Color + path.Transparency)
		dc.Stroke()
	}

	for _, p := range doc.Points {
		x, y := project(p.Pos)
		dc.DrawCircle(x, y, markerSize)
		dc.SetHexColor("#" + p.Color)
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1)
		dc.Stroke()
	}

	if doc.Name != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(doc.Name, 4, 4, 0, 1)
	}
	return dc
}

// Save renders doc and writes it to fpath as a PNG.
func Save(doc *convert.Document, size int, fpath string) error {
	if err := Render(doc, size).SavePNG(fpath); err != nil {
		return fmt.Errorf("saving preview %q: %w", fpath, err)
	}
	return nil
}

// OsmAnd widths are 1-24, scaled down so thin tracks stay visible.
func lineWidth(width int) float64 {
	if width < 1 {
		return 1
	}
	return math.Max(1, float64(width)/3)
}

// fit returns a projection of lat/lon onto the image that keeps every record
// of doc inside the margin and centred.
func fit(doc *convert.Document, size float64) func(geo.Pos) (float64, float64) {
	var all geo.Line
	for _, p := range doc.Points {
		all = append(all, p.Pos)
	}
	for _, path := range doc.Paths {
		all = append(all, path.Vertices...)
	}
	if len(all) == 0 {
		return func(geo.Pos) (float64, float64) { return size / 2, size / 2 }
	}

	min, max := all.Bounds()
	x0, y1 := mercator(min.Lat, min.Lon)
	x1, y0 := mercator(max.Lat, max.Lon)
	span := math.Max(x1-x0, y1-y0)
	scale := 1.0
	if span > 0 {
		scale = (size - 2*margin) / span
	}
	cx, cy := (x0+x1)/2, (y0+y1)/2
	return func(pos geo.Pos) (float64, float64) {
		x, y := mercator(pos.Lat, pos.Lon)
		return size/2 + (x-cx)*scale, size/2 + (y-cy)*scale
	}
}

// mercator converts latitude and longitude to web mercator pixel coordinates
// at zoom level 0.
func mercator(lat, lon float64) (float64, float64) {
	sinLat := math.Sin(lat * math.Pi / 180.0)
	pixelX := ((lon + 180.0) / 360.0) * 256.0
	pixelY := (0.5 - math.Log((1.0+sinLat)/(1.0-sinLat))/(4.0*math.Pi)) * 256.0
	return pixelX, pixelY
}
