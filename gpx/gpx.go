// Package gpx is the GPX 1.1 document model written for OsmAnd, including the
// OsmAnd specific <extensions> blocks.
package gpx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dave/kml2osmand/geo"
)

const (
	Namespace = "http://www.topografix.com/GPX/1/1"
	Version   = "1.1"
)

type Root struct {
	XMLName    xml.Name        `xml:"gpx"`
	Version    string          `xml:"version,attr"`
	Creator    string          `xml:"creator,attr,omitempty"`
	Xmlns      string          `xml:"xmlns,attr"`
	Waypoints  []Waypoint      `xml:"wpt"`
	Tracks     []Track         `xml:"trk"`
	Extensions *FileExtensions `xml:"extensions,omitempty"`
}

// New returns an empty document with the GPX namespace and version set.
func New(creator string) *Root {
	return &Root{Version: Version, Creator: creator, Xmlns: Namespace}
}

// Encode writes the indented document, with an xml declaration, to w.
func (r *Root) Encode(w io.Writer) error {
	b, err := xml.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling gpx: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing gpx: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("writing gpx: %w", err)
	}
	return nil
}

func (r *Root) Save(fpath string) error {
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(fpath, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("writing gpx file %q: %w", fpath, err)
	}
	return nil
}

type Waypoint struct {
	Lat        string              `xml:"lat,attr"`
	Lon        string              `xml:"lon,attr"`
	Ele        string              `xml:"ele,omitempty"`
	Name       string              `xml:"name,omitempty"`
	Desc       string              `xml:"desc,omitempty"`
	Extensions *WaypointExtensions `xml:"extensions,omitempty"`
}

// WaypointExtensions are the OsmAnd favourite icon settings. Color includes
// the leading "#".
type WaypointExtensions struct {
	Icon       string `xml:"icon"`
	Background string `xml:"background"`
	Color      string `xml:"color"`
}

type Track struct {
	Name       string           `xml:"name,omitempty"`
	Desc       string           `xml:"desc,omitempty"`
	Segments   []TrackSegment   `xml:"trkseg"`
	Extensions *TrackExtensions `xml:"extensions,omitempty"`
}

// TrackExtensions carries the track color as "#AARRGGBB".
type TrackExtensions struct {
	Color string `xml:"color"`
}

type TrackSegment struct {
	Points []TrackPoint `xml:"trkpt"`
}

type TrackPoint struct {
	Lat string `xml:"lat,attr"`
	Lon string `xml:"lon,attr"`
	Ele string `xml:"ele,omitempty"`
}

// FileExtensions apply to every track in the file. OsmAnd has no per track
// width, arrows or split settings.
type FileExtensions struct {
	Width           int    `xml:"width"`
	ShowArrows      bool   `xml:"show_arrows"`
	ShowStartFinish bool   `xml:"show_start_finish"`
	SplitType       string `xml:"split_type"`
	SplitInterval   *int   `xml:"split_interval,omitempty"`
}

// Coord formats a coordinate with the shortest representation that round
// trips, never in exponent form.
func Coord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func LineTrackPoints(line geo.Line) []TrackPoint {
	points := make([]TrackPoint, len(line))
	for i, pos := range line {
		points[i] = TrackPoint{Lat: Coord(pos.Lat), Lon: Coord(pos.Lon), Ele: Coord(pos.Ele)}
	}
	return points
}
