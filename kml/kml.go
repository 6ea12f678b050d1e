package kml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/dave/kml2osmand/geo"
	"github.com/klauspost/compress/zip"
)

// ErrNoKML is returned when a kmz archive doesn't contain a kml document.
var ErrNoKML = errors.New("no kml document in archive")

// ErrCoordinates is returned for coordinate text that can't be decoded.
var ErrCoordinates = errors.New("malformed coordinates")

var zipMagic = []byte("PK\x03\x04")

// Load reads a kml file, or a kmz archive containing one.
func Load(fpath string) (Root, error) {
	b, err := os.ReadFile(fpath)
	if err != nil {
		return Root{}, fmt.Errorf("reading kml %q: %w", fpath, err)
	}
	if bytes.HasPrefix(b, zipMagic) {
		return DecodeKmz(bytes.NewReader(b), int64(len(b)))
	}
	return Decode(bytes.NewBuffer(b))
}

func Decode(reader io.Reader) (Root, error) {
	var r Root
	if err := xml.NewDecoder(reader).Decode(&r); err != nil {
		return Root{}, fmt.Errorf("decoding kml: %w", err)
	}
	return r, nil
}

// DecodeKmz decodes the main document of a kmz archive. Google exports name it
// doc.kml, otherwise the first .kml entry is used.
func DecodeKmz(reader io.ReaderAt, size int64) (Root, error) {
	zr, err := zip.NewReader(reader, size)
	if err != nil {
		return Root{}, fmt.Errorf("opening kmz: %w", err)
	}
	var main *zip.File
	for _, f := range zr.File {
		if !strings.EqualFold(path.Ext(f.Name), ".kml") {
			continue
		}
		if main == nil || path.Base(f.Name) == "doc.kml" {
			main = f
		}
	}
	if main == nil {
		return Root{}, ErrNoKML
	}
	rc, err := main.Open()
	if err != nil {
		return Root{}, fmt.Errorf("opening %q in kmz: %w", main.Name, err)
	}
	defer rc.Close()
	return Decode(rc)
}

type Root struct {
	Xmlns    string   `xml:"xmlns,attr"`
	Document Document `xml:"Document"`
}

type Document struct {
	Name        string       `xml:"name"`
	Description string       `xml:"description"`
	Folders     []*Folder    `xml:"Folder"`
	Placemarks  []*Placemark `xml:"Placemark"`
}

// Title is the name used when the whole document is converted as one layer.
func (d *Document) Title() string {
	return d.Name
}

type Folder struct {
	Name        string       `xml:"name"`
	Description string       `xml:"description"`
	Placemarks  []*Placemark `xml:"Placemark"`
	Folders     []*Folder    `xml:"Folder"`
}

func (f *Folder) Title() string {
	return strings.TrimSpace(f.Name)
}

// AllPlacemarks returns the placemarks of the folder and all of its sub
// folders, in document order.
func (f *Folder) AllPlacemarks() []*Placemark {
	placemarks := append([]*Placemark{}, f.Placemarks...)
	for _, sub := range f.Folders {
		placemarks = append(placemarks, sub.AllPlacemarks()...)
	}
	return placemarks
}

type Placemark struct {
	Name        string      `xml:"name"`
	Description string      `xml:"description"`
	StyleUrl    string      `xml:"styleUrl,omitempty"`
	Point       *Point      `xml:"Point,omitempty"`
	LineString  *LineString `xml:"LineString,omitempty"`
}

type Point struct {
	Coordinates string `xml:"coordinates"`
}

// Pos decodes "lon,lat[,ele]". The returned bool reports whether an elevation
// was present.
func (p Point) Pos() (geo.Pos, bool, error) {
	return parseTuple(strings.TrimSpace(p.Coordinates), false)
}

type LineString struct {
	Coordinates string `xml:"coordinates"`
}

// Line decodes the whitespace separated "lon,lat,ele" tuples of the line. Every
// tuple must be complete.
func (l LineString) Line() (geo.Line, error) {
	tuples := strings.Fields(l.Coordinates)
	line := make(geo.Line, len(tuples))
	for i, csv := range tuples {
		pos, _, err := parseTuple(csv, true)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		line[i] = pos
	}
	return line, nil
}

func parseTuple(csv string, needEle bool) (geo.Pos, bool, error) {
	var p geo.Pos
	parts := strings.Split(csv, ",")
	if len(parts) < 2 || len(parts) > 3 || (needEle && len(parts) != 3) {
		return p, false, fmt.Errorf("%w: %q", ErrCoordinates, csv)
	}
	values := make([]float64, len(parts))
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return p, false, fmt.Errorf("%w: %q", ErrCoordinates, csv)
		}
		values[i] = v
	}
	p.Lon, p.Lat = values[0], values[1]
	if len(values) == 3 {
		p.Ele = values[2]
		return p, true, nil
	}
	return p, false, nil
}
