package kml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <name>Trip</name>
    <Style id="icon-1739-0288D1-nodesc-normal"><IconStyle><scale>1</scale></IconStyle></Style>
    <Folder>
      <name>Day 1</name>
      <Placemark>
        <name>Mileage Marker dot</name>
        <description><![CDATA[first<br>marker]]></description>
        <styleUrl>#icon-1739-0288D1-nodesc</styleUrl>
        <Point>
          <coordinates>-120.8427259,38.8170119,0</coordinates>
        </Point>
      </Placemark>
      <Placemark>
        <name>Route</name>
        <styleUrl>#line-0F9D58-1000</styleUrl>
        <LineString>
          <tessellate>1</tessellate>
          <coordinates>
            1,2,0
            3,4,0
            5,6,0
          </coordinates>
        </LineString>
      </Placemark>
      <Folder>
        <name>Nested</name>
        <Placemark><name>Inner</name><Point><coordinates>7,8,9</coordinates></Point></Placemark>
      </Folder>
    </Folder>
    <Folder>
      <name> Untitled layer </name>
    </Folder>
  </Document>
</kml>`

func TestDecode(t *testing.T) {
	root, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "http://www.opengis.net/kml/2.2", root.Xmlns)
	assert.Equal(t, "Trip", root.Document.Title())
	require.Len(t, root.Document.Folders, 2)

	day := root.Document.Folders[0]
	assert.Equal(t, "Day 1", day.Title())
	assert.Equal(t, "Untitled layer", root.Document.Folders[1].Title())

	placemarks := day.AllPlacemarks()
	require.Len(t, placemarks, 3)
	assert.Equal(t, "Mileage Marker dot", placemarks[0].Name)
	assert.Equal(t, "first<br>marker", placemarks[0].Description)
	assert.Equal(t, "#icon-1739-0288D1-nodesc", placemarks[0].StyleUrl)
	require.NotNil(t, placemarks[0].Point)
	assert.Nil(t, placemarks[0].LineString)
	assert.Equal(t, "Route", placemarks[1].Name)
	require.NotNil(t, placemarks[1].LineString)
	assert.Equal(t, "Inner", placemarks[2].Name)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader("<kml><Document>"))
	assert.Error(t, err)
}

func TestPointPos(t *testing.T) {
	pos, hasEle, err := Point{Coordinates: "\n  -120.8427259,38.8170119,0 \n"}.Pos()
	require.NoError(t, err)
	assert.True(t, hasEle)
	assert.Equal(t, -120.8427259, pos.Lon)
	assert.Equal(t, 38.8170119, pos.Lat)
	assert.Equal(t, 0.0, pos.Ele)

	pos, hasEle, err = Point{Coordinates: "10.5,20.25"}.Pos()
	require.NoError(t, err)
	assert.False(t, hasEle)
	assert.Equal(t, 10.5, pos.Lon)
	assert.Equal(t, 20.25, pos.Lat)

	for _, bad := range []string{"", "1", "a,b,c", "1,2,3,4", "1,,3"} {
		_, _, err := Point{Coordinates: bad}.Pos()
		assert.ErrorIs(t, err, ErrCoordinates, bad)
	}
}

func TestLineStringLine(t *testing.T) {
	line, err := LineString{Coordinates: " 1,2,0\n\t3,4,0 5,6,0 "}.Line()
	require.NoError(t, err)
	require.Len(t, line, 3)
	assert.Equal(t, 2.0, line[0].Lat)
	assert.Equal(t, 1.0, line[0].Lon)
	assert.Equal(t, 4.0, line[1].Lat)
	assert.Equal(t, 6.0, line[2].Lat)
	assert.Equal(t, 5.0, line[2].Lon)

	_, err = LineString{Coordinates: "1,2,0 3,4 5,6,0"}.Line()
	assert.ErrorIs(t, err, ErrCoordinates)
	assert.Contains(t, err.Error(), "point 1")

	_, err = LineString{Coordinates: "1,2,0 x,4,0"}.Line()
	assert.ErrorIs(t, err, ErrCoordinates)
}

func kmz(t *testing.T, files map[string]string) []byte {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "trip.kml")
	require.NoError(t, os.WriteFile(plain, []byte(sample), 0666))
	root, err := Load(plain)
	require.NoError(t, err)
	assert.Equal(t, "Trip", root.Document.Name)

	zipped := filepath.Join(dir, "trip.kmz")
	b := kmz(t, map[string]string{"images/icon.png": "png", "doc.kml": sample})
	require.NoError(t, os.WriteFile(zipped, b, 0666))
	root, err = Load(zipped)
	require.NoError(t, err)
	assert.Equal(t, "Trip", root.Document.Name)
	assert.Len(t, root.Document.Folders, 2)

	_, err = Load(filepath.Join(dir, "missing.kml"))
	assert.Error(t, err)
}

func TestDecodeKmz_NoKML(t *testing.T) {
	b := kmz(t, map[string]string{"images/icon.png": "png"})
	_, err := DecodeKmz(bytes.NewReader(b), int64(len(b)))
	assert.ErrorIs(t, err, ErrNoKML)
}
