package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tripKml = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <name>Trip</name>
    <Folder>
      <name>Day 1</name>
      <Placemark>
        <name>Route</name>
        <styleUrl>#line-0F9D58-1000</styleUrl>
        <LineString><coordinates>-120.8427259,38.8170119,0 -120.9,38.9,0</coordinates></LineString>
      </Placemark>
      <Placemark>
        <name>Camp</name>
        <styleUrl>#icon-1765-0288D1</styleUrl>
        <Point><coordinates>-120.9,38.9,0</coordinates></Point>
      </Placemark>
    </Folder>
    <Folder>
      <name>Day 2</name>
      <Placemark>
        <name>Summit</name>
        <styleUrl>#icon-1634-DB4436-labelson</styleUrl>
        <Point><coordinates>-121,39,2000</coordinates></Point>
      </Placemark>
    </Folder>
    <Folder>
      <name>Untitled layer</name>
      <Placemark>
        <name>Scratch</name>
        <Point><coordinates>0,0,0</coordinates></Point>
      </Placemark>
    </Folder>
  </Document>
</kml>`

// execute runs the command in a temp dir holding trip.kml and an empty config
// file, so settings in the working directory don't leak in.
func execute(t *testing.T, args ...string) (dir string, stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trip.kml"), []byte(tripKml), 0666))
	cfg := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("{}\n"), 0666))

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd(viper.New(), stderr)
	cmd.SetOut(stdout)
	for i, a := range args {
		args[i] = strings.ReplaceAll(a, "$DIR", dir)
	}
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err = cmd.Execute()
	return dir, stdout, stderr, err
}

func readFile(t *testing.T, fpath string) string {
	t.Helper()
	b, err := os.ReadFile(fpath)
	require.NoError(t, err)
	return string(b)
}

func TestConvert(t *testing.T) {
	dir, _, stderr, err := execute(t, "$DIR/trip.kml", "$DIR/trip.gpx")
	require.NoError(t, err, stderr.String())

	out := readFile(t, filepath.Join(dir, "trip.gpx"))
	assert.Contains(t, out, "<name>Camp</name>")
	assert.Contains(t, out, "<icon>tourism_camp_site</icon>")
	assert.Contains(t, out, "<color>#0288D1</color>")
	assert.Contains(t, out, "<name>Summit</name>")
	assert.Contains(t, out, "<color>#800F9D58</color>")
	assert.Contains(t, out, "<width>14</width>")
	assert.Contains(t, out, "<split_type>no_split</split_type>")
	assert.NotContains(t, out, "Scratch")

	assert.Contains(t, stderr.String(), "processing layer")
	assert.Contains(t, stderr.String(), "skipping layer")
}

func TestConvert_Layers(t *testing.T) {
	dir, _, stderr, err := execute(t, "-l", "-t", "FF", "-w", "3", "-s", "2.5", "$DIR/trip.kml", "$DIR/trip")
	require.NoError(t, err, stderr.String())

	day1 := readFile(t, filepath.Join(dir, "trip-Day 1.gpx"))
	assert.Contains(t, day1, "<name>Camp</name>")
	assert.Contains(t, day1, "<color>#FF0F9D58</color>")
	assert.Contains(t, day1, "<width>3</width>")
	assert.Contains(t, day1, "<split_type>distance</split_type>")
	assert.Contains(t, day1, "<split_interval>4023</split_interval>")
	assert.NotContains(t, day1, "Summit")

	day2 := readFile(t, filepath.Join(dir, "trip-Day 2.gpx"))
	assert.Contains(t, day2, "<name>Summit</name>")
	assert.NoFileExists(t, filepath.Join(dir, "trip-Untitled layer.gpx"))
	assert.NoFileExists(t, filepath.Join(dir, "trip"))
}

func TestConvert_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "trip.kml"), []byte(tripKml), 0666))
	cfg := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("width: 5\ntrack-color: 112233\npreview: true\n"), 0666))

	stderr := &bytes.Buffer{}
	cmd := newRootCmd(viper.New(), stderr)
	cmd.SetArgs([]string{"--config", cfg, "-w", "7", filepath.Join(dir, "trip.kml"), filepath.Join(dir, "trip.gpx")})
	require.NoError(t, cmd.Execute(), stderr.String())

	out := readFile(t, filepath.Join(dir, "trip.gpx"))
	// the flag wins over the config file
	assert.Contains(t, out, "<width>7</width>")
	assert.FileExists(t, filepath.Join(dir, "trip.png"))
}

func TestConvert_PreviewSize(t *testing.T) {
	dir, _, stderr, err := execute(t, "--preview", "--preview-size", "96", "$DIR/trip.kml", "$DIR/trip.gpx")
	require.NoError(t, err, stderr.String())

	f, err := os.Open(filepath.Join(dir, "trip.png"))
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 96, cfg.Width)
	assert.Equal(t, 96, cfg.Height)

	_, _, _, err = execute(t, "--preview", "--preview-size", "0", "$DIR/trip.kml", "$DIR/trip.gpx")
	assert.Error(t, err)
}

// Settings come from the environment when no flag is given.
func TestConvert_Env(t *testing.T) {
	t.Setenv("KML2OSMAND_WIDTH", "9")
	dir, _, stderr, err := execute(t, "$DIR/trip.kml", "$DIR/trip.gpx")
	require.NoError(t, err, stderr.String())
	assert.Contains(t, readFile(t, filepath.Join(dir, "trip.gpx")), "<width>9</width>")
}

func TestConvert_Errors(t *testing.T) {
	_, _, _, err := execute(t, "$DIR/trip.kml")
	assert.Error(t, err)

	_, _, _, err = execute(t, "-w", "30", "$DIR/trip.kml", "$DIR/trip.gpx")
	assert.Error(t, err)

	_, _, _, err = execute(t, "-t", "800", "$DIR/trip.kml", "$DIR/trip.gpx")
	assert.Error(t, err)

	_, _, _, err = execute(t, "$DIR/missing.kml", "$DIR/trip.gpx")
	assert.Error(t, err)

	_, _, _, err = execute(t, "--log-level", "loud", "$DIR/trip.kml", "$DIR/trip.gpx")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	_, stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kml2osmand v2.2.0\n", stdout.String())
}
