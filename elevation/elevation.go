// Package elevation fills in elevations that Google My Maps exports as 0.
package elevation

import (
	"fmt"
	"math"
	"net/http"

	"github.com/dave/kml2osmand/geo"
	"github.com/tkrajina/go-elevations/geoelevations"
)

// Lookup returns the ground elevation in meters at a location.
type Lookup interface {
	Elevation(lat, lon float64) (float64, error)
}

// Srtm looks elevations up in the SRTM tiles, downloading them on first use.
type Srtm struct {
	client *http.Client
	srtm   *geoelevations.Srtm
}

func NewSrtm(client *http.Client) (*Srtm, error) {
	srtm, err := geoelevations.NewSrtm(client)
	if err != nil {
		return nil, fmt.Errorf("creating srtm client: %w", err)
	}
	return &Srtm{client: client, srtm: srtm}, nil
}

func (s *Srtm) Elevation(lat, lon float64) (float64, error) {
	return s.srtm.GetElevation(s.client, lat, lon)
}

type key struct{ lat, lon float64 }

// Filler replaces missing or zero elevations using a Lookup. Results are
// cached per location, a track crossing itself only costs one lookup.
type Filler struct {
	lookup Lookup
	cache  map[key]float64
}

func NewFiller(lookup Lookup) *Filler {
	return &Filler{lookup: lookup, cache: map[key]float64{}}
}

// Fill sets pos.Ele when it is zero. It reports whether the elevation changed.
// Locations with no SRTM coverage are left alone.
func (f *Filler) Fill(pos *geo.Pos) (bool, error) {
	if pos.Ele != 0 {
		return false, nil
	}
	k := key{pos.Lat, pos.Lon}
	ele, found := f.cache[k]
	if !found {
		var err error
		ele, err = f.lookup.Elevation(pos.Lat, pos.Lon)
		if err != nil {
			return false, fmt.Errorf("looking up elevation at %v,%v: %w", pos.Lat, pos.Lon, err)
		}
		f.cache[k] = ele
	}
	if math.IsNaN(ele) || ele == 0 {
		return false, nil
	}
	pos.Ele = ele
	return true, nil
}

// FillLine fills every position of the line and returns how many changed.
func (f *Filler) FillLine(line geo.Line) (int, error) {
	var n int
	for i := range line {
		changed, err := f.Fill(&line[i])
		if err != nil {
			return n, err
		}
		if changed {
			n++
		}
	}
	return n, nil
}

// Cached is the number of distinct locations looked up so far.
func (f *Filler) Cached() int {
	return len(f.cache)
}
