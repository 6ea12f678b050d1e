package convert

import (
	"github.com/dave/kml2osmand/geo"
	"github.com/dave/kml2osmand/style"
)

// Point is a converted waypoint. Color is the resolved RRGGBB value.
type Point struct {
	Pos    geo.Pos
	HasEle bool
	Name   string
	Desc   string
	Icon   style.Icon
	Color  string
}

// Path is a converted track. Vertices keep the order of the input line.
type Path struct {
	Name         string
	Desc         string
	Vertices     geo.Line
	Color        string // RRGGBB
	Transparency string // AA
}

// ARGB is the OsmAnd track color: transparency first, then the color.
func (p Path) ARGB() string {
	return p.Transparency + p.Color
}

// Document collects the records written to one output file.
type Document struct {
	Name       string
	Points     []Point
	Paths      []Path
	Extensions FileExtensions
}

func (d *Document) Empty() bool {
	return len(d.Points) == 0 && len(d.Paths) == 0
}

// FileExtensions are the settings OsmAnd applies to all tracks in a file.
type FileExtensions struct {
	Width           int
	ShowArrows      bool
	ShowStartFinish bool
	Split           bool
	SplitInterval   int // meters, only when Split is set
}

type Counts struct {
	Points int
	Paths  int
}

func (c *Counts) Add(o Counts) {
	c.Points += o.Points
	c.Paths += o.Paths
}

// Totals summarises a run.
type Totals struct {
	Counts
	Groups   int  // layers converted, ignored layers excluded
	Files    int  // files emitted
	Fallback bool // no layers, the document was converted as a whole
}
