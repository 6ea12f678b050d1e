// Package convert flattens the layers of a Google My Maps export into OsmAnd
// waypoint and track records.
package convert

import (
	"fmt"

	"github.com/dave/kml2osmand/kml"
	"go.uber.org/zap"
)

// Container is anything placemarks are converted from: a layer, or the whole
// document when it has no layers.
type Container interface {
	Title() string
	AllPlacemarks() []*kml.Placemark
}

// Emitter writes a finished document to fpath.
type Emitter interface {
	Emit(doc *Document, fpath string) error
}

type Converter struct {
	Builder *Builder
	Emitter Emitter
	Logger  *zap.Logger
}

func New(builder *Builder, emitter Emitter, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{Builder: builder, Emitter: emitter, Logger: logger}
}

// Run converts every layer of root. With Options.Layers each layer is written
// to its own file as soon as it is done, otherwise everything is written to
// Options.Output at the end. A document without layers is converted as a
// single implicit layer and always written to Options.Output.
func (c *Converter) Run(root *kml.Root) (Totals, error) {
	opts := c.Builder.Options
	ext, err := opts.FileExtensions()
	if err != nil {
		return Totals{}, err
	}

	var totals Totals
	doc := &Document{Name: root.Document.Title()}

	for _, folder := range root.Document.Folders {
		name := folder.Title()
		if opts.ignored(name) {
			c.Logger.Info("skipping layer", zap.String("layer", name))
			continue
		}
		c.Logger.Info("processing layer", zap.String("layer", name))
		totals.Groups++

		counts, err := c.convert(folder, doc)
		if err != nil {
			return totals, fmt.Errorf("converting layer %q: %w", name, err)
		}
		totals.Add(counts)
		c.logCounts(name, counts)

		if opts.Layers {
			doc.Name = name
			if err := c.emit(doc, ext, LayerPath(opts.Output, name)); err != nil {
				return totals, err
			}
			totals.Files++
			doc = &Document{}
		}
	}

	if totals.Groups == 0 {
		// A single layer exported on its own has no folders, the placemarks are
		// directly in the document.
		c.Logger.Info("no layers found, converting the whole document")
		totals.Fallback = true
		counts, err := c.convert(whole{&root.Document, opts}, doc)
		if err != nil {
			return totals, fmt.Errorf("converting document: %w", err)
		}
		totals.Add(counts)
		c.logCounts(root.Document.Title(), counts)
	}

	c.Logger.Info("totals",
		zap.Int("waypoints", totals.Points),
		zap.Int("tracks", totals.Paths),
		zap.Int("layers", totals.Groups))

	if totals.Fallback || !opts.Layers {
		if err := c.emit(doc, ext, opts.Output); err != nil {
			return totals, err
		}
		totals.Files++
	}
	return totals, nil
}

// whole is the document as one implicit layer. Placemarks in ignored layers
// stay out.
type whole struct {
	doc  *kml.Document
	opts Options
}

func (w whole) Title() string {
	return w.doc.Title()
}

func (w whole) AllPlacemarks() []*kml.Placemark {
	placemarks := append([]*kml.Placemark{}, w.doc.Placemarks...)
	for _, f := range w.doc.Folders {
		if w.opts.ignored(f.Title()) {
			continue
		}
		placemarks = append(placemarks, f.AllPlacemarks()...)
	}
	return placemarks
}

// convert appends the container's waypoints and then its tracks to doc.
func (c *Converter) convert(container Container, doc *Document) (Counts, error) {
	var counts Counts
	placemarks := container.AllPlacemarks()
	for _, pm := range placemarks {
		p, err := c.Builder.Point(pm)
		if err != nil {
			return counts, err
		}
		if p == nil {
			continue
		}
		doc.Points = append(doc.Points, *p)
		counts.Points++
	}
	for _, pm := range placemarks {
		p, err := c.Builder.Path(pm)
		if err != nil {
			return counts, err
		}
		if p == nil {
			continue
		}
		doc.Paths = append(doc.Paths, *p)
		counts.Paths++
	}
	return counts, nil
}

func (c *Converter) emit(doc *Document, ext FileExtensions, fpath string) error {
	doc.Extensions = ext
	c.Logger.Info("writing gpx file",
		zap.String("file", fpath),
		zap.Int("waypoints", len(doc.Points)),
		zap.Int("tracks", len(doc.Paths)))
	if err := c.Emitter.Emit(doc, fpath); err != nil {
		return fmt.Errorf("writing %q: %w", fpath, err)
	}
	return nil
}

func (c *Converter) logCounts(name string, counts Counts) {
	c.Logger.Info("layer done",
		zap.String("layer", name),
		zap.Int("waypoints", counts.Points),
		zap.Int("tracks", counts.Paths))
}
