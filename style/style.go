// Package style maps Google My Maps style references onto OsmAnd icons and
// colors.
package style

import (
	"strings"
)

type Shape string

const (
	Circle  Shape = "circle"
	Octagon Shape = "octagon"
	Square  Shape = "square"
)

// Color is either a fixed RRGGBB value or UseInline, which defers to the color
// carried by the placemark's style reference.
type Color struct {
	hex    string
	inline bool
}

var UseInline = Color{inline: true}

func Fixed(hex string) Color {
	return Color{hex: hex}
}

func (c Color) Inline() bool {
	return c.inline
}

// Hex is the fixed value, empty for UseInline.
func (c Color) Hex() string {
	return c.hex
}

type Icon struct {
	Name  string
	Color Color
	Shape Shape
}

const labelsOn = "labelson"

// Ref is a style reference split on "-":
//
//	#icon-1577-DB4436-labelson  ->  [#icon 1577 DB4436 labelson]
//	#line-0F9D58-1000           ->  [#line 0F9D58 1000]
type Ref struct {
	tokens []string
}

// ParseRef splits a styleUrl. An empty reference has no tokens.
func ParseRef(styleUrl string) Ref {
	styleUrl = strings.TrimSpace(styleUrl)
	if styleUrl == "" {
		return Ref{}
	}
	return Ref{tokens: strings.Split(styleUrl, "-")}
}

func (r Ref) Empty() bool {
	return len(r.tokens) == 0
}

// Token is a bounds checked token lookup. Empty tokens are reported missing.
func (r Ref) Token(i int) (string, bool) {
	if i < 0 || i >= len(r.tokens) || r.tokens[i] == "" {
		return "", false
	}
	return r.tokens[i], true
}

// IconKey is the icon number of an icon reference.
func (r Ref) IconKey() string {
	if key, ok := r.Token(1); ok {
		return key
	}
	return Unknown
}

// InlineColor is the color token of an icon reference. Old style icons
// ("#icon-1369", "#icon-1085-labelson") have none.
func (r Ref) InlineColor() (string, bool) {
	c, ok := r.Token(2)
	if !ok || c == labelsOn {
		return "", false
	}
	return c, true
}

// LabelSuffix reports whether "labelson" takes the place of the color token,
// as in "#icon-1085-labelson". A suffix after a color ("#icon-1899-0288D1-labelson")
// leaves the color in use.
func (r Ref) LabelSuffix() bool {
	tok, ok := r.Token(2)
	return ok && tok == labelsOn
}

// LineColor is the color token of a line reference.
func (r Ref) LineColor() (string, bool) {
	return r.Token(1)
}

// ResolveIconColor picks the RRGGBB color of a waypoint. A fixed table color
// always wins; otherwise the inline color is used unless it is missing or its
// place is taken by the label suffix, in which case def is used.
func ResolveIconColor(icon Icon, inline string, hasInline, labelSuffix bool, def string) string {
	if !icon.Color.Inline() {
		return icon.Color.Hex()
	}
	if labelSuffix || !hasInline {
		return def
	}
	return inline
}

// ResolveTrackColor prefers the line's own color over def.
func ResolveTrackColor(inline string, hasInline bool, def string) string {
	if hasInline {
		return inline
	}
	return def
}
