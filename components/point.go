package components

import (
	"context"
	"fmt"

	"github.com/pthm/lucid"
)

var pointCx = ns.Bind("&-Point").Cx

// pointPaths are drawn around the origin and indexed by kind modulo their
// count.
var pointPaths = []string{
	"M0,-3 A3,3 0 1,1 0,3 A3,3 0 1,1 0,-3 Z", // circle
	"M-3,-3 L3,-3 L3,3 L-3,3 Z",              // square
	"M0,-3.5 L3.5,2.5 L-3.5,2.5 Z",           // triangle up
	"M0,-3.8 L3.8,0 L0,3.8 L-3.8,0 Z",        // diamond
	"M-3.5,-2.5 L3.5,-2.5 L0,3.5 Z",          // triangle down
}

var pointPropTypes = lucid.NewSchema(
	lucid.String("className").Describe("Appended to the component-specific class names set on the root element."),
	lucid.Number("x").Describe("The x coordinate of the point's center."),
	lucid.Number("y").Describe("The y coordinate of the point's center."),
	lucid.Number("kind").Validate("min=0").Describe("Determines the shape of the point. Kinds wrap around the available shapes."),
	lucid.String("color").Validate("series_color").Describe("Strings should match an existing color class unless they start with a '#' for specific colors."),
	lucid.Bool("hasStroke").Describe("Display a white stroke around the point."),
	lucid.Number("scale").Describe("Scale the size of the point."),
)

// Point is a single chart marker.
var Point = lucid.CreateClass(lucid.Definition{
	DisplayName: "Point",
	PropTypes:   pointPropTypes,
	DefaultProps: lucid.Props{
		"x":         0,
		"y":         0,
		"kind":      0,
		"color":     COLOR_0,
		"hasStroke": false,
		"scale":     1,
	},
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			A single point on a chart, drawn as one of several shapes.
		`,
		Categories: []string{"visualizations", "chart primitives"},
	}},
	Render: renderPoint,
})

func renderPoint(ctx context.Context, p lucid.Props) *lucid.Element {
	x, _ := p.Number("x")
	y, _ := p.Number("y")
	kind, _ := p.Number("kind")
	scale, ok := p.Number("scale")
	if !ok {
		scale = 1
	}
	color := p.String("color")

	idx := int(kind) % len(pointPaths)
	if idx < 0 {
		idx = 0
	}

	out := lucid.OmitProps(p, pointPropTypes)
	out["d"] = pointPaths[idx]
	out["transform"] = fmt.Sprintf("translate(%g, %g) scale(%g)", x, y, scale)
	out["className"] = pointCx(
		p.String("className"),
		"&",
		lucid.Classes{
			{Token: "&-has-stroke", On: p.Bool("hasStroke")},
			{Token: colorClass(color), On: colorClass(color) != ""},
		},
	)
	if isCustomColor(color) {
		out["style"] = map[string]string{"fill": color}
	}
	return lucid.El("path", out)
}
