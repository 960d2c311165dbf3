package components

import (
	"context"

	"github.com/pthm/lucid"
)

var lineCx = ns.Bind("&-Line").Cx

var linePropTypes = lucid.NewSchema(
	lucid.String("className"),
	lucid.String("d").IsRequired().Describe("The path for the line."),
	lucid.String("color").Validate("series_color").Describe("Strings should match an existing color class unless they start with a '#' for specific colors."),
	lucid.Bool("isDotted").Describe("Display a dotted line."),
)

// Line is a stroked svg path.
var Line = lucid.CreateClass(lucid.Definition{
	DisplayName: "Line",
	PropTypes:   linePropTypes,
	DefaultProps: lucid.Props{
		"color":    COLOR_0,
		"isDotted": false,
	},
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			A line is a simple svg path.
		`,
		Categories: []string{"visualizations", "chart primitives"},
	}},
	Render: func(ctx context.Context, p lucid.Props) *lucid.Element {
		color := p.String("color")
		out := lucid.OmitProps(p, linePropTypes)
		out["d"] = p.String("d")
		out["className"] = lineCx(
			p.String("className"),
			"&",
			lucid.Classes{
				{Token: "&-is-dotted", On: p.Bool("isDotted")},
				{Token: colorClass(color), On: colorClass(color) != ""},
			},
		)
		if isCustomColor(color) {
			out["style"] = map[string]string{"stroke": color}
		}
		return lucid.El("path", out)
	},
})
