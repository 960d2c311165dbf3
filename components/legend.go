package components

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/pthm/lucid"
)

var legendCx = ns.Bind("&-Legend").Cx

// ItemClickFunc produces the attributes placed on a legend item's <li>,
// typically an HTMX action such as hx-post. index is the item's position
// among the legend's items.
type ItemClickFunc func(index int, item lucid.Props) templ.Attributes

var legendItemPropTypes = lucid.NewSchema(
	lucid.Bool("hasPoint"),
	lucid.Bool("hasLine"),
	lucid.String("color").Describe(`
		Strings should match an existing color class unless they start with a '#' for specific colors. E.g.:

		- ` + "`COLOR_0`" + `
		- ` + "`COLOR_GOOD`" + `
		- ` + "`'#123abc'`" + `
	`),
	lucid.Number("pointKind"),
	lucid.Func("onClick").Describe("Called while rendering the item; returns the attributes set on the item."),
	lucid.String("className").Describe("Class names that are appended to the defaults."),
)

// LegendItem describes one data series. It renders nothing by itself; the
// enclosing Legend reads its props.
var LegendItem = lucid.CreateClass(lucid.Definition{
	DisplayName: "Legend.Item",
	PropsName:   "Item",
	PropTypes:   legendItemPropTypes,
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			Renders a ` + "`<li>`" + ` that describes the data series.
		`,
	}},
})

var legendPropTypes = lucid.NewSchema(
	lucid.String("className").Describe("Appended to the component-specific class names set on the root element."),
	lucid.OneOf("orient", "horizontal", "vertical").Describe("Determine orientation of the legend."),
	lucid.Bool("hasBorders").Describe("Show the legend borders. Turn this off if you want to put the legend in a `ToolTip` for example."),
	lucid.Bool("hasPoint").Describe("Determines if the legend has points."),
	lucid.Bool("hasLine").Describe("Determines if the legend has lines."),
	lucid.Any("pointKind").Describe("Determines the kind of point."),
	lucid.Bool("isReversed").Describe("Reverse the order of items in the legend."),
	lucid.String("color").Describe("Strings should match an existing color class unless they start with a '#' for specific colors."),
	lucid.Any("Item").Describe("Custom Item element (alias for `Legend.Item`)."),
)

// Legend lists chart series with their point and line indicators.
var Legend = lucid.CreateClass(lucid.Definition{
	DisplayName: "Legend",
	PropTypes:   legendPropTypes,
	DefaultProps: lucid.Props{
		"orient":     "vertical",
		"hasBorders": true,
		"hasPoint":   true,
		"pointKind":  "",
		"hasLine":    true,
		"isReversed": false,
		"color":      COLOR_0,
	},
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			Contrary to the other chart primitives, this component is not rendered
			in svg. In order to sanely render horizontal legends, we need to know
			the width of the text elements ahead of rendering time. Since we're
			using a variable width font, the only way to correctly get the width
			is with the DOM. Variable widths are much easier to implement outside
			of svg.
		`,
		Categories: []string{"visualizations", "chart primitives"},
		MadeFrom:   []string{"Point", "Line"},
		Examples: []lucid.Example{
			{Name: "basic", Render: legendBasicExample},
			{Name: "horizontal", Render: legendHorizontalExample},
		},
	}},
	Render: renderLegend,
}).WithChild("Item", LegendItem)

// HasSomeLines reports whether a vertical legend's indicators must be sized
// for lines: true when any item draws a line. Horizontal legends size each
// item on its own.
func HasSomeLines(orient string, items []lucid.Props) bool {
	if orient != "vertical" {
		return false
	}
	for _, item := range items {
		if item.Bool("hasLine") {
			return true
		}
	}
	return false
}

func renderLegend(ctx context.Context, p lucid.Props) *lucid.Element {
	orient := p.String("orient")
	items := lucid.FindPropsInProps(p, LegendItem)
	hasSomeLines := HasSomeLines(orient, items)

	root := lucid.OmitProps(p, legendPropTypes)
	root["className"] = legendCx(
		p.String("className"),
		"&",
		lucid.Classes{
			{Token: "&-is-horizontal", On: orient == "horizontal"},
			{Token: "&-is-vertical", On: orient == "vertical"},
			{Token: "&-has-borders", On: p.Bool("hasBorders")},
			{Token: "&-is-reversed", On: p.Bool("isReversed")},
		},
	)

	lis := make([]*lucid.Element, len(items))
	for i, item := range items {
		lis[i] = renderLegendItem(i, item, hasSomeLines)
	}
	return lucid.El("ul", root, lis)
}

func renderLegendItem(index int, item lucid.Props, hasSomeLines bool) *lucid.Element {
	hasPoint := item.Bool("hasPoint")
	hasLine := item.Bool("hasLine")

	// TODO: confirm with the charts owners whether Legend's own pointKind
	// default should cascade to items; today items fall back to kind 1.
	var pointKind any = 1
	if item.Has("pointKind") {
		pointKind = item.Get("pointKind")
	}

	li := lucid.Props{"className": legendCx(item.String("className"), "&-Item")}
	if onClick, ok := item.Get("onClick").(ItemClickFunc); ok {
		for k, v := range onClick(index, item) {
			li[k] = v
		}
	} else if onClick, ok := item.Get("onClick").(func(int, lucid.Props) templ.Attributes); ok {
		for k, v := range onClick(index, item) {
			li[k] = v
		}
	}

	var indicator *lucid.Element
	if hasPoint || hasLine {
		wide := hasLine || hasSomeLines
		width := POINT_SIZE
		if wide {
			width = LINE_WIDTH
		}

		var point, line *lucid.Element
		if hasPoint {
			pointProps := lucid.Props{
				"x":    float64(width) / 2,
				"y":    float64(POINT_SIZE) / 2,
				"kind": pointKind,
			}
			if item.Has("color") {
				pointProps["color"] = item.Get("color")
			}
			point = Point.New(pointProps)
		}
		if hasLine {
			lineProps := lucid.Props{
				"d": fmt.Sprintf("M0,%g L%d,%g", float64(POINT_SIZE)/2, LINE_WIDTH, float64(POINT_SIZE)/2),
			}
			if item.Has("color") {
				lineProps["color"] = item.Get("color")
			}
			line = Line.New(lineProps)
		}

		indicator = lucid.El("svg", lucid.Props{
			"className": legendCx("&-Item-indicator"),
			"width":     width,
			"height":    POINT_SIZE,
		}, point, line)
	}

	return lucid.El("li", li, indicator, item.Children())
}
