package components

import (
	"context"

	"github.com/pthm/lucid"
)

var iconCx = ns.Bind("&-Icon").Cx

var iconPropTypes = lucid.NewSchema(
	lucid.String("className").Describe("Classes that are appended to the component defaults."),
	lucid.Number("size").Describe("Size variations of the icons. `size` directly effects height and width but the developer should also be conscious of the relationship with `viewBox`."),
	lucid.Number("width").Describe("Size handles width and height, whereas `width` can manually override the width that would be set by size."),
	lucid.Number("height").Describe("Size handles width and height, whereas `height` can manually override the height that would be set by size."),
	lucid.String("viewBox").Describe("`viewBox` is very important for SVGs."),
	lucid.String("aspectRatio").Describe("Any valid SVG aspect ratio."),
	lucid.Bool("isBadge").Describe("Adds styling that makes the icon appear like it's in a badge."),
	lucid.Bool("isClickable").Describe("Adds styling that makes the icon appear clickable."),
	lucid.Bool("isDisabled").Describe("Adds styling that makes the icon appear disabled."),
	lucid.OneOf("color", "neutral-dark", "neutral-light", "primary", "white", "success", "warning", "secondary-one", "secondary-two", "secondary-three").
		Describe("Sets the color of the Icon."),
	lucid.Node("children").Describe("Any valid SVG element."),
)

// Icon is the base svg wrapper shared by every icon.
var Icon = lucid.CreateClass(lucid.Definition{
	DisplayName: "Icon",
	PropTypes:   iconPropTypes,
	DefaultProps: lucid.Props{
		"size":        16,
		"aspectRatio": "xMidYMid meet",
		"viewBox":     "0 0 16 16",
		"isBadge":     false,
		"isClickable": false,
		"isDisabled":  false,
		"color":       "primary",
	},
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			A basic svg icon. Any props that are not explicitly called out below
			will be passed through to the native ` + "`svg`" + ` component.
		`,
		Categories: []string{"visual design", "icons"},
	}},
	Render: renderIcon,
})

func renderIcon(ctx context.Context, p lucid.Props) *lucid.Element {
	size, _ := p.Number("size")
	width, ok := p.Number("width")
	if !ok {
		width = size
	}
	height, ok := p.Number("height")
	if !ok {
		height = size
	}

	out := lucid.OmitProps(p, iconPropTypes)
	out["width"] = width
	out["height"] = height
	out["viewBox"] = p.String("viewBox")
	out["preserveAspectRatio"] = p.String("aspectRatio")
	out["className"] = iconCx(
		"&",
		p.String("className"),
		lucid.Classes{
			{Token: "&-is-badge", On: p.Bool("isBadge")},
			{Token: "&-is-clickable", On: p.Bool("isClickable")},
			{Token: "&-is-disabled", On: p.Bool("isDisabled")},
			{Token: "&-color-" + p.String("color"), On: p.String("color") != ""},
		},
	)

	return lucid.El("svg", out, p.Children())
}

// wrapIcon renders a concrete icon through Icon. Every prop except
// className and children is forwarded; className is replaced by the
// concrete icon's resolved classes.
func wrapIcon(p lucid.Props, className string, shapes ...any) *lucid.Element {
	props := lucid.OmitProps(p, nil, "className", "children")
	props["className"] = className
	return Icon.New(props, shapes...)
}
