package components

import (
	"context"

	"github.com/pthm/lucid"
)

var iconBoxCx = ns.Bind("&-IconBox").Cx

// IconBoxIcon holds the icon shown inside an IconBox.
var IconBoxIcon = lucid.CreateClass(lucid.Definition{
	DisplayName: "IconBox.Icon",
	PropsName:   "Icon",
	PropTypes: lucid.NewSchema(
		lucid.Node("children").Describe("The icon to render."),
	),
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			The icon displayed by the box.
		`,
	}},
})

var iconBoxPropTypes = lucid.NewSchema(
	lucid.String("className").Describe("Appended to the component-specific class names set on the root element."),
	lucid.OneOf("kind", "default", "checkbox", "radio").Describe("Visual style of the box."),
	lucid.Bool("isActive").Describe("Renders the box in its active (pressed) state."),
	lucid.Bool("isDisabled").Describe("Renders the box as disabled."),
	lucid.Bool("isIndeterminate").Describe("Renders a partially selected state. Takes precedence over isSelected."),
	lucid.Bool("isSelected").Describe("Renders the box as selected."),
	lucid.Any("Icon").Describe("Icon element (alias for `IconBox.Icon`)."),
)

// IconBox is a clickable box pairing an icon with a label.
var IconBox = lucid.CreateClass(lucid.Definition{
	DisplayName: "IconBox",
	PropTypes:   iconBoxPropTypes,
	DefaultProps: lucid.Props{
		"kind":            "default",
		"isActive":        false,
		"isDisabled":      false,
		"isIndeterminate": false,
		"isSelected":      false,
	},
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			A box holding an icon and a label, with checkbox and radio styles and
			active, disabled, indeterminate and selected states.
		`,
		Categories: []string{"controls", "icons"},
		MadeFrom:   []string{"Icon"},
		Examples: []lucid.Example{
			{Name: "states", Render: iconBoxStatesExample},
		},
	}},
	Render: renderIconBox,
}).WithChild("Icon", IconBoxIcon)

func renderIconBox(ctx context.Context, p lucid.Props) *lucid.Element {
	kind := p.String("kind")
	indeterminate := p.Bool("isIndeterminate")
	disabled := p.Bool("isDisabled")

	root := lucid.OmitProps(p, iconBoxPropTypes)
	root["className"] = iconBoxCx(
		p.String("className"),
		"&",
		"&-"+kind,
		lucid.Classes{
			{Token: "&-is-active", On: p.Bool("isActive") && !disabled},
			{Token: "&-is-disabled", On: disabled},
			{Token: "&-is-indeterminate", On: indeterminate},
			{Token: "&-is-selected", On: p.Bool("isSelected") && !indeterminate},
		},
	)
	if disabled {
		root["aria-disabled"] = "true"
	}

	var icon *lucid.Element
	if icons := lucid.FindPropsInProps(p, IconBoxIcon); len(icons) > 0 {
		icon = lucid.El("span", lucid.Props{"className": iconBoxCx("&-icon")}, icons[0].Children())
	}

	label := lucid.RejectTypes(p.Children(), IconBoxIcon)
	var text *lucid.Element
	if len(label) > 0 {
		text = lucid.El("span", lucid.Props{"className": iconBoxCx("&-label")}, label)
	}

	return lucid.El("span", root, icon, text)
}
