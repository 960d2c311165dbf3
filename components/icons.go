package components

import (
	"context"

	"github.com/pthm/lucid"
)

var warningLightIconCx = ns.Bind("&-WarningLightIcon").Cx

// WarningLightIcon is the outlined warning triangle.
var WarningLightIcon = lucid.CreateClass(lucid.Definition{
	DisplayName: "WarningLightIcon",
	PropTypes:   iconPropTypes.Extend(),
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			Diet version.
		`,
		Categories: []string{"visual design", "icons"},
		Extend:     "Icon",
		MadeFrom:   []string{"Icon"},
	}},
	Render: func(ctx context.Context, p lucid.Props) *lucid.Element {
		return wrapIcon(p, warningLightIconCx("&", p.String("className")),
			lucid.El("path", lucid.Props{"d": "M7.99 6v4"}),
			lucid.El("circle", lucid.Props{"className": warningLightIconCx("&-period"), "cx": "7.99", "cy": "12", "r": ".293"}),
			lucid.El("path", lucid.Props{"d": "M.5 15h15L8 .5z"}),
		)
	},
})

var clockIconCx = ns.Bind("&-ClockIcon").Cx

// ClockIcon is a clock face.
var ClockIcon = lucid.CreateClass(lucid.Definition{
	DisplayName: "ClockIcon",
	PropTypes:   iconPropTypes.Extend(),
	Statics: lucid.Statics{Peek: lucid.Peek{
		Description: `
			A clock face, used for time and scheduling.
		`,
		Categories: []string{"visual design", "icons"},
		Extend:     "Icon",
		MadeFrom:   []string{"Icon"},
	}},
	Render: func(ctx context.Context, p lucid.Props) *lucid.Element {
		return wrapIcon(p, clockIconCx("&", p.String("className")),
			lucid.El("circle", lucid.Props{"cx": "8", "cy": "8", "r": "7.5"}),
			lucid.El("path", lucid.Props{"d": "M8 3.5V8l3 2"}),
		)
	},
})
