// Package lucid provides the composition runtime for a server-rendered
// component library built on templ.
//
// Components are defined once with CreateClass and rendered as element
// trees. Every *Element implements templ.Component, so trees compose with
// hand-written templ templates and with templ.Handler.
//
// # Defining Components
//
// CreateClass attaches a display name, a prop schema, default props and a
// documentation descriptor to a render function:
//
//	var cx = lucid.Namespace("lucid").Bind("&-Badge").Cx
//
//	var Badge = lucid.CreateClass(lucid.Definition{
//	    DisplayName:  "Badge",
//	    PropTypes:    lucid.NewSchema(lucid.OneOf("kind", "info", "warning")),
//	    DefaultProps: lucid.Props{"kind": "info"},
//	    Statics: lucid.Statics{Peek: lucid.Peek{
//	        Description: "A small status label.",
//	        Categories:  []string{"text"},
//	    }},
//	    Render: func(ctx context.Context, p lucid.Props) *lucid.Element {
//	        return lucid.El("span", lucid.Props{
//	            "className": cx(p.String("className"), "&", "&-"+p.String("kind")),
//	        }, p.Children())
//	    },
//	})
//
// Defaults fill props that are missing or set to Undefined. An explicit nil
// is a caller value and is kept.
//
// # Compound Components
//
// A compound component reads its configuration from typed children.
// FindProps walks the children in document order, through fragments and
// nested slices, and returns the props of every element of the requested
// sub-component:
//
//	items := lucid.FindProps(props.Children(), LegendItem)
//
// OmitProps then strips the component's declared props before the rest are
// spread onto the output element.
//
// # Class Names
//
// A Binder maps "&" tokens to a component's scoped root. Conditional classes
// are passed as ordered toggles:
//
//	cx("&", lucid.Classes{{"&-is-active", active}, {"&-is-disabled", disabled}})
//
// # Warnings
//
// Prop schema mismatches never fail a render. They are logged at warn level
// on the zerolog logger carried by the render context (see WithLogger), and
// rendering continues with the supplied value.
package lucid
