package lucid

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// RenderFunc builds a component's output from its defaulted props.
// Returning nil renders nothing.
type RenderFunc func(ctx context.Context, props Props) *Element

// Example is a named usage of a component, rendered by the showcase.
// Render receives the documented component so examples can be declared
// inside the component's own definition.
type Example struct {
	Name   string
	Render func(self *Component) *Element
}

// Peek is the documentation descriptor attached to a component. It never
// affects rendering.
type Peek struct {
	Description string
	Categories  []string
	Extend      string
	MadeFrom    []string
	Examples    []Example
}

func (p Peek) clone() Peek {
	p.Categories = slices.Clone(p.Categories)
	p.MadeFrom = slices.Clone(p.MadeFrom)
	p.Examples = slices.Clone(p.Examples)
	return p
}

// Summary returns the description with its common indentation removed and
// surrounding blank lines trimmed.
func (p Peek) Summary() string {
	return dedent(p.Description)
}

// Statics holds static metadata copied onto the component.
type Statics struct {
	Peek Peek
}

// Definition describes a component to CreateClass.
type Definition struct {
	// DisplayName identifies the component in warnings and in the catalog.
	// Required.
	DisplayName string

	// PropsName is a capability tag. Elements of two components sharing a
	// non-empty PropsName match each other in FindTypes, and the parent's
	// prop of that name is read as an alias for typed children.
	PropsName string

	PropTypes    *Schema
	DefaultProps Props
	Statics      Statics
	Render       RenderFunc
}

// Component is a defined component. It is immutable after CreateClass and
// safe for concurrent use.
//
// Example:
//
//	var Badge = lucid.CreateClass(lucid.Definition{
//	    DisplayName: "Badge",
//	    PropTypes:   lucid.NewSchema(lucid.OneOf("kind", "info", "warning")),
//	    DefaultProps: lucid.Props{"kind": "info"},
//	    Render: func(ctx context.Context, p lucid.Props) *lucid.Element {
//	        return lucid.El("span", lucid.Props{"className": cx("&", p.String("kind"))}, p.Children())
//	    },
//	})
type Component struct {
	displayName string
	propsName   string
	propTypes   *Schema
	defaults    Props
	peek        Peek
	render      RenderFunc

	children     map[string]*Component
	childrenKeys []string
}

// CreateClass builds a component from def.
//
// Panics when DisplayName is empty: components are defined at package
// initialization and an unnamed one is a programming error.
func CreateClass(def Definition) *Component {
	if def.DisplayName == "" {
		panic("lucid: CreateClass requires a DisplayName")
	}
	schema := def.PropTypes
	if schema == nil {
		schema = NewSchema()
	}
	return &Component{
		displayName: def.DisplayName,
		propsName:   def.PropsName,
		propTypes:   schema,
		defaults:    def.DefaultProps.Clone(),
		peek:        def.Statics.Peek.clone(),
		render:      def.Render,
		children:    make(map[string]*Component),
	}
}

// DisplayName returns the component's name.
func (c *Component) DisplayName() string {
	return c.displayName
}

// PropsName returns the component's capability tag, or "".
func (c *Component) PropsName() string {
	return c.propsName
}

// PropTypes returns the component's own schema, excluding StandardSchema.
func (c *Component) PropTypes() *Schema {
	return c.propTypes
}

// DefaultProps returns a copy of the default prop values.
func (c *Component) DefaultProps() Props {
	return c.defaults.Clone()
}

// Peek returns a copy of the documentation descriptor.
func (c *Component) Peek() Peek {
	return c.peek.clone()
}

// WithChild attaches a sub-component under name and returns c. Call it
// while defining the parent, before the component is shared.
//
//	Legend.WithChild("Item", LegendItem)
func (c *Component) WithChild(name string, sub *Component) *Component {
	if _, exists := c.children[name]; exists {
		panic(fmt.Sprintf("lucid: %s already has a child named %q", c.displayName, name))
	}
	c.children[name] = sub
	c.childrenKeys = append(c.childrenKeys, name)
	return c
}

// Child returns the sub-component attached under name.
func (c *Component) Child(name string) (*Component, bool) {
	sub, ok := c.children[name]
	return sub, ok
}

// ChildNames returns the attached sub-component names in attachment order.
func (c *Component) ChildNames() []string {
	return slices.Clone(c.childrenKeys)
}

// New creates an element of this component.
func (c *Component) New(props Props, children ...any) *Element {
	return &Element{component: c, props: withChildren(props, children)}
}

// Resolve applies the component's defaults to props and reports prop type
// failures as warnings on the logger carried by ctx.
func (c *Component) Resolve(ctx context.Context, props Props) Props {
	merged := ApplyDefaults(props, c.defaults)
	warnProps(ctx, CheckProps(c.displayName, c.propTypes, merged))
	return merged
}

// Expand runs the component's render function with defaulted props.
// Components without a render function expand to a fragment of their
// children, which is how pure configuration sub-components behave.
func (c *Component) Expand(ctx context.Context, props Props) *Element {
	merged := c.Resolve(ctx, props)
	if c.render == nil {
		return Fragment(merged.Children())
	}
	return c.render(ctx, merged)
}

// dedent strips the longest common leading whitespace from non-blank lines.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	indent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		n := len(line) - len(trimmed)
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent < 0 {
		return ""
	}
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
