package lucid

import (
	"reflect"
	"slices"

	"github.com/a-h/templ"
)

// Element is a node of the element tree.
//
// A composite element references the *Component it was created from; a
// native element carries an HTML or SVG tag; a fragment has neither and only
// groups its children. Elements are immutable once built.
type Element struct {
	component *Component
	tag       string
	props     Props
}

// El creates a native element. Children passed here replace any children
// already present in props.
//
//	lucid.El("li", lucid.Props{"className": cx("&-Item")}, "label")
func El(tag string, props Props, children ...any) *Element {
	return &Element{tag: tag, props: withChildren(props, children)}
}

// Fragment groups children without producing an output node.
func Fragment(children ...any) *Element {
	return &Element{props: withChildren(nil, children)}
}

func withChildren(props Props, children []any) Props {
	out := props.Clone()
	if len(children) > 0 {
		out[PropChildren] = slices.Clone(children)
	}
	return out
}

// Component returns the component this element was created from, or nil for
// native elements and fragments.
func (e *Element) Component() *Component {
	if e == nil {
		return nil
	}
	return e.component
}

// Tag returns the native tag name, or "" for composite elements and
// fragments.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	return e.tag
}

// IsFragment reports whether e is a fragment.
func (e *Element) IsFragment() bool {
	return e != nil && e.component == nil && e.tag == ""
}

// Props returns a copy of the element's own prop bag, children included.
func (e *Element) Props() Props {
	if e == nil {
		return Props{}
	}
	return e.props.Clone()
}

// Children returns the element's children as a slice. A single non-slice
// child is returned as a one element slice.
func (e *Element) Children() []any {
	if e == nil {
		return nil
	}
	return childList(e.props.Get(PropChildren))
}

func childList(children any) []any {
	if children == nil {
		return nil
	}
	var out []any
	_ = eachChild(children, func(v any) error {
		out = append(out, v)
		return nil
	})
	return out
}

// eachChild calls fn for every leaf of children in document order.
// Slices and arrays of any element type are flattened at any depth; strings,
// byte slices, elements and templ components are leaves. The walk stops at
// the first error fn returns.
func eachChild(children any, fn func(any) error) error {
	switch c := children.(type) {
	case nil, string, []byte, *Element:
		return fn(children)
	case []any:
		for _, item := range c {
			if err := eachChild(item, fn); err != nil {
				return err
			}
		}
		return nil
	case []*Element:
		for _, item := range c {
			if err := fn(item); err != nil {
				return err
			}
		}
		return nil
	case templ.Component:
		return fn(children)
	}

	rv := reflect.ValueOf(children)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return fn(children)
	}
	for i := 0; i < rv.Len(); i++ {
		if err := eachChild(rv.Index(i).Interface(), fn); err != nil {
			return err
		}
	}
	return nil
}
