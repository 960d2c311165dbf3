package lucid

// FindTypes returns every element in children created from target, in
// document order.
//
// Slices are flattened at any depth, strings, numbers, booleans and nil are
// skipped, and opaque templ components are never inspected. An element
// matches when its component is target, or when both carry the same
// non-empty PropsName. The search does not descend into a matched element,
// so an item nested inside another item is not collected twice.
func FindTypes(children any, target *Component) []*Element {
	if target == nil {
		return nil
	}
	var out []*Element
	walkChildren(children, func(el *Element) bool {
		if matches(el.component, target) {
			out = append(out, el)
			return false
		}
		return true
	})
	return out
}

// FindProps returns the prop bags of FindTypes' matches.
//
//	items := lucid.FindProps(props.Children(), LegendItem)
func FindProps(children any, target *Component) []Props {
	els := FindTypes(children, target)
	out := make([]Props, len(els))
	for i, el := range els {
		out[i] = el.Props()
	}
	return out
}

// FindTypesInProps searches props' children for target, then appends one
// element per value found under the prop named by target's PropsName. That
// prop is an alias for typed children:
//
//	Legend.New(lucid.Props{"Item": []lucid.Props{{"children": "Revenue"}}})
//
// Alias values may be a Props, a map[string]any, a string (used as the
// element's children), or a slice of those.
func FindTypesInProps(props Props, target *Component) []*Element {
	out := FindTypes(props.Children(), target)
	if target == nil || target.propsName == "" {
		return out
	}
	return appendAliasElements(out, props.Get(target.propsName), target)
}

// FindPropsInProps is FindTypesInProps returning prop bags.
func FindPropsInProps(props Props, target *Component) []Props {
	els := FindTypesInProps(props, target)
	out := make([]Props, len(els))
	for i, el := range els {
		out[i] = el.Props()
	}
	return out
}

func appendAliasElements(out []*Element, v any, target *Component) []*Element {
	switch val := v.(type) {
	case nil:
		return out
	case Props:
		return append(out, target.New(val))
	case map[string]any:
		return append(out, target.New(Props(val)))
	case string:
		return append(out, target.New(nil, val))
	case *Element:
		if matches(val.component, target) {
			return append(out, val)
		}
		return append(out, target.New(nil, val))
	case []Props:
		for _, p := range val {
			out = appendAliasElements(out, p, target)
		}
		return out
	case []map[string]any:
		for _, p := range val {
			out = appendAliasElements(out, p, target)
		}
		return out
	case []string:
		for _, s := range val {
			out = appendAliasElements(out, s, target)
		}
		return out
	case []any:
		for _, item := range val {
			out = appendAliasElements(out, item, target)
		}
		return out
	default:
		return out
	}
}

func matches(c, target *Component) bool {
	if c == nil {
		return false
	}
	if c == target {
		return true
	}
	return target.propsName != "" && c.propsName == target.propsName
}

// walkChildren visits elements depth first. visit returns false to skip an
// element's children.
func walkChildren(children any, visit func(*Element) bool) {
	_ = eachChild(children, func(v any) error {
		if el, ok := v.(*Element); ok && el != nil && visit(el) {
			walkChildren(el.props.Get(PropChildren), visit)
		}
		return nil
	})
}

// RejectTypes returns the top-level children, with slices flattened, that
// are not elements of any target. It is the complement of FindTypes for
// components that render their untyped children as-is.
func RejectTypes(children any, targets ...*Component) []any {
	var out []any
	_ = eachChild(children, func(v any) error {
		switch c := v.(type) {
		case nil:
			return nil
		case *Element:
			if c == nil {
				return nil
			}
			for _, target := range targets {
				if target != nil && matches(c.Component(), target) {
					return nil
				}
			}
		}
		out = append(out, v)
		return nil
	})
	return out
}
