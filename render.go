package lucid

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// voidElements never take children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// attributeNames maps prop names to their HTML attribute.
var attributeNames = map[string]string{
	PropClassName: "class",
	"htmlFor":     "for",
}

// Render writes the element as HTML. Elements satisfy templ.Component, so
// they can be used anywhere a templ template is accepted:
//
//	templ.Handler(components.Legend.New(props, items...))
func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if e == nil {
		return nil
	}
	switch {
	case e.component != nil:
		return e.component.Expand(ctx, e.props).Render(ctx, w)
	case e.tag == "":
		return renderChild(ctx, w, e.props.Get(PropChildren))
	default:
		return e.renderNative(ctx, w)
	}
}

func (e *Element) renderNative(ctx context.Context, w io.Writer) error {
	if !validAttributeName(e.tag) {
		return renderChild(ctx, w, e.props.Get(PropChildren))
	}
	if _, err := io.WriteString(w, "<"+e.tag); err != nil {
		return err
	}
	if err := writeAttributes(w, e.props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[e.tag] {
		return nil
	}
	if err := renderChild(ctx, w, e.props.Get(PropChildren)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+e.tag+">")
	return err
}

// renderChild writes children in document order. Values that cannot be
// rendered (booleans, nil, Undefined, unknown types) write nothing.
func renderChild(ctx context.Context, w io.Writer, child any) error {
	return eachChild(child, func(v any) error {
		return renderLeaf(ctx, w, v)
	})
}

func renderLeaf(ctx context.Context, w io.Writer, child any) error {
	switch c := child.(type) {
	case nil, bool, undefined:
		return nil
	case string:
		_, err := io.WriteString(w, templ.EscapeString(c))
		return err
	case *Element:
		return c.Render(ctx, w)
	case templ.Component:
		return c.Render(ctx, w)
	}
	if s, ok := formatNumber(child); ok {
		_, err := io.WriteString(w, s)
		return err
	}
	return nil
}

func writeAttributes(w io.Writer, props Props) error {
	for _, key := range props.Keys() {
		if key == PropChildren || key == "key" || !validAttributeName(key) {
			continue
		}
		value, ok := attributeValue(key, props[key])
		if !ok {
			continue
		}
		name := key
		if mapped, ok := attributeNames[key]; ok {
			name = mapped
		}
		if value == nil {
			if _, err := io.WriteString(w, " "+name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, templ.EscapeString(*value)); err != nil {
			return err
		}
	}
	return nil
}

// attributeValue converts a prop value into an attribute value. A nil
// string pointer with ok=true means a bare boolean attribute.
func attributeValue(key string, v any) (*string, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case bool:
		if !val {
			return nil, false
		}
		return nil, true
	case string:
		if key == PropClassName && val == "" {
			return nil, false
		}
		return &val, true
	case templ.CSSClass:
		s := val.ClassName()
		if key == PropClassName && s == "" {
			return nil, false
		}
		return &s, true
	case fmt.Stringer:
		s := val.String()
		return &s, true
	}
	if key == PropStyle {
		if s, ok := styleString(v); ok {
			return &s, true
		}
		return nil, false
	}
	if s, ok := formatNumber(v); ok {
		return &s, true
	}
	return nil, false
}

// styleString serializes a style map into "name:value;" pairs sorted by
// name.
func styleString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return "", false
	}
	decls := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		val := iter.Value().Interface()
		var s string
		switch x := val.(type) {
		case string:
			s = x
		default:
			n, ok := formatNumber(x)
			if !ok {
				continue
			}
			s = n
		}
		decls = append(decls, iter.Key().String()+":"+s+";")
	}
	slices.Sort(decls)
	return strings.Join(decls, ""), true
}

func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}
