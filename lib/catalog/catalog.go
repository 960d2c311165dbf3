// Package catalog builds the documentation view of registered components.
//
// An entry carries a component's display name, peek descriptor, prop table
// and sub-components together, which is the shape docs tooling consumes.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pthm/lucid"
)

// Prop documents a single prop.
type Prop struct {
	Name     string `json:"name" yaml:"name" msgpack:"name"`
	Kind     string `json:"kind" yaml:"kind" msgpack:"kind"`
	Rule     string `json:"rule,omitempty" yaml:"rule,omitempty" msgpack:"rule,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty" msgpack:"required,omitempty"`
	Default  string `json:"default,omitempty" yaml:"default,omitempty" msgpack:"default,omitempty"`
	Doc      string `json:"doc,omitempty" yaml:"doc,omitempty" msgpack:"doc,omitempty"`
	Standard bool   `json:"standard,omitempty" yaml:"standard,omitempty" msgpack:"standard,omitempty"`
}

// Entry documents a component.
type Entry struct {
	Name        string   `json:"name" yaml:"name" msgpack:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" msgpack:"description,omitempty"`
	Categories  []string `json:"categories,omitempty" yaml:"categories,omitempty" msgpack:"categories,omitempty"`
	Extend      string   `json:"extend,omitempty" yaml:"extend,omitempty" msgpack:"extend,omitempty"`
	MadeFrom    []string `json:"madeFrom,omitempty" yaml:"madeFrom,omitempty" msgpack:"madeFrom,omitempty"`
	PropsName   string   `json:"propsName,omitempty" yaml:"propsName,omitempty" msgpack:"propsName,omitempty"`
	Props       []Prop   `json:"props,omitempty" yaml:"props,omitempty" msgpack:"props,omitempty"`
	Children    []string `json:"children,omitempty" yaml:"children,omitempty" msgpack:"children,omitempty"`
	Examples    []string `json:"examples,omitempty" yaml:"examples,omitempty" msgpack:"examples,omitempty"`
}

// Catalog is the ordered set of documented components.
type Catalog struct {
	Entries []Entry `json:"components" yaml:"components" msgpack:"components"`
}

// Build documents every component in reg, in registration order.
func Build(reg *lucid.Registry) Catalog {
	var c Catalog
	for _, comp := range reg.Components() {
		c.Entries = append(c.Entries, NewEntry(comp))
	}
	return c
}

// NewEntry documents a single component.
func NewEntry(comp *lucid.Component) Entry {
	peek := comp.Peek()
	e := Entry{
		Name:        comp.DisplayName(),
		Description: peek.Summary(),
		Categories:  peek.Categories,
		Extend:      peek.Extend,
		MadeFrom:    peek.MadeFrom,
		PropsName:   comp.PropsName(),
	}

	defaults := comp.DefaultProps()
	own := comp.PropTypes()
	for _, pt := range own.Props() {
		e.Props = append(e.Props, newProp(pt, defaults, false))
	}
	for _, pt := range lucid.StandardSchema.Props() {
		if own.Has(pt.Name) {
			continue
		}
		e.Props = append(e.Props, newProp(pt, defaults, true))
	}

	for _, name := range comp.ChildNames() {
		sub, _ := comp.Child(name)
		e.Children = append(e.Children, sub.DisplayName())
	}
	for _, ex := range peek.Examples {
		e.Examples = append(e.Examples, ex.Name)
	}
	return e
}

func newProp(pt lucid.PropType, defaults lucid.Props, standard bool) Prop {
	p := Prop{
		Name:     pt.Name,
		Kind:     string(pt.Kind),
		Rule:     pt.Rule,
		Required: pt.Required,
		Doc:      strings.Join(strings.Fields(pt.Doc), " "),
		Standard: standard,
	}
	if defaults.Has(pt.Name) {
		p.Default = formatDefault(defaults.Get(pt.Name))
	}
	return p
}

func formatDefault(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", val)
	default:
		return fmt.Sprint(val)
	}
}

// Lookup returns the entry named name. The error wraps lucid.ErrNotFound and
// names the closest match when there is one.
func (c Catalog) Lookup(name string) (Entry, error) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, nil
		}
	}
	if s := c.Suggest(name, 1); len(s) > 0 {
		return Entry{}, fmt.Errorf("%w: %q (did you mean %q?)", lucid.ErrNotFound, name, s[0])
	}
	return Entry{}, fmt.Errorf("%w: %q", lucid.ErrNotFound, name)
}

// Names returns the entry names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		names[i] = e.Name
	}
	return names
}

// Suggest returns up to limit entry names close to name, closest first.
// Names further than half their length away are not suggested.
func (c Catalog) Suggest(name string, limit int) []string {
	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	needle := strings.ToLower(name)
	for _, e := range c.Entries {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(e.Name))
		if d > max(len(e.Name), len(name))/2 {
			continue
		}
		cands = append(cands, candidate{name: e.Name, dist: d})
	}
	slices.SortStableFunc(cands, func(a, b candidate) int {
		return a.dist - b.dist
	})
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	out := make([]string, len(cands))
	for i, cand := range cands {
		out[i] = cand.name
	}
	return out
}

// Categories maps each category to the names of its components, in catalog
// order. Components without categories are listed under "uncategorized".
func (c Catalog) Categories() map[string][]string {
	out := make(map[string][]string)
	for _, e := range c.Entries {
		if len(e.Categories) == 0 {
			out["uncategorized"] = append(out["uncategorized"], e.Name)
			continue
		}
		for _, cat := range e.Categories {
			out[cat] = append(out[cat], e.Name)
		}
	}
	return out
}
