package lucid

import "slices"

// Kind is the value shape a prop is declared to hold.
type Kind string

const (
	KindAny    Kind = "any"
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindNumber Kind = "number"
	KindFunc   Kind = "func"
	KindNode   Kind = "node"
	KindObject Kind = "object"
)

// PropType declares a single prop.
//
// Rule is an optional go-playground/validator tag (for example
// "oneof=horizontal vertical") checked against supplied values. Doc is the
// documentation text shown by the catalog.
type PropType struct {
	Name     string
	Kind     Kind
	Rule     string
	Required bool
	Doc      string
}

// Describe returns a copy of the prop type with Doc set.
func (t PropType) Describe(doc string) PropType {
	t.Doc = doc
	return t
}

// IsRequired returns a copy of the prop type marked as required.
func (t PropType) IsRequired() PropType {
	t.Required = true
	return t
}

// Validate returns a copy of the prop type with a validator rule.
func (t PropType) Validate(rule string) PropType {
	t.Rule = rule
	return t
}

func String(name string) PropType { return PropType{Name: name, Kind: KindString} }
func Bool(name string) PropType   { return PropType{Name: name, Kind: KindBool} }
func Number(name string) PropType { return PropType{Name: name, Kind: KindNumber} }
func Func(name string) PropType   { return PropType{Name: name, Kind: KindFunc} }
func Node(name string) PropType   { return PropType{Name: name, Kind: KindNode} }
func Object(name string) PropType { return PropType{Name: name, Kind: KindObject} }
func Any(name string) PropType    { return PropType{Name: name, Kind: KindAny} }

// OneOf declares a string prop restricted to values.
func OneOf(name string, values ...string) PropType {
	rule := "oneof="
	for i, v := range values {
		if i > 0 {
			rule += " "
		}
		rule += v
	}
	return PropType{Name: name, Kind: KindString, Rule: rule}
}

// StandardSchema holds the props every component accepts.
var StandardSchema = NewSchema(
	String(PropClassName).Describe("Appended to the component-specific class names set on the root element."),
	Object(PropStyle).Describe("Inline styles applied to the root element."),
	Node(PropChildren),
)

// Schema is a component's declared props, in declaration order.
//
// A schema is fixed once its component is defined; the methods below never
// modify the receiver.
type Schema struct {
	props []PropType
	index map[string]int
}

// NewSchema builds a schema. A later entry with the same name replaces the
// earlier one in place.
func NewSchema(props ...PropType) *Schema {
	s := &Schema{index: make(map[string]int, len(props))}
	for _, p := range props {
		if i, ok := s.index[p.Name]; ok {
			s.props[i] = p
			continue
		}
		s.index[p.Name] = len(s.props)
		s.props = append(s.props, p)
	}
	return s
}

// Extend returns a new schema holding s's entries followed by extra. It
// mirrors spreading a base component's propTypes into a wrapper's.
func (s *Schema) Extend(extra ...PropType) *Schema {
	return NewSchema(append(s.Props(), extra...)...)
}

// Props returns a copy of the declared entries.
func (s *Schema) Props() []PropType {
	if s == nil {
		return nil
	}
	return slices.Clone(s.props)
}

// Keys returns the declared prop names in declaration order.
func (s *Schema) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, len(s.props))
	for i, p := range s.props {
		keys[i] = p.Name
	}
	return keys
}

// Len returns the number of declared props.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// Has reports whether the schema itself declares name.
func (s *Schema) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Lookup returns the declaration for name.
func (s *Schema) Lookup(name string) (PropType, bool) {
	if s == nil {
		return PropType{}, false
	}
	i, ok := s.index[name]
	if !ok {
		return PropType{}, false
	}
	return s.props[i], true
}

// Known reports whether name is declared by the schema or by StandardSchema.
func (s *Schema) Known(name string) bool {
	return s.Has(name) || StandardSchema.Has(name)
}
