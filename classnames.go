package lucid

import (
	"slices"
	"strings"

	"github.com/a-h/templ"
)

// ScopeMarker is the token prefix replaced by a binder's root.
const ScopeMarker = "&"

// ClassToggle is a class token included only when On is true.
type ClassToggle struct {
	Token string
	On    bool
}

// Classes is an ordered set of conditional class tokens. Unlike a
// map[string]bool, its order is the output order.
type Classes []ClassToggle

// Toggle is shorthand for a single ClassToggle.
func Toggle(token string, on bool) ClassToggle {
	return ClassToggle{Token: token, On: on}
}

// Namespace is a library-wide class prefix. Component roots declared as
// "&-Name" resolve against it.
type Namespace string

// Bind resolves root against the namespace and returns a binder for it.
//
//	cx := lucid.Namespace("lucid").Bind("&-Legend").Cx
//	cx("&-Item") // "lucid-Legend-Item"
func (n Namespace) Bind(root string) Binder {
	return Binder{root: resolveToken(string(n), root)}
}

// Binder maps shorthand class tokens to scoped class names.
//
// A Binder is an immutable value; construct one per component and keep it
// next to the component's definition.
type Binder struct {
	root string
}

// Bind returns a binder whose scope marker resolves to root.
func Bind(root string) Binder {
	return Binder{root: root}
}

// Root returns the resolved root token.
func (b Binder) Root() string {
	return b.root
}

// Cx resolves its arguments into a space separated class string.
//
// Accepted arguments, in output order:
//   - string: a leading "&" is replaced by the root, anything else passes
//     through unchanged; "" is skipped
//   - templ.KeyValue[string, bool], ClassToggle, Classes and their slices:
//     the token is included when the value is true
//   - map[string]bool: as above, keys emitted in sorted order
//   - []string, []any: resolved element by element
//
// nil and values of any other type are skipped. Duplicates are kept.
func (b Binder) Cx(args ...any) string {
	var tokens []string
	for _, arg := range args {
		tokens = b.appendTokens(tokens, arg)
	}
	return strings.Join(tokens, " ")
}

// Class is Cx wrapped for templ's class attribute handling.
func (b Binder) Class(args ...any) templ.CSSClass {
	return templ.ConstantCSSClass(b.Cx(args...))
}

func (b Binder) appendTokens(tokens []string, arg any) []string {
	switch v := arg.(type) {
	case nil:
		return tokens
	case string:
		return b.appendToken(tokens, v)
	case *string:
		if v == nil {
			return tokens
		}
		return b.appendToken(tokens, *v)
	case ClassToggle:
		if v.On {
			return b.appendToken(tokens, v.Token)
		}
		return tokens
	case Classes:
		for _, t := range v {
			tokens = b.appendTokens(tokens, t)
		}
		return tokens
	case []ClassToggle:
		return b.appendTokens(tokens, Classes(v))
	case templ.KeyValue[string, bool]:
		if v.Value {
			return b.appendToken(tokens, v.Key)
		}
		return tokens
	case []templ.KeyValue[string, bool]:
		for _, kv := range v {
			tokens = b.appendTokens(tokens, kv)
		}
		return tokens
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if v[k] {
				tokens = b.appendToken(tokens, k)
			}
		}
		return tokens
	case []string:
		for _, s := range v {
			tokens = b.appendToken(tokens, s)
		}
		return tokens
	case []any:
		for _, item := range v {
			tokens = b.appendTokens(tokens, item)
		}
		return tokens
	default:
		return tokens
	}
}

func (b Binder) appendToken(tokens []string, token string) []string {
	if token == "" {
		return tokens
	}
	return append(tokens, resolveToken(b.root, token))
}

func resolveToken(root, token string) string {
	if suffix, ok := strings.CutPrefix(token, ScopeMarker); ok {
		return root + suffix
	}
	return token
}
