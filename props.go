package lucid

import (
	"maps"
	"slices"
	"strconv"
)

// Standard prop names accepted by every component.
const (
	PropClassName = "className"
	PropStyle     = "style"
	PropChildren  = "children"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined marks a prop as explicitly absent. A key holding Undefined is
// treated exactly like a missing key: defaults replace it and it is never
// rendered. A key holding nil is an explicit null and is kept.
var Undefined = undefined{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Props is the prop bag passed to components and native elements.
//
// Insertion order is irrelevant. The core never mutates a Props value it
// receives; every transform returns a new bag.
type Props map[string]any

// Clone returns a shallow copy of p. A nil bag clones to an empty one.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	maps.Copy(out, p)
	return out
}

// Has reports whether key is present and not Undefined. Explicit nil counts
// as present.
func (p Props) Has(key string) bool {
	v, ok := p[key]
	return ok && !IsUndefined(v)
}

// Get returns the value under key, or nil when the key is absent.
func (p Props) Get(key string) any {
	v, ok := p[key]
	if !ok || IsUndefined(v) {
		return nil
	}
	return v
}

// String returns the string value under key. Non-string values yield "".
func (p Props) String(key string) string {
	s, _ := p.Get(key).(string)
	return s
}

// Bool returns the boolean value under key. Non-bool values yield false.
func (p Props) Bool(key string) bool {
	b, _ := p.Get(key).(bool)
	return b
}

// Number returns the numeric value under key as a float64 and whether the
// value was numeric.
func (p Props) Number(key string) (float64, bool) {
	return toFloat(p.Get(key))
}

// Children returns the children stored under the standard children key.
func (p Props) Children() any {
	return p.Get(PropChildren)
}

// Keys returns the present keys in sorted order.
func (p Props) Keys() []string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if IsUndefined(v) {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// With returns a copy of p with key set to value.
func (p Props) With(key string, value any) Props {
	out := p.Clone()
	out[key] = value
	return out
}

// Merge returns a copy of p overlaid with every present key of other.
func (p Props) Merge(other Props) Props {
	out := p.Clone()
	for k, v := range other {
		if IsUndefined(v) {
			continue
		}
		out[k] = v
	}
	return out
}

// ApplyDefaults returns a new bag where every default key that is missing or
// Undefined in props receives the default value. Caller values always win,
// including an explicit nil.
func ApplyDefaults(props, defaults Props) Props {
	out := props.Clone()
	for k, def := range defaults {
		if v, ok := out[k]; ok && !IsUndefined(v) {
			continue
		}
		out[k] = def
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// formatNumber renders a numeric value without a trailing ".0".
func formatNumber(v any) (string, bool) {
	f, ok := toFloat(v)
	if !ok {
		return "", false
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true
}
