package lucid

import "slices"

// OmitProps returns the props of p that neither schema nor StandardSchema
// declares, minus any extra keys. The result is safe to spread onto a native
// element without leaking library-only props such as "orient".
//
// A nil or empty schema declares nothing, so only extra keys are removed.
// p is never modified.
func OmitProps(p Props, schema *Schema, extra ...string) Props {
	permissive := schema.Len() == 0
	out := make(Props, len(p))
	for k, v := range p {
		if slices.Contains(extra, k) {
			continue
		}
		if !permissive && schema.Known(k) {
			continue
		}
		out[k] = v
	}
	return out
}

// PickProps returns only the props of p that schema declares itself.
func PickProps(p Props, schema *Schema) Props {
	out := make(Props)
	for k, v := range p {
		if schema.Has(k) {
			out[k] = v
		}
	}
	return out
}
