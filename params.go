package gravityzone

import "maps"

// Params holds the named parameters of a JSON-RPC call.
//
// Values are marshaled exactly as given. A nil value becomes an explicit
// JSON null, which the console reads as "no filter" for most optional
// fields. The resource methods rely on this to mirror optional arguments.
type Params map[string]any

// clone returns a shallow copy with room for pagination bookkeeping, so
// page and perPage never leak into the caller's map.
func (p Params) clone() Params {
	out := make(Params, len(p)+2)
	maps.Copy(out, p)
	return out
}

// Bool returns a pointer to b. Settings structs use *bool fields where the
// console default is true, so the zero value means "unset" rather than
// silently flipping the default.
func Bool(b bool) *bool {
	return &b
}

func boolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// maybeString returns s, or nil when s is empty so the key marshals as an
// explicit JSON null.
func maybeString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// maybeInt returns n, or nil when n is zero.
func maybeInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

// maybeStrings returns v, or nil when v is empty.
func maybeStrings(v []string) any {
	if len(v) == 0 {
		return nil
	}
	return v
}

// maybeIntMap returns m, or nil when m is empty.
func maybeIntMap(m map[string]int) any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// maybeParams returns p, or nil when p is empty.
func maybeParams(p Params) any {
	if len(p) == 0 {
		return nil
	}
	return p
}
