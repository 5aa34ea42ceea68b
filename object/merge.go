package object

// Merge recursively merges the own keys of each source into target and
// returns target. Note: Merge mutates target.
//
// Sources are applied left to right, so later sources win at scalar leaves.
// For every key of a source:
//   - if target lacks the key, or the source value is not mergeable
//     (see [IsMergeable]), the source value is assigned;
//   - if both values are plain objects, or both are []any, the source value
//     is merged into the target value;
//   - otherwise the source value is assigned.
//
// Slices merge index by index; extra source elements are appended. A nil
// target is replaced by a new Object, and nil sources are skipped.
//
//	object.Merge(object.Of("a", 1, "b", 2), object.Of("b", 3)) // → {a: 1, b: 3}
func Merge(target *Object, sources ...*Object) *Object {
	if target == nil {
		target = New()
	}
	for _, src := range sources {
		src.Range(func(key string, value any) bool {
			mergeKey(target.Get, func(k string, v any) { target.Set(k, v) }, key, value)
			return true
		})
	}
	return target
}

// Merged is the non-mutating counterpart of [Merge]: it merges deep copies
// of sources into a fresh Object, so neither the sources nor anything they
// reference is modified and the result shares no containers with them.
func Merged(sources ...*Object) *Object {
	copies := make([]*Object, 0, len(sources))
	for _, src := range sources {
		if src != nil {
			copies = append(copies, deepCopy(src).(*Object))
		}
	}
	return Merge(New(), copies...)
}

// deepCopy copies every *Object, map[string]any and []any reachable from v.
// Other values are returned as they are.
func deepCopy(v any) any {
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return x
		}
		out := &Object{keys: make([]string, len(x.keys)), values: make(map[string]any, len(x.values))}
		copy(out.keys, x.keys)
		for k, val := range x.values {
			out.values[k] = deepCopy(val)
		}
		return out
	case map[string]any:
		if x == nil {
			return x
		}
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = deepCopy(val)
		}
		return out
	case []any:
		if x == nil {
			return x
		}
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = deepCopy(val)
		}
		return out
	}
	return v
}

func mergeKey(get func(string) (any, bool), set func(string, any), key string, src any) {
	dst, ok := get(key)
	if !ok || !IsMergeable(src) {
		set(key, src)
		return
	}
	if merged, ok := mergeValue(dst, src); ok {
		set(key, merged)
		return
	}
	set(key, src)
}

// mergeValue merges src into dst when both have the same shape and returns
// the resulting destination, which differs from dst only when a slice grew.
func mergeValue(dst, src any) (any, bool) {
	if s, ok := src.([]any); ok {
		d, ok := dst.([]any)
		if !ok || d == nil {
			return nil, false
		}
		for i, sv := range s {
			if i >= len(d) {
				d = append(d, sv)
				continue
			}
			if IsMergeable(sv) {
				if merged, ok := mergeValue(d[i], sv); ok {
					d[i] = merged
					continue
				}
			}
			d[i] = sv
		}
		return d, true
	}

	entries, ok := Entries(src)
	if !ok {
		return nil, false
	}
	switch d := dst.(type) {
	case *Object:
		if d == nil {
			return nil, false
		}
		for _, e := range entries {
			mergeKey(d.Get, func(k string, v any) { d.Set(k, v) }, e.Key, e.Value)
		}
		return d, true
	case map[string]any:
		if d == nil {
			return nil, false
		}
		get := func(k string) (any, bool) {
			v, ok := d[k]
			return v, ok
		}
		for _, e := range entries {
			mergeKey(get, func(k string, v any) { d[k] = v }, e.Key, e.Value)
		}
		return d, true
	}
	return nil, false
}
