package object

// PathSet is a set of flat property names used by [Pick] and [Omit].
type PathSet map[string]struct{}

// NormalizePaths flattens args into a PathSet. Each argument may be a
// string, a []string or a []any of strings; slices are expanded one level
// and anything else, including non-string slice members, is ignored.
//
//	object.NormalizePaths("a", []string{"b", "c"}, []any{"a", 1})
//	// → {a, b, c}
func NormalizePaths(args ...any) PathSet {
	set := make(PathSet, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			set[v] = struct{}{}
		case []string:
			for _, s := range v {
				set[s] = struct{}{}
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					set[s] = struct{}{}
				}
			}
		}
	}
	return set
}

// Has reports whether name is in the set.
func (s PathSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of distinct names.
func (s PathSet) Len() int { return len(s) }
