package gen

// ImportRequirement names a source file and the identifiers imported from
// it. Requirements with the same path merge into one.
type ImportRequirement struct {
	Path  string
	Named []string
}

// mergeImports groups requirements by exact path equality, unioning the
// named imports of each group. Both the group order and the named-import
// order are first-seen order across the whole input, so the result is
// byte-identical for identical input sequences.
func mergeImports(reqs []ImportRequirement) []ImportRequirement {
	var (
		order  []string
		byPath = make(map[string][]string)
		seen   = make(map[string]map[string]bool)
	)
	for _, req := range reqs {
		if _, ok := byPath[req.Path]; !ok {
			order = append(order, req.Path)
			byPath[req.Path] = nil
			seen[req.Path] = make(map[string]bool)
		}
		for _, name := range req.Named {
			if seen[req.Path][name] {
				continue
			}
			seen[req.Path][name] = true
			byPath[req.Path] = append(byPath[req.Path], name)
		}
	}
	merged := make([]ImportRequirement, 0, len(order))
	for _, p := range order {
		merged = append(merged, ImportRequirement{Path: p, Named: byPath[p]})
	}
	return merged
}
