package registry

// fallbackMerge resolves a name for each of codes from the candidate locales,
// in priority order. The first locale defining a code wins. Codes a locale
// defines but which are not in codes are ignored. Loading stops as soon as
// every code is resolved, so later locales are never read.
//
// The result lists codes in the order they were resolved.
func fallbackMerge(codes []string, locales []string, load func(locale string) *Names) *Names {
	supported := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		supported[c] = struct{}{}
	}

	resolved := NewMap[string]()
	for _, locale := range locales {
		if resolved.Len() == len(supported) {
			break
		}
		load(locale).Each(func(code, name string) {
			if _, ok := supported[code]; !ok || resolved.Has(code) {
				return
			}
			resolved.Set(code, name)
		})
	}
	return resolved
}
