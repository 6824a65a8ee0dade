package cache

// matchPattern reports whether name matches the shell glob pattern:
//
//	*        any run of characters, including none
//	?        exactly one character
//	[set]    any character in the set, with '-' ranges; ']' first is literal
//	[!set]   any character not in the set ('^' is accepted as an alias)
//
// The whole name must match, not a substring. A malformed pattern (unclosed
// bracket class) matches nothing; invalidation must never fail a caller, so
// there is no error return.
//
// The matcher is deliberately local: path.Match stops '*' at '/' and spells
// negation '[^...]', which diverges from the semantics cache keys rely on.
func matchPattern(pattern, name string) bool {
	p := []rune(pattern)
	n := []rune(name)

	pi, ni := 0, 0
	backPi, backNi := -1, -1

	for ni < len(n) {
		if pi < len(p) {
			c := p[pi]
			switch {
			case c == '*':
				// Record the backtrack point; '*' first tries to match nothing.
				backPi, backNi = pi, ni
				pi++
				continue
			case c == '?':
				pi++
				ni++
				continue
			case c == '[':
				matched, next, ok := matchClass(p, pi, n[ni])
				if !ok {
					return false
				}
				if matched {
					pi = next
					ni++
					continue
				}
			case c == n[ni]:
				pi++
				ni++
				continue
			}
		}
		if backPi < 0 {
			return false
		}
		// Mismatch: give the most recent '*' one more character and retry.
		backNi++
		pi = backPi + 1
		ni = backNi
	}

	// Name consumed; only trailing '*' may remain in the pattern.
	for pi < len(p) {
		if p[pi] != '*' {
			return false
		}
		pi++
	}
	return true
}

// matchClass matches c against the bracket class starting at p[start], which
// must be '['. It returns whether c is in the class, the index just past the
// closing ']', and whether the class is well-formed.
func matchClass(p []rune, start int, c rune) (matched bool, next int, ok bool) {
	i := start + 1

	negated := false
	if i < len(p) && (p[i] == '!' || p[i] == '^') {
		negated = true
		i++
	}

	first := true
	for i < len(p) && (first || p[i] != ']') {
		first = false
		lo := p[i]
		hi := lo
		if i+2 < len(p) && p[i+1] == '-' && p[i+2] != ']' {
			hi = p[i+2]
			i += 2
		}
		i++
		if lo <= c && c <= hi {
			matched = true
		}
	}
	if i >= len(p) {
		// No closing ']'.
		return false, 0, false
	}
	if negated {
		matched = !matched
	}
	return matched, i + 1, true
}
