package normalize

// longestSpan scans s for balanced open/close delimited spans at the
// top level and returns the longest one, or "" if none is complete.
// Longest wins deliberately: models often wrap the real payload in
// commentary that also contains small JSON fragments, and the complete
// object is almost always the largest balanced span.
//
// The scanner tracks string and escape state byte-by-byte so that
// delimiters inside JSON strings do not confuse the depth count. It is
// safe to iterate bytes for ASCII delimiters because UTF-8 guarantees
// ASCII bytes never appear inside a multi-byte sequence.
func longestSpan(s string, open, closeb byte) string {
	var best string
	var depth int
	start := -1
	var inString bool
	var escape bool

	for i := 0; i < len(s); i++ {
		b := s[i]

		if escape {
			escape = false
			continue
		}

		if inString {
			if b == '\\' {
				escape = true
			} else if b == '"' {
				inString = false
			}
			continue
		}

		if b == '"' {
			inString = true
			continue
		}

		if b == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if b == closeb {
			if depth > 0 {
				depth--
				if depth == 0 && start != -1 {
					if span := s[start : i+1]; len(span) > len(best) {
						best = span
					}
					start = -1
				}
			}
		}
	}

	return best
}
