package extract

import "strings"

// scanBalanced walks s from the opening delimiter at open and returns the
// index just past the delimiter that brings the depth back to zero.
func scanBalanced(s string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case '\'', '"', '`':
			i = skipString(s, i, c)
		case '/':
			if i+1 >= len(s) {
				continue
			}
			switch s[i+1] {
			case '/':
				if k := strings.IndexByte(s[i:], '\n'); k >= 0 {
					i += k
				} else {
					i = len(s)
				}
			case '*':
				if k := strings.Index(s[i+2:], "*/"); k >= 0 {
					i += 2 + k + 1
				} else {
					i = len(s)
				}
			}
		}
	}
	return 0, false
}

// skipString returns the index of the quote closing the literal that opens
// at i. Single and double quoted literals also end at a raw newline.
func skipString(s string, i int, quote byte) int {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case quote:
			return j
		case '\n':
			if quote != '`' {
				return j
			}
		}
	}
	return len(s)
}
