package equation

import (
	"strconv"
	"strings"
	"unicode"
)

// rawToken is a substring of the input produced by scanning. It carries no
// semantic meaning; the compiler classifies it later.
type rawToken struct {
	text string
	pos  int
}

func (t rawToken) String() string {
	return t.text + "@" + strconv.Itoa(t.pos)
}

// Symbols contains the characters which are always scanned as
// single-character tokens, even with no whitespace around them.
const Symbols = "+-*/^()"

func isSymbol(r rune) bool {
	return strings.ContainsRune(Symbols, r)
}

// scanTokens splits src into raw tokens. Whitespace separates tokens and is
// discarded. A run starting with a digit or a decimal point is consumed as
// far as floating-point literal syntax extends, even if the result is not a
// valid number; any other run of characters is consumed until whitespace or
// a symbol character. The empty input yields no tokens. Token positions are
// 1-based rune columns.
func scanTokens(src string) []rawToken {
	var tokens []rawToken
	rs := []rune(src)
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case isSymbol(r):
			tokens = append(tokens, rawToken{text: string(r), pos: i + 1})
			i++
		case '0' <= r && r <= '9', r == '.':
			j := scanNum(rs, i)
			tokens = append(tokens, rawToken{text: string(rs[i:j]), pos: i + 1})
			i = j
		default:
			j := i
			for j < len(rs) && !unicode.IsSpace(rs[j]) && !isSymbol(rs[j]) {
				j++
			}
			tokens = append(tokens, rawToken{text: string(rs[i:j]), pos: i + 1})
			i = j
		}
	}
	return tokens
}

// scanNum returns the index just past the longest floating-point literal
// starting at rs[i]: digits with at most one decimal point, then an
// exponent if one is actually present. If no literal syntax extends from i
// at all, the single rune at i is consumed so that scanning always makes
// progress; classification rejects the result later.
func scanNum(rs []rune, i int) int {
	j := i
	dig := false
	for j < len(rs) && '0' <= rs[j] && rs[j] <= '9' {
		dig = true
		j++
	}
	if j < len(rs) && rs[j] == '.' {
		j++
		for j < len(rs) && '0' <= rs[j] && rs[j] <= '9' {
			dig = true
			j++
		}
	}
	if !dig {
		// A lone decimal point. Emit it as its own token.
		return j
	}
	if j < len(rs) && (rs[j] == 'e' || rs[j] == 'E') {
		k := j + 1
		if k < len(rs) && (rs[k] == '+' || rs[k] == '-') {
			k++
		}
		// The exponent only belongs to the literal if a digit follows;
		// otherwise "1e" is the number 1 and the identifier e.
		if k < len(rs) && '0' <= rs[k] && rs[k] <= '9' {
			for k < len(rs) && '0' <= rs[k] && rs[k] <= '9' {
				k++
			}
			j = k
		}
	}
	return j
}
