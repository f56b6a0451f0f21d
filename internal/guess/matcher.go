// Package guess decides whether a spy's free-text guess names the round's
// secret word. Both sides are Arabic script typed on phone keyboards, so
// the comparison forgives diacritics, interchangeable letter forms and a
// small typo budget, without conflating genuinely different words.
package guess

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Letter folds for variants that are orthographically interchangeable in
// casual writing.
var letterFolds = map[rune]rune{
	'أ': 'ا', // alef with hamza above -> bare alef
	'إ': 'ا', // alef with hamza below -> bare alef
	'آ': 'ا', // alef madda -> bare alef
	'ٱ': 'ا', // alef wasla -> bare alef
	'ى': 'ي', // alef maksura -> ya
	'ئ': 'ي', // ya with hamza -> ya
	'ؤ': 'و', // waw with hamza -> waw
	'ة': 'ه', // ta marbuta -> ha
}

func isTashkil(r rune) bool {
	return (r >= 0x064B && r <= 0x065F) || r == 0x0670 || r == 0x0640
}

func isFormatControl(r rune) bool {
	switch r {
	case 0x200B, 0x200C, 0x200D, 0x200E, 0x200F, 0xFEFF:
		return true
	}
	if r >= 0x202A && r <= 0x202E {
		return true
	}
	if r >= 0x2066 && r <= 0x2069 {
		return true
	}
	return false
}

func isStrippablePunct(r rune) bool {
	switch r {
	case '«', '»', '“', '”', '‘', '’', '،', '؛', '؟':
		return true
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Normalize runs the full pipeline: canonical composition, control and
// diacritic stripping, whitespace collapse, punctuation removal, definite
// article removal, letter folding and case folding.
func Normalize(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		switch {
		case isFormatControl(r) || isTashkil(r) || isStrippablePunct(r):
			continue
		case unicode.IsSpace(r):
			space = true
			continue
		}

		if space && b.Len() > 0 {
			b.WriteRune(' ')
		}
		space = false

		if folded, ok := letterFolds[r]; ok {
			r = folded
		}
		b.WriteRune(unicode.ToLower(r))
	}

	out := b.String()
	out = strings.TrimPrefix(out, "ال") // definite article

	return strings.TrimSpace(out)
}

// editBudget is the permitted Levenshtein distance for a normalized
// length, scaled so short words stay strict.
func editBudget(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 6:
		return 2
	case length <= 9:
		return 3
	default:
		return 4
	}
}

// Match reports whether the guess should count as naming the word. An
// exact normalized match always passes; otherwise a fuzzy match is
// accepted only for words over 3 runes, with a length difference of at
// most 2 and an edit distance within the length-scaled budget.
func Match(guess, word string) bool {
	g, w := Normalize(guess), Normalize(word)
	if g == "" || w == "" {
		return false
	}
	if g == w {
		return true
	}

	gr, wr := []rune(g), []rune(w)
	if len(gr) <= 3 || len(wr) <= 3 {
		return false
	}
	diff := len(gr) - len(wr)
	if diff < 0 {
		diff = -diff
	}
	if diff > 2 {
		return false
	}

	longest := len(gr)
	if len(wr) > longest {
		longest = len(wr)
	}

	return levenshtein(gr, wr) <= editBudget(longest)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
