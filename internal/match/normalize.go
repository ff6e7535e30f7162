package match

import (
	"strings"
	"unicode"
)

// suffixes are name tokens that carry no meaning when telling names apart.
var suffixes = []string{"schema", "field", "id"}

// Normalize lowercases a name and drops separators, so that "OrderSchema",
// "order_schema" and "lima/store.OrderSchema" differ only by their qualifier.
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// NormalizeStripped is Normalize with one trailing suffix token ("schema",
// "field" or "id") dropped, unless it is the only token.
func NormalizeStripped(s string) string {
	tokens := Tokens(s)
	if n := len(tokens); n > 1 {
		for _, suffix := range suffixes {
			if tokens[n-1] == suffix {
				tokens = tokens[:n-1]
				break
			}
		}
	}

	return strings.Join(tokens, "")
}

// Tokens splits a name into lowercase words at separators (_ - . / and
// spaces) and at case changes: "lima/store.HTTPOrderSchema" yields
// [lima store http order schema].
func Tokens(s string) []string {
	var tokens []string

	for _, part := range strings.FieldsFunc(s, isSeparator) {
		tokens = append(tokens, splitCase(part)...)
	}

	return tokens
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/', ' ':
		return true
	default:
		return false
	}
}

// splitCase splits a camel case word: a new word starts at an upper case
// rune following a lower case one, and at the last upper case rune of an
// acronym followed by a lower case rune ("XMLParser" -> xml parser).
func splitCase(word string) []string {
	runes := []rune(word)

	var (
		out   []string
		start int
	)

	for i := 1; i < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) {
			continue
		}

		prevLower := !unicode.IsUpper(runes[i-1])
		endsAcronym := i+1 < len(runes) && unicode.IsLower(runes[i+1])

		if prevLower || endsAcronym {
			out = append(out, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}

	return append(out, strings.ToLower(string(runes[start:])))
}
