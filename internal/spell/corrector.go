// Package spell applies the lexicon's misspelling corrections to raw query
// text before classification and extraction.
package spell

import (
	"strings"
	"unicode"

	"github.com/contract-portal/backend/internal/lexicon"
)

type Corrector struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Corrector {
	return &Corrector{lex: lex}
}

// Correct replaces each misspelled token with its canonical form and reports
// whether anything changed. Corrections run in a single pass: a substituted
// word is not looked up again, which makes Correct idempotent. Canonical
// forms are emitted in the lexicon's lower-case spelling; tokens without a
// correction pass through verbatim, punctuation included. Tokens are
// reassembled with single spaces.
func (c *Corrector) Correct(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return text, false
	}

	tokens := strings.Fields(text)
	changed := false

	for i, token := range tokens {
		prefix, core, suffix := splitPunctuation(token)
		if core == "" {
			continue
		}

		canonical, ok := c.lex.Corrections[strings.ToLower(core)]
		if !ok {
			continue
		}

		corrected := prefix + canonical + suffix
		if corrected != token {
			tokens[i] = corrected
			changed = true
		}
	}

	return strings.Join(tokens, " "), changed
}

// splitPunctuation peels leading and trailing punctuation off a token so the
// clean core can be matched against the correction map while the punctuation
// survives in place.
func splitPunctuation(token string) (prefix, core, suffix string) {
	runes := []rune(token)

	start := 0
	for start < len(runes) && !isWordRune(runes[start]) {
		start++
	}

	end := len(runes)
	for end > start && !isWordRune(runes[end-1]) {
		end--
	}

	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
