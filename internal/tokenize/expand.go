package tokenize

import (
	"strings"
	"unicode"
)

// SplitCaseDigit breaks a token at camel-case and letter-digit boundaries,
// returning lowercase sub-tokens of at least two characters. A token with
// no boundary comes back unchanged as a single element.
func SplitCaseDigit(token string) []string {
	runes := []rune(token)
	if len(runes) < minTokenLen {
		return []string{strings.ToLower(token)}
	}

	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := (unicode.IsLower(prev) && unicode.IsUpper(cur)) ||
			(unicode.IsLetter(prev) && unicode.IsDigit(cur)) ||
			(unicode.IsDigit(prev) && unicode.IsLetter(cur) && letterRunLen(runes[i:]) >= minTokenLen)
		if boundary {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	if start == 0 {
		return []string{strings.ToLower(token)}
	}
	parts = append(parts, string(runes[start:]))

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered := strings.ToLower(part)
		if len(lowered) < minTokenLen {
			continue
		}
		out = append(out, lowered)
	}
	if len(out) == 0 {
		return []string{strings.ToLower(token)}
	}
	return out
}

// letterRunLen counts consecutive letters at the head of runes. A lone
// letter after digits (as in "2b") is kept glued to its digits so weak-form
// tokens survive intact.
func letterRunLen(runes []rune) int {
	n := 0
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			break
		}
		n++
	}
	return n
}

const (
	minGluedLen   = 6
	minSegmentLen = 2
)

// SegmentGlued splits a glued lowercase alphabetic token by greedy
// longest-prefix matching against the vocabulary word set. Segmentation is
// all-or-nothing: if any residue fails to match a known word, the token is
// reported unsegmentable rather than partially split.
func SegmentGlued(token string, hasWord func(string) bool) ([]string, bool) {
	if len(token) < minGluedLen || !isAlpha(token) || hasWord == nil {
		return nil, false
	}

	var parts []string
	rest := token
	for len(rest) > 0 {
		matched := ""
		for end := len(rest); end >= minSegmentLen; end-- {
			if hasWord(rest[:end]) {
				matched = rest[:end]
				break
			}
		}
		if matched == "" {
			return nil, false
		}
		parts = append(parts, matched)
		rest = rest[len(matched):]
	}
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}

func isAlpha(value string) bool {
	for _, r := range value {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return value != ""
}

const (
	minBigramLen = 2
	maxBigramLen = 40
)

// Bigram is a synthesized joined form of two adjacent tokens, used to
// recover multi-word aliases broken apart by the tokenizer.
type Bigram struct {
	First  Token
	Second Token
	// Spaced, Underscored, and Joined are the candidate alias forms.
	Spaced      string
	Underscored string
	Joined      string
}

// Forms returns the candidate alias strings, most specific first.
func (b Bigram) Forms() []string {
	return []string{b.Spaced, b.Underscored, b.Joined}
}

// Bigrams synthesizes joined candidate forms for adjacent token pairs in
// the same path component. Pairs containing a stopword are skipped, and
// joined forms are length-bounded.
func Bigrams(tokens []Token, isStop func(string) bool) []Bigram {
	var out []Bigram
	for i := 0; i+1 < len(tokens); i++ {
		first, second := tokens[i], tokens[i+1]
		if first.Depth != second.Depth {
			continue
		}
		if isStop != nil && (isStop(first.Text) || isStop(second.Text)) {
			continue
		}
		joined := first.Text + second.Text
		if len(joined) < minBigramLen || len(joined) > maxBigramLen {
			continue
		}
		out = append(out, Bigram{
			First:       first,
			Second:      second,
			Spaced:      first.Text + " " + second.Text,
			Underscored: first.Text + "_" + second.Text,
			Joined:      joined,
		})
	}
	return out
}
