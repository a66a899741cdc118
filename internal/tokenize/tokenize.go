package tokenize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Token is a normalized lexical token annotated with the hierarchy depth of
// the path component it came from. Depth counts from the root; the leaf
// component has the highest depth.
type Token struct {
	Text  string
	Depth int
}

// modelExtensions are file extensions recognized (and stripped) on path
// components and on accidental trailing remnants inside tokens.
var modelExtensions = map[string]struct{}{
	"stl": {}, "obj": {}, "3mf": {}, "ztl": {}, "blend": {},
	"chitubox": {}, "lys": {}, "gcode": {}, "step": {}, "fbx": {},
	"gltf": {}, "glb": {}, "zip": {}, "rar": {}, "7z": {}, "pdf": {},
	"jpg": {}, "jpeg": {}, "png": {},
}

const minTokenLen = 2

// SplitPath splits a path-like string into ordered hierarchy components.
// Both separator styles are accepted; empty components are dropped.
func SplitPath(path string) []string {
	fields := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	components := make([]string, 0, len(fields))
	for _, field := range fields {
		trimmed := strings.TrimSpace(field)
		if trimmed == "" {
			continue
		}
		components = append(components, trimmed)
	}
	return components
}

// Path tokenizes every component of the path, directories included.
func Path(path string) []Token {
	components := SplitPath(path)
	var tokens []Token
	for depth, component := range components {
		tokens = append(tokens, ComponentTokens(component, depth)...)
	}
	return tokens
}

// ComponentTokens normalizes and tokenizes a single hierarchy component.
func ComponentTokens(component string, depth int) []Token {
	normalized := NormalizeComponent(component)
	fields := splitFields(normalized)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		if cleaned, ok := cleanToken(field); ok {
			tokens = append(tokens, Token{Text: cleaned, Depth: depth})
		}
	}
	return tokens
}

// NormalizeComponent strips a trailing recognized extension, folds
// diacritics, and lowercases a component without splitting it.
func NormalizeComponent(component string) string {
	stripped := stripExtension(component)
	return strings.ToLower(foldDiacritics(stripped))
}

// RawFields returns the case-preserved separator-split fields of a
// component, for callers that need camel-case boundaries before
// normalization flattens them.
func RawFields(component string) []string {
	return splitFields(foldDiacritics(stripExtension(component)))
}

func splitFields(component string) []string {
	return strings.FieldsFunc(component, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-' || r == '–'
	})
}

// cleanToken strips wrapping bracket/parenthesis/plus characters, a leading
// "@" marker, and an accidental trailing extension remnant. Tokens shorter
// than two characters are discarded.
func cleanToken(field string) (string, bool) {
	token := strings.Trim(field, "[](){}+")
	token = strings.TrimPrefix(token, "@")
	token = stripExtension(token)
	if len(token) < minTokenLen {
		return "", false
	}
	return token, true
}

func stripExtension(value string) string {
	idx := strings.LastIndexByte(value, '.')
	if idx <= 0 || idx == len(value)-1 {
		return value
	}
	ext := strings.ToLower(value[idx+1:])
	if _, ok := modelExtensions[ext]; ok {
		return value[:idx]
	}
	return value
}

// foldDiacritics rewrites accented letters to their ASCII base so
// multi-lingual names match ASCII aliases.
func foldDiacritics(value string) string {
	ascii := true
	for i := 0; i < len(value); i++ {
		if value[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return value
	}
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(chain, value)
	if err != nil {
		return value
	}
	return folded
}

// Texts returns just the token strings, in order.
func Texts(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, token.Text)
	}
	return out
}
