package tokenize

import (
	"regexp"
	"strconv"
)

var (
	scaleRatioTokenPattern = regexp.MustCompile(`^1[:_\-/](\d{1,4})(?:scale)?$`)
	scaleRatioScanPattern  = regexp.MustCompile(`1[:_\-/](\d{1,4})(?:scale)?`)
	scaleMMTokenPattern    = regexp.MustCompile(`^(\d{2,3})mm$`)
	scaleMMScanPattern     = regexp.MustCompile(`(\d{2,3})mm`)
)

// ParseScaleRatio recognizes an exact ratio token such as "1:6" or
// "1-6scale". An explicit separator between the leading 1 and the
// denominator is required; bare numbers never parse.
func ParseScaleRatio(token string) (int, bool) {
	matches := scaleRatioTokenPattern.FindStringSubmatch(token)
	if matches == nil {
		return 0, false
	}
	return parseDenominator(matches[1])
}

// FindScaleRatio scans a normalized component for a ratio phrase. The match
// must sit on its own word boundaries, and a trailing dot after the
// denominator disqualifies it (version-number noise, not a scale).
func FindScaleRatio(component string) (int, bool) {
	for _, loc := range scaleRatioScanPattern.FindAllStringSubmatchIndex(component, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isWordByte(component[start-1]) {
			continue
		}
		if end < len(component) && (isWordByte(component[end]) || component[end] == '.') {
			continue
		}
		if denom, ok := parseDenominator(component[loc[2]:loc[3]]); ok {
			return denom, true
		}
	}
	return 0, false
}

// ParseScaleMM recognizes an exact millimeter-height token such as "32mm".
// The digits must immediately precede "mm"; "mm32" does not parse.
func ParseScaleMM(token string) (int, bool) {
	matches := scaleMMTokenPattern.FindStringSubmatch(token)
	if matches == nil {
		return 0, false
	}
	return parseMillimeters(matches[1])
}

// FindScaleMM scans a normalized component for a millimeter-height phrase.
func FindScaleMM(component string) (int, bool) {
	for _, loc := range scaleMMScanPattern.FindAllStringSubmatchIndex(component, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isWordByte(component[start-1]) {
			continue
		}
		if end < len(component) && isWordByte(component[end]) {
			continue
		}
		if mm, ok := parseMillimeters(component[loc[2]:loc[3]]); ok {
			return mm, true
		}
	}
	return 0, false
}

func parseDenominator(digits string) (int, bool) {
	denom, err := strconv.Atoi(digits)
	if err != nil || denom < 2 {
		return 0, false
	}
	return denom, true
}

func parseMillimeters(digits string) (int, bool) {
	mm, err := strconv.Atoi(digits)
	if err != nil || mm < 10 || mm > 999 {
		return 0, false
	}
	return mm, true
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
