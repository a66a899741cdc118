package infer

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WordFreq is an optional word-frequency corpus ("word count" per line).
// Common words disqualify themselves as invented character names; words
// absent from the corpus are presumed rare.
type WordFreq struct {
	counts map[string]int64
	total  int64
}

// rarePerMillion is the relative frequency below which a corpus word
// still counts as rare.
const rarePerMillion = 1.0

// LoadWordFreq reads a frequency corpus. Malformed lines are skipped.
func LoadWordFreq(path string) (*WordFreq, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word frequency corpus: %w", err)
	}
	defer file.Close()

	freq := &WordFreq{counts: make(map[string]int64)}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || count < 0 {
			continue
		}
		word := strings.ToLower(fields[0])
		freq.counts[word] += count
		freq.total += count
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word frequency corpus: %w", err)
	}
	return freq, nil
}

// IsRare reports whether a word is absent from the corpus or occurs below
// one per million tokens.
func (f *WordFreq) IsRare(word string) bool {
	if f == nil || f.total == 0 {
		return true
	}
	count, ok := f.counts[strings.ToLower(word)]
	if !ok {
		return true
	}
	perMillion := float64(count) / float64(f.total) * 1_000_000
	return perMillion < rarePerMillion
}

// fantasySuffixes are name endings common in invented character names.
// Without a frequency corpus the heuristic only accepts words carrying
// one of these, keeping the fallback conservative.
var fantasySuffixes = []string{
	"th", "ar", "is", "us", "ia", "el", "or", "yn", "ax", "ix",
	"ra", "oth", "und", "eth", "wen", "dor", "mir", "gar", "zar",
	"iel", "ael", "wyn", "rik", "grim",
}

// nameLikely applies the fantasy-name heuristic: allow-list override,
// vowel presence, no tripled letters, then either the frequency corpus
// (rare words pass) or the suffix heuristic when no corpus is loaded.
func (e *Engine) nameLikely(word string) bool {
	if e.snap.IsAllowedName(word) {
		return true
	}
	if !hasVowel(word) {
		return false
	}
	if hasTripledLetter(word) {
		return false
	}
	if e.freq != nil {
		return e.freq.IsRare(word)
	}
	for _, suffix := range fantasySuffixes {
		if strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

func hasVowel(word string) bool {
	return strings.ContainsAny(word, "aeiouy")
}

func hasTripledLetter(word string) bool {
	for i := 2; i < len(word); i++ {
		if word[i] == word[i-1] && word[i] == word[i-2] {
			return true
		}
	}
	return false
}
