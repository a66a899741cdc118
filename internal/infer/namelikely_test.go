package infer

import (
	"os"
	"path/filepath"
	"testing"

	"plinth/internal/vocab"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func TestLoadWordFreq(t *testing.T) {
	path := writeCorpus(t, "mirror 900000\nknight 90000\nmorgweth 1\nbad-line\nalso bad line here\nnegative -5\n")

	freq, err := LoadWordFreq(path)
	if err != nil {
		t.Fatalf("LoadWordFreq: %v", err)
	}

	if freq.IsRare("mirror") {
		t.Error("IsRare(mirror) = true, want false for a common word")
	}
	if !freq.IsRare("morgweth") {
		t.Error("IsRare(morgweth) = false, want true below one per million")
	}
	if !freq.IsRare("absent") {
		t.Error("IsRare(absent) = false, want true for an unknown word")
	}
}

func TestLoadWordFreqMissingFile(t *testing.T) {
	if _, err := LoadWordFreq(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("LoadWordFreq on a missing file returned nil error")
	}
}

func TestWordFreqNilIsRare(t *testing.T) {
	var freq *WordFreq
	if !freq.IsRare("anything") {
		t.Error("nil corpus must treat every word as rare")
	}
}

func TestNameLikelyHeuristic(t *testing.T) {
	engine := New(vocab.Empty())

	cases := []struct {
		word string
		want bool
	}{
		{"morgweth", true},  // fantasy suffix
		{"thandor", true},   // fantasy suffix
		{"xzqk", false},     // no vowel
		{"grakkkar", false}, // tripled letter
		{"window", false},   // no fantasy suffix, no corpus
	}
	for _, tc := range cases {
		if got := engine.nameLikely(tc.word); got != tc.want {
			t.Errorf("nameLikely(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestNameLikelyCorpusOverridesSuffix(t *testing.T) {
	path := writeCorpus(t, "mirror 900000\nfiller 100000\n")
	freq, err := LoadWordFreq(path)
	if err != nil {
		t.Fatalf("LoadWordFreq: %v", err)
	}

	engine := New(vocab.Empty(), WithWordFreq(freq))

	// "mirror" ends in a fantasy suffix but the corpus marks it common.
	if engine.nameLikely("mirror") {
		t.Error("nameLikely(mirror) = true, want false with a corpus loaded")
	}
	if !engine.nameLikely("morgweth") {
		t.Error("nameLikely(morgweth) = false, want true for a corpus-absent word")
	}
}

func TestNameLikelyAllowListOverride(t *testing.T) {
	b := vocab.NewBuilder()
	if err := b.AddDomainList(vocab.DomainListDoc{Domain: "name_allow", Words: []string{"window"}}); err != nil {
		t.Fatalf("AddDomainList: %v", err)
	}
	engine := New(b.Build())

	if !engine.nameLikely("window") {
		t.Error("nameLikely(window) = false, want true via allow-list")
	}
}
