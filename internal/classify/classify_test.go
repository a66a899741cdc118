package classify_test

import (
	"testing"

	"plinth/internal/classify"
	"plinth/internal/tokenize"
	"plinth/internal/vocab"
)

func testSnapshot(t *testing.T) *vocab.Snapshot {
	t.Helper()
	b := vocab.NewBuilder()
	if err := b.AddDomainList(vocab.DomainListDoc{
		Domain:  "designers",
		Entries: []vocab.DomainEntryDoc{{Key: "artist_one", Aliases: []string{"artistone"}}},
	}); err != nil {
		t.Fatalf("designers: %v", err)
	}
	if err := b.AddDomainList(vocab.DomainListDoc{
		Domain:  "lineages",
		Entries: []vocab.DomainEntryDoc{{Key: "elves", Aliases: []string{"elf"}}},
	}); err != nil {
		t.Fatalf("lineages: %v", err)
	}
	if err := b.AddDomainList(vocab.DomainListDoc{
		Domain:  "factions",
		Entries: []vocab.DomainEntryDoc{{Key: "stormcast", System: "aos"}},
	}); err != nil {
		t.Fatalf("factions: %v", err)
	}
	return b.Build()
}

func TestClassifyPriority(t *testing.T) {
	snap := testSnapshot(t)

	cases := []struct {
		token string
		want  classify.Domain
	}{
		{"the", classify.DomainStopword},
		{"artistone", classify.DomainDesigner},
		{"elf", classify.DomainLineage},
		{"stormcast", classify.DomainFactionHint},
		{"presupported", classify.DomainVariantAxis},
		{"hollow", classify.DomainVariantAxis},
		{"1:10", classify.DomainScaleRatio},
		{"32mm", classify.DomainScaleMM},
		{"mystery", classify.DomainUnclassified},
	}
	for _, tc := range cases {
		if got := classify.Classify(tc.token, snap); got != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.token, got, tc.want)
		}
	}
}

func TestStopwordOutranksEverything(t *testing.T) {
	b := vocab.NewBuilder()
	if err := b.AddDomainList(vocab.DomainListDoc{Domain: "stopwords", Words: []string{"elf"}}); err != nil {
		t.Fatalf("stopwords: %v", err)
	}
	if err := b.AddDomainList(vocab.DomainListDoc{
		Domain:  "lineages",
		Entries: []vocab.DomainEntryDoc{{Key: "elves", Aliases: []string{"elf"}}},
	}); err != nil {
		t.Fatalf("lineages: %v", err)
	}
	snap := b.Build()

	if got := classify.Classify("elf", snap); got != classify.DomainStopword {
		t.Fatalf("Classify(elf) = %v, want stopword", got)
	}
}

func TestTagPreservesOrderAndDepth(t *testing.T) {
	snap := testSnapshot(t)
	tokens := []tokenize.Token{
		{Text: "elf", Depth: 0},
		{Text: "mystery", Depth: 1},
	}
	tagged := classify.Tag(tokens, snap)
	if len(tagged) != 2 {
		t.Fatalf("expected 2 tagged tokens, got %d", len(tagged))
	}
	if tagged[0].Domain != classify.DomainLineage || tagged[0].Depth != 0 {
		t.Fatalf("unexpected first tag %+v", tagged[0])
	}
	if tagged[1].Domain != classify.DomainUnclassified || tagged[1].Depth != 1 {
		t.Fatalf("unexpected second tag %+v", tagged[1])
	}
}
