package vocab

import "testing"

func sampleFranchise() FranchiseDoc {
	return FranchiseDoc{
		Key:     "dc_comics",
		Aliases: []string{"DC", "DC Comics"},
		Characters: []CharacterDoc{
			{Name: "poison_ivy", Aliases: []string{"Poison Ivy", "Pamela Isley", "ivy"}},
			{Name: "harley_quinn", Aliases: []string{"Harley Quinn"}},
		},
		Signals: SignalsDoc{
			Strong: []string{"gotham", "batman"},
			Weak:   []string{"comic"},
			Stop:   []string{"justice"},
		},
	}
}

func TestBuilderFranchise(t *testing.T) {
	b := NewBuilder()
	if err := b.AddFranchise(sampleFranchise()); err != nil {
		t.Fatalf("AddFranchise: %v", err)
	}
	snap := b.Build()

	ch, ok := snap.Character("poison ivy")
	if !ok || ch.Name != "poison_ivy" || ch.Franchise != "dc_comics" {
		t.Fatalf("Character(poison ivy) = %+v, %v", ch, ok)
	}
	if !ch.MultiWord {
		t.Fatal("poison ivy should be multi-word")
	}

	// multi-word aliases are reachable in every joined form
	for _, form := range []string{"poison_ivy", "poisonivy", "pamela isley"} {
		if _, ok := snap.Character(form); !ok {
			t.Fatalf("Character(%q) not found", form)
		}
	}

	if ch, ok := snap.Character("ivy"); !ok || ch.MultiWord {
		t.Fatalf("Character(ivy) = %+v, %v; want single-word hit", ch, ok)
	}

	ref, ok := snap.FranchiseAlias("dc comics")
	if !ok || ref.Key != "dc_comics" || !ref.MultiWord {
		t.Fatalf("FranchiseAlias(dc comics) = %+v, %v", ref, ok)
	}

	if got := snap.StrengthFor("dc_comics", "gotham"); got != StrengthStrong {
		t.Fatalf("StrengthFor(gotham) = %v", got)
	}
	if got := snap.StrengthFor("dc_comics", "comic"); got != StrengthWeak {
		t.Fatalf("StrengthFor(comic) = %v", got)
	}
	if got := snap.StrengthFor("dc_comics", "justice"); got != StrengthStop {
		t.Fatalf("StrengthFor(justice) = %v", got)
	}
	if got := snap.StrengthFor("dc_comics", "other"); got != StrengthNone {
		t.Fatalf("StrengthFor(other) = %v", got)
	}

	// alias words feed the segmentation word set
	for _, word := range []string{"poison", "ivy", "pamela", "gotham"} {
		if !snap.HasWord(word) {
			t.Fatalf("HasWord(%q) = false", word)
		}
	}
}

func TestBuilderDuplicateAliasLastWins(t *testing.T) {
	b := NewBuilder()
	if err := b.AddFranchise(FranchiseDoc{
		Key:        "first",
		Characters: []CharacterDoc{{Name: "one", Aliases: []string{"shared"}}},
	}); err != nil {
		t.Fatalf("AddFranchise: %v", err)
	}
	if err := b.AddFranchise(FranchiseDoc{
		Key:        "second",
		Characters: []CharacterDoc{{Name: "two", Aliases: []string{"shared"}}},
	}); err != nil {
		t.Fatalf("AddFranchise: %v", err)
	}
	snap := b.Build()

	ch, ok := snap.Character("shared")
	if !ok || ch.Franchise != "second" || ch.Name != "two" {
		t.Fatalf("expected most-recent mapping to win, got %+v", ch)
	}
}

func TestBuilderDomainLists(t *testing.T) {
	b := NewBuilder()
	err := b.AddDomainList(DomainListDoc{
		Domain: "lineages",
		Entries: []DomainEntryDoc{
			{Key: "elves", Aliases: []string{"elf", "aelf", "dark elves"}},
			{Key: "orcs", Aliases: []string{"orc", "ork"}},
		},
	})
	if err != nil {
		t.Fatalf("AddDomainList: %v", err)
	}
	err = b.AddDomainList(DomainListDoc{
		Domain: "factions",
		Entries: []DomainEntryDoc{
			{Key: "soulblight", System: "aos", Lineage: "vampires", Aliases: []string{"soulblight gravelords"}},
		},
	})
	if err != nil {
		t.Fatalf("AddDomainList: %v", err)
	}
	snap := b.Build()

	if family, ok := snap.Lineage("aelf"); !ok || family != "elves" {
		t.Fatalf("Lineage(aelf) = %q, %v", family, ok)
	}
	if family, ok := snap.Lineage("dark_elves"); !ok || family != "elves" {
		t.Fatalf("Lineage(dark_elves) = %q, %v", family, ok)
	}
	faction, ok := snap.Faction("soulblight")
	if !ok || faction.System != "aos" || faction.Lineage != "vampires" {
		t.Fatalf("Faction(soulblight) = %+v, %v", faction, ok)
	}
}

func TestBuilderRejectsMalformedEntries(t *testing.T) {
	b := NewBuilder()
	if err := b.AddFranchise(FranchiseDoc{}); !SkippedEntry(err) {
		t.Fatalf("expected skip-entry error, got %v", err)
	}
	if err := b.AddDomainList(DomainListDoc{Domain: "unknown_group"}); !SkippedEntry(err) {
		t.Fatalf("expected skip-entry error, got %v", err)
	}
	if err := b.AddDomainList(DomainListDoc{}); !SkippedEntry(err) {
		t.Fatalf("expected skip-entry error, got %v", err)
	}
}

func TestEmptySnapshotIsUsable(t *testing.T) {
	snap := Empty()
	if _, ok := snap.Character("anything"); ok {
		t.Fatal("empty snapshot should have no characters")
	}
	if !snap.IsTabletopHint("terrain") {
		t.Fatal("built-in tabletop hints must survive an empty load")
	}
	if axis, ok := snap.Axis("presupported"); !ok || axis.Kind != AxisSupportState || axis.Value != "supported" {
		t.Fatalf("Axis(presupported) = %+v, %v", axis, ok)
	}
	if flag, ok := snap.ContentFlag("nsfw"); !ok || flag != "nsfw" {
		t.Fatalf("ContentFlag(nsfw) = %q, %v", flag, ok)
	}
}

func TestNormalizeAlias(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Poison Ivy", "poison ivy"},
		{"poison_ivy", "poison ivy"},
		{"  Dark-Elves ", "dark elves"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeAlias(tc.in); got != tc.want {
			t.Errorf("NormalizeAlias(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
