package infer

import (
	"reflect"
	"testing"

	"plinth/internal/vocab"
)

func testSnapshot(t *testing.T) *vocab.Snapshot {
	t.Helper()
	b := vocab.NewBuilder()

	docs := []vocab.FranchiseDoc{
		{
			Key:     "DC Comics",
			Aliases: []string{"dc"},
			Signals: vocab.SignalsDoc{Strong: []string{"gotham", "batman"}},
			Characters: []vocab.CharacterDoc{
				{Name: "Poison Ivy"},
				{Name: "Harley Quinn", Aliases: []string{"harley"}},
				{Name: "Raven"},
			},
		},
		{
			Key:     "Marvel",
			Aliases: []string{"marvel"},
			Signals: vocab.SignalsDoc{Strong: []string{"marvel", "avengers"}},
			Characters: []vocab.CharacterDoc{
				{Name: "Angel"},
			},
		},
		{
			Key:     "NieR Automata",
			Aliases: []string{"nier", "automata"},
			Characters: []vocab.CharacterDoc{
				{Name: "2B"},
			},
		},
		{
			Key:     "Age of Sigmar",
			System:  "aos",
			Aliases: []string{"aos", "sigmar"},
			Signals: vocab.SignalsDoc{Weak: []string{"aos", "sigmar"}},
			Characters: []vocab.CharacterDoc{
				{Name: "Vampire Lord"},
				{Name: "Vampire Lord on Terrorgeist"},
			},
		},
	}
	for _, doc := range docs {
		if err := b.AddFranchise(doc); err != nil {
			t.Fatalf("AddFranchise(%q): %v", doc.Key, err)
		}
	}

	lists := []vocab.DomainListDoc{
		{
			Domain: "lineages",
			Entries: []vocab.DomainEntryDoc{
				{Key: "goblinoid", Aliases: []string{"goblin", "goblins"}},
				{Key: "elf", Aliases: []string{"elf", "elves", "aelf"}},
				{Key: "beastkin", Aliases: []string{"wolf"}},
			},
		},
		{
			Domain: "factions",
			Entries: []vocab.DomainEntryDoc{
				{Key: "Stormcast Eternals", System: "aos", Aliases: []string{"stormcast"}},
				{Key: "Soulblight Gravelords", System: "aos", Lineage: "undead", Aliases: []string{"soulblight"}},
			},
		},
	}
	for _, doc := range lists {
		if err := b.AddDomainList(doc); err != nil {
			t.Fatalf("AddDomainList(%q): %v", doc.Domain, err)
		}
	}

	return b.Build()
}

func TestInferDirectFranchiseAndCharacter(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("dc/poison_ivy/nude/Poison_Ivy_Hollow_1-6scale_supported.stl")

	if a.Franchise != "dc_comics" {
		t.Errorf("Franchise = %q, want dc_comics", a.Franchise)
	}
	if a.CharacterName != "poison_ivy" {
		t.Errorf("CharacterName = %q, want poison_ivy", a.CharacterName)
	}
	if a.ContentFlag != "nsfw" {
		t.Errorf("ContentFlag = %q, want nsfw", a.ContentFlag)
	}
	if a.InternalVolume != "hollow" {
		t.Errorf("InternalVolume = %q, want hollow", a.InternalVolume)
	}
	if a.SupportState != "supported" {
		t.Errorf("SupportState = %q, want supported", a.SupportState)
	}
	if a.ScaleRatioDenominator != 6 {
		t.Errorf("ScaleRatioDenominator = %d, want 6", a.ScaleRatioDenominator)
	}
	if len(a.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", a.Warnings)
	}
}

func TestInferDeterministic(t *testing.T) {
	engine := New(testSnapshot(t), WithOriginalNameInference(true))

	paths := []string{
		"dc/poison_ivy/nude/Poison_Ivy_Hollow_1-6scale_supported.stl",
		"terrain/sigmar_wall/wall.stl",
		"soulblight/vampire_lord_on_terrorgeist/body_supported.stl",
		"commissions/morgweth.stl",
	}
	for _, path := range paths {
		first := engine.Infer(path)
		second := engine.Infer(path)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Infer(%q) not deterministic:\n first: %+v\nsecond: %+v", path, first, second)
		}
	}
}

func TestInferTabletopSuppressesFranchise(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("terrain/sigmar_wall/wall.stl")

	if a.Franchise != "" {
		t.Errorf("Franchise = %q, want empty in tabletop context", a.Franchise)
	}
	if !containsString(a.FactionHints, "age_of_sigmar") {
		t.Errorf("FactionHints = %v, want age_of_sigmar hint", a.FactionHints)
	}
	if !containsString(a.Warnings, WarnTabletopNoFranchise) {
		t.Errorf("Warnings = %v, want %s", a.Warnings, WarnTabletopNoFranchise)
	}
}

func TestInferStrongAliasDefeatsTabletopGate(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("minis/poison_ivy_32mm.stl")

	if a.Franchise != "dc_comics" {
		t.Errorf("Franchise = %q, want dc_comics despite tabletop hint", a.Franchise)
	}
	if a.CharacterName != "poison_ivy" {
		t.Errorf("CharacterName = %q, want poison_ivy", a.CharacterName)
	}
	if a.HeightMM != 32 {
		t.Errorf("HeightMM = %d, want 32", a.HeightMM)
	}
	if containsString(a.Warnings, WarnTabletopNoFranchise) {
		t.Errorf("Warnings = %v, tabletop warning must not fire", a.Warnings)
	}
}

func TestInferAmbiguousAliasNeedsCorroboration(t *testing.T) {
	engine := New(testSnapshot(t))

	uncorroborated := engine.Infer("prints/angel.stl")
	if uncorroborated.CharacterName != "" || uncorroborated.Franchise != "" {
		t.Errorf("uncorroborated ambiguous alias assigned %q/%q, want nothing",
			uncorroborated.Franchise, uncorroborated.CharacterName)
	}

	corroborated := engine.Infer("marvel/angel.stl")
	if corroborated.Franchise != "marvel" {
		t.Errorf("Franchise = %q, want marvel", corroborated.Franchise)
	}
	if corroborated.CharacterName != "angel" {
		t.Errorf("CharacterName = %q, want angel", corroborated.CharacterName)
	}
}

func TestInferWeakFormNeedsCorroboration(t *testing.T) {
	engine := New(testSnapshot(t))

	uncorroborated := engine.Infer("random/2b.stl")
	if uncorroborated.CharacterName != "" {
		t.Errorf("CharacterName = %q, want empty for bare weak-form token", uncorroborated.CharacterName)
	}

	corroborated := engine.Infer("nier/2b.stl")
	if corroborated.Franchise != "nier_automata" {
		t.Errorf("Franchise = %q, want nier_automata", corroborated.Franchise)
	}
	if corroborated.CharacterName != "2b" {
		t.Errorf("CharacterName = %q, want 2b", corroborated.CharacterName)
	}
}

func TestInferMountedVariantOutranksBare(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("soulblight/vampire_lord_on_terrorgeist/body_supported.stl")

	if a.CharacterName != "vampire_lord_on_terrorgeist" {
		t.Errorf("CharacterName = %q, want vampire_lord_on_terrorgeist", a.CharacterName)
	}
	if a.Franchise != "age_of_sigmar" {
		t.Errorf("Franchise = %q, want age_of_sigmar", a.Franchise)
	}
	if !containsString(a.FactionHints, "soulblight_gravelords") {
		t.Errorf("FactionHints = %v, want soulblight_gravelords", a.FactionHints)
	}
}

func TestInferLineageDeepestWins(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("elves/warriors/goblin_archer.stl")

	if a.LineageFamily != "goblinoid" {
		t.Errorf("LineageFamily = %q, want goblinoid (leaf outranks root)", a.LineageFamily)
	}
}

func TestInferLineageContradictionSuppressed(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("kits/wolf_soulblight_knight.stl")

	if a.LineageFamily != "" {
		t.Errorf("LineageFamily = %q, want empty when faction contradicts", a.LineageFamily)
	}
	if !containsString(a.Warnings, WarnLineageAmbiguous) {
		t.Errorf("Warnings = %v, want %s", a.Warnings, WarnLineageAmbiguous)
	}
}

func TestInferWeakFranchiseAliasBecomesHint(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("aos_figures/sigmar_statue_v2.stl")

	if a.Franchise != "" {
		t.Errorf("Franchise = %q, want empty for weak-tier alias", a.Franchise)
	}
	if !containsString(a.FactionHints, "age_of_sigmar") {
		t.Errorf("FactionHints = %v, want age_of_sigmar", a.FactionHints)
	}
	if !containsString(a.Warnings, WarnFactionWithoutSystem) {
		t.Errorf("Warnings = %v, want %s", a.Warnings, WarnFactionWithoutSystem)
	}
}

func TestInferFranchiseConflictRecorded(t *testing.T) {
	engine := New(testSnapshot(t))

	a := engine.Infer("marvel_avengers_collection/gotham_raven_pack_v3.stl")

	if a.Franchise != "marvel" {
		t.Errorf("Franchise = %q, want marvel (strong alias wins over weak character)", a.Franchise)
	}
	if a.CharacterName != "raven" {
		t.Errorf("CharacterName = %q, want raven", a.CharacterName)
	}
	if !containsString(a.Warnings, WarnCharacterAliasWeak) {
		t.Errorf("Warnings = %v, want %s", a.Warnings, WarnCharacterAliasWeak)
	}
	if !containsString(a.Warnings, WarnFranchiseConflict) {
		t.Errorf("Warnings = %v, want %s", a.Warnings, WarnFranchiseConflict)
	}
}

func TestInferOriginalNameFallback(t *testing.T) {
	snap := testSnapshot(t)

	t.Run("disabled by default", func(t *testing.T) {
		a := New(snap).Infer("commissions/morgweth.stl")
		if a.CharacterName != "" {
			t.Errorf("CharacterName = %q, want empty with inference disabled", a.CharacterName)
		}
	})

	t.Run("fantasy name inferred", func(t *testing.T) {
		a := New(snap, WithOriginalNameInference(true)).Infer("commissions/morgweth.stl")
		if a.CharacterName != "morgweth" {
			t.Errorf("CharacterName = %q, want morgweth", a.CharacterName)
		}
		if !containsString(a.Warnings, WarnOriginalCharacterInferred) {
			t.Errorf("Warnings = %v, want %s", a.Warnings, WarnOriginalCharacterInferred)
		}
	})

	t.Run("known vocabulary terms never inferred", func(t *testing.T) {
		a := New(snap, WithOriginalNameInference(true)).Infer("commissions/dragon.stl")
		if a.CharacterName != "" {
			t.Errorf("CharacterName = %q, want empty for mount vocabulary word", a.CharacterName)
		}
	})

	t.Run("tabletop context blocks inference", func(t *testing.T) {
		a := New(snap, WithOriginalNameInference(true)).Infer("minis/morgweth.stl")
		if a.CharacterName != "" {
			t.Errorf("CharacterName = %q, want empty in tabletop context", a.CharacterName)
		}
	})
}

func TestInferEmptyInputs(t *testing.T) {
	engine := New(testSnapshot(t))

	for _, path := range []string{"", "/", "///", "   "} {
		a := engine.Infer(path)
		if !a.Empty() {
			t.Errorf("Infer(%q) = %+v, want empty assignment", path, a)
		}
	}
}

func TestInferNilSnapshotUsesDefaults(t *testing.T) {
	engine := New(nil)
	a := engine.Infer("minis/knight_32mm_presupported.stl")

	if a.Franchise != "" || a.CharacterName != "" {
		t.Errorf("assigned %q/%q from defaults-only snapshot, want nothing", a.Franchise, a.CharacterName)
	}
	if a.HeightMM != 32 {
		t.Errorf("HeightMM = %d, want 32", a.HeightMM)
	}
	if a.SupportState != "supported" {
		t.Errorf("SupportState = %q, want supported", a.SupportState)
	}
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
