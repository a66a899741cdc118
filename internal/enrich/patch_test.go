package enrich

import (
	"testing"

	"plinth/internal/catalog"
	"plinth/internal/infer"
)

func TestPlanFillsEmptyFields(t *testing.T) {
	record := &catalog.Record{ID: 7, Path: "dc/ivy.stl"}
	assignment := infer.Assignment{
		Franchise:             "dc_comics",
		CharacterName:         "poison_ivy",
		ScaleRatioDenominator: 6,
		ContentFlag:           "nsfw",
		Warnings:              []string{"character_alias_weak"},
	}

	update, changes, err := Plan(record, assignment, false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(changes) == 0 {
		t.Fatal("Plan produced no changes for an empty record")
	}

	wantColumns := map[string]any{
		"franchise":               "dc_comics",
		"character_name":          "poison_ivy",
		"scale_ratio_denominator": 6,
		"content_flag":            "nsfw",
		"normalization_warnings":  `["character_alias_weak"]`,
		"token_version":           infer.TokenVersion,
	}
	for column, want := range wantColumns {
		got, ok := update.Fields[column]
		if !ok {
			t.Errorf("Plan missing column %q", column)
			continue
		}
		if got != want {
			t.Errorf("Plan %s = %v, want %v", column, got, want)
		}
	}
	if len(update.Fields) != len(wantColumns) {
		t.Errorf("Plan wrote %d columns, want %d: %v", len(update.Fields), len(wantColumns), update.Fields)
	}
}

func TestPlanNeverOverwrites(t *testing.T) {
	record := &catalog.Record{
		ID:            3,
		Path:          "curated/model.stl",
		Franchise:     "curated_franchise",
		CharacterName: "curated_character",
		HeightMM:      75,
		TokenVersion:  infer.TokenVersion,
	}
	assignment := infer.Assignment{
		Franchise:     "dc_comics",
		CharacterName: "poison_ivy",
		HeightMM:      32,
	}

	_, changes, err := Plan(record, assignment, false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(changes) != 0 {
		t.Errorf("Plan overwrote curated fields: %v", changes)
	}
}

func TestPlanForceOverwrites(t *testing.T) {
	record := &catalog.Record{
		ID:        3,
		Path:      "curated/model.stl",
		Franchise: "wrong_franchise",
	}
	assignment := infer.Assignment{Franchise: "dc_comics"}

	update, changes, err := Plan(record, assignment, true)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if got := update.Fields["franchise"]; got != "dc_comics" {
		t.Errorf("forced franchise = %v, want dc_comics", got)
	}
	if len(changes) != 2 {
		t.Errorf("changes = %v, want franchise and token_version", changes)
	}
}

func TestPlanMergesLists(t *testing.T) {
	record := &catalog.Record{
		ID:           9,
		FactionHints: []string{"stormcast_eternals"},
		TokenVersion: infer.TokenVersion,
	}
	assignment := infer.Assignment{
		FactionHints: []string{"soulblight_gravelords", "stormcast_eternals"},
	}

	update, changes, err := Plan(record, assignment, false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := `["stormcast_eternals","soulblight_gravelords"]`
	if got := update.Fields["faction_hints"]; got != want {
		t.Errorf("faction_hints = %v, want %s", got, want)
	}
	if len(changes) != 1 {
		t.Errorf("changes = %v, want a single list merge", changes)
	}
}

func TestPlanEmptyAssignment(t *testing.T) {
	record := &catalog.Record{ID: 1, Path: "unknowable/blob.stl"}

	update, changes, err := Plan(record, infer.Assignment{}, false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(changes) != 0 || len(update.Fields) != 0 {
		t.Errorf("empty assignment produced changes: %v", changes)
	}
}

func TestPlanTokenVersionOnlyWithOtherChanges(t *testing.T) {
	record := &catalog.Record{ID: 2, Path: "x/y.stl", TokenVersion: 0}

	update, _, err := Plan(record, infer.Assignment{}, false)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if _, ok := update.Fields["token_version"]; ok {
		t.Error("token_version stamped without any other change")
	}
}
