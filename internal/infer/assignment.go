package infer

// TokenVersion identifies the tokenizer/scorer revision that produced an
// assignment. Bump when scoring semantics change enough that stored
// results should be recomputed.
const TokenVersion = 1

// Normalization warnings recorded in place of a guess.
const (
	WarnTabletopNoFranchise       = "tabletop_no_franchise"
	WarnCharacterAliasWeak        = "character_alias_weak"
	WarnFactionWithoutSystem      = "faction_without_system"
	WarnLineageAmbiguous          = "lineage_ambiguous_vs_context"
	WarnOriginalCharacterInferred = "original_character_inferred"
	WarnFranchiseConflict         = "franchise_conflict"
)

// Assignment is the engine's output for one record. Empty fields mean the
// evidence did not support an assignment; Warnings explain why.
type Assignment struct {
	Franchise             string
	CharacterName         string
	LineageFamily         string
	FactionHints          []string
	ScaleRatioDenominator int
	HeightMM              int
	Segmentation          string
	InternalVolume        string
	SupportState          string
	PartPackType          string
	ContentFlag           string
	Warnings              []string
	ResidualTokens        []string
}

// Empty reports whether nothing at all was assigned.
func (a *Assignment) Empty() bool {
	return a.Franchise == "" && a.CharacterName == "" && a.LineageFamily == "" &&
		len(a.FactionHints) == 0 && a.ScaleRatioDenominator == 0 && a.HeightMM == 0 &&
		a.Segmentation == "" && a.InternalVolume == "" && a.SupportState == "" &&
		a.PartPackType == "" && a.ContentFlag == "" &&
		len(a.Warnings) == 0 && len(a.ResidualTokens) == 0
}

// addWarning appends a warning, preserving order without duplicates.
func (a *Assignment) addWarning(warning string) {
	for _, existing := range a.Warnings {
		if existing == warning {
			return
		}
	}
	a.Warnings = append(a.Warnings, warning)
}

// addFactionHint appends a hint, preserving order without duplicates.
func (a *Assignment) addFactionHint(hint string) {
	if hint == "" {
		return
	}
	for _, existing := range a.FactionHints {
		if existing == hint {
			return
		}
	}
	a.FactionHints = append(a.FactionHints, hint)
}

func (a *Assignment) addResidual(token string) {
	for _, existing := range a.ResidualTokens {
		if existing == token {
			return
		}
	}
	a.ResidualTokens = append(a.ResidualTokens, token)
}
