package enrich

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"plinth/internal/catalog"
	"plinth/internal/infer"
)

// FieldChange is one column transition in a record's change set, rendered
// for display.
type FieldChange struct {
	Column string
	Old    string
	New    string
}

// Plan computes the fill-only change set for a record against a fresh
// assignment. Scalars are written only when the stored value is empty;
// list fields are union-merged preserving existing order. With force set,
// non-empty assignment scalars overwrite stored values. The token version
// column is stamped only when the plan carries another change.
func Plan(record *catalog.Record, a infer.Assignment, force bool) (catalog.FieldUpdate, []FieldChange, error) {
	update := catalog.FieldUpdate{ID: record.ID, Fields: make(map[string]any)}
	var changes []FieldChange

	setString := func(column, old, value string) {
		if value == "" {
			return
		}
		if old != "" && !force {
			return
		}
		if old == value {
			return
		}
		update.Fields[column] = value
		changes = append(changes, FieldChange{Column: column, Old: old, New: value})
	}
	setInt := func(column string, old, value int) {
		if value == 0 {
			return
		}
		if old != 0 && !force {
			return
		}
		if old == value {
			return
		}
		update.Fields[column] = value
		changes = append(changes, FieldChange{Column: column, Old: renderInt(old), New: renderInt(value)})
	}
	mergeList := func(column string, old, value []string) error {
		merged := unionLists(old, value)
		if len(merged) == len(old) {
			return nil
		}
		data, err := json.Marshal(merged)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", column, err)
		}
		update.Fields[column] = string(data)
		changes = append(changes, FieldChange{
			Column: column,
			Old:    strings.Join(old, ","),
			New:    strings.Join(merged, ","),
		})
		return nil
	}

	setString("franchise", record.Franchise, a.Franchise)
	setString("character_name", record.CharacterName, a.CharacterName)
	setString("lineage_family", record.LineageFamily, a.LineageFamily)
	setString("segmentation", record.Segmentation, a.Segmentation)
	setString("internal_volume", record.InternalVolume, a.InternalVolume)
	setString("support_state", record.SupportState, a.SupportState)
	setString("part_pack_type", record.PartPackType, a.PartPackType)
	setString("content_flag", record.ContentFlag, a.ContentFlag)
	setInt("scale_ratio_denominator", record.ScaleRatioDenominator, a.ScaleRatioDenominator)
	setInt("height_mm", record.HeightMM, a.HeightMM)

	if err := mergeList("faction_hints", record.FactionHints, a.FactionHints); err != nil {
		return catalog.FieldUpdate{}, nil, err
	}
	if err := mergeList("residual_tokens", record.ResidualTokens, a.ResidualTokens); err != nil {
		return catalog.FieldUpdate{}, nil, err
	}
	if err := mergeList("normalization_warnings", record.Warnings, a.Warnings); err != nil {
		return catalog.FieldUpdate{}, nil, err
	}

	if len(changes) > 0 && record.TokenVersion != infer.TokenVersion {
		update.Fields["token_version"] = infer.TokenVersion
		changes = append(changes, FieldChange{
			Column: "token_version",
			Old:    renderInt(record.TokenVersion),
			New:    renderInt(infer.TokenVersion),
		})
	}

	return update, changes, nil
}

func unionLists(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, lists := range [][]string{existing, incoming} {
		for _, value := range lists {
			if _, dup := seen[value]; dup {
				continue
			}
			seen[value] = struct{}{}
			merged = append(merged, value)
		}
	}
	return merged
}

func renderInt(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}
