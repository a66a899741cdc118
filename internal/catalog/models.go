package catalog

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record is one cataloged model entry. String fields left empty and
// numeric fields left zero mean "not yet assigned"; enrichment fills them
// without overwriting curated values.
type Record struct {
	ID       int64  `json:"id"`
	Path     string `json:"path"`
	FileName string `json:"file_name"`

	Franchise             string   `json:"franchise,omitempty"`
	CharacterName         string   `json:"character_name,omitempty"`
	LineageFamily         string   `json:"lineage_family,omitempty"`
	FactionHints          []string `json:"faction_hints,omitempty"`
	ScaleRatioDenominator int      `json:"scale_ratio_denominator,omitempty"`
	HeightMM              int      `json:"height_mm,omitempty"`
	Segmentation          string   `json:"segmentation,omitempty"`
	InternalVolume        string   `json:"internal_volume,omitempty"`
	SupportState          string   `json:"support_state,omitempty"`
	PartPackType          string   `json:"part_pack_type,omitempty"`
	ContentFlag           string   `json:"content_flag,omitempty"`
	ResidualTokens        []string `json:"residual_tokens,omitempty"`
	Warnings              []string `json:"normalization_warnings,omitempty"`
	TokenVersion          int      `json:"token_version"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// updatableColumns is the set of columns the enrichment applier may write.
var updatableColumns = map[string]struct{}{
	"franchise":               {},
	"character_name":          {},
	"lineage_family":          {},
	"faction_hints":           {},
	"scale_ratio_denominator": {},
	"height_mm":               {},
	"segmentation":            {},
	"internal_volume":         {},
	"support_state":           {},
	"part_pack_type":          {},
	"content_flag":            {},
	"residual_tokens":         {},
	"normalization_warnings":  {},
	"token_version":           {},
}

func marshalList(values []string) (string, error) {
	if len(values) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(data), nil
}

func unmarshalList(data string) ([]string, error) {
	if data == "" || data == "[]" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}
