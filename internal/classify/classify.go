// Package classify tags tokens with exactly one vocabulary domain.
package classify

import (
	"plinth/internal/tokenize"
	"plinth/internal/vocab"
)

// Domain is the closed set of tags a token can carry.
type Domain int

const (
	DomainUnclassified Domain = iota
	DomainStopword
	DomainDesigner
	DomainLineage
	DomainFactionHint
	DomainVariantAxis
	DomainScaleRatio
	DomainScaleMM
)

var domainNames = map[Domain]string{
	DomainUnclassified: "unclassified",
	DomainStopword:     "stopword",
	DomainDesigner:     "designer",
	DomainLineage:      "lineage",
	DomainFactionHint:  "faction_hint",
	DomainVariantAxis:  "variant_axis",
	DomainScaleRatio:   "scale_ratio",
	DomainScaleMM:      "scale_mm",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return "unclassified"
}

// Classify assigns the token exactly one domain by fixed priority:
// stopword > designer > lineage > faction hint > variant axis >
// scale ratio > scale mm > unclassified. Lookups are exact-match only.
func Classify(token string, snap *vocab.Snapshot) Domain {
	switch {
	case snap.IsStopword(token):
		return DomainStopword
	case lookupOK(snap.Designer, token):
		return DomainDesigner
	case lookupOK(snap.Lineage, token):
		return DomainLineage
	case factionOK(snap, token):
		return DomainFactionHint
	case axisOK(snap, token):
		return DomainVariantAxis
	case ratioOK(token):
		return DomainScaleRatio
	case mmOK(token):
		return DomainScaleMM
	default:
		return DomainUnclassified
	}
}

// Tagged pairs a token with its domain.
type Tagged struct {
	tokenize.Token
	Domain Domain
}

// Tag classifies every token in order.
func Tag(tokens []tokenize.Token, snap *vocab.Snapshot) []Tagged {
	tagged := make([]Tagged, 0, len(tokens))
	for _, token := range tokens {
		tagged = append(tagged, Tagged{Token: token, Domain: Classify(token.Text, snap)})
	}
	return tagged
}

func lookupOK(lookup func(string) (string, bool), token string) bool {
	_, ok := lookup(token)
	return ok
}

func factionOK(snap *vocab.Snapshot, token string) bool {
	_, ok := snap.Faction(token)
	return ok
}

func axisOK(snap *vocab.Snapshot, token string) bool {
	_, ok := snap.Axis(token)
	return ok
}

func ratioOK(token string) bool {
	_, ok := tokenize.ParseScaleRatio(token)
	return ok
}

func mmOK(token string) bool {
	_, ok := tokenize.ParseScaleMM(token)
	return ok
}
