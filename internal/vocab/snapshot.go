package vocab

import "strings"

// Strength is the vocabulary-declared tier of a token relative to a
// franchise.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthStrong
	// StrengthStop marks an alias explicitly excluded from contributing
	// evidence for the franchise.
	StrengthStop
)

// AxisKind identifies a variant axis a token can set on a record.
type AxisKind int

const (
	AxisSegmentation AxisKind = iota
	AxisInternalVolume
	AxisSupportState
	AxisPartPackType
)

// Axis is a variant-axis value carried by a token, e.g. "presupported"
// sets the support-state axis to "supported".
type Axis struct {
	Kind  AxisKind
	Value string
}

// Character resolves a surface alias to a canonical character.
type Character struct {
	Name      string // canonical key, e.g. "poison_ivy"
	Franchise string
	Alias     string // normalized spaced form of the matched alias
	MultiWord bool
}

// Faction resolves a surface alias to a canonical faction hint.
type Faction struct {
	Key     string
	System  string
	Lineage string
}

// Profile is the per-franchise token-strength profile used only for
// scoring bias and exclusion, never identity.
type Profile struct {
	Key    string
	System string
	Strong map[string]struct{}
	Weak   map[string]struct{}
	Stop   map[string]struct{}
}

// Snapshot is the immutable vocabulary index built once per run. All maps
// are populated at build time and never mutated afterward.
type Snapshot struct {
	stopwords        map[string]struct{}
	designers        map[string]string
	lineages         map[string]string
	factions         map[string]Faction
	franchiseAliases map[string]FranchiseRef
	characters       map[string]Character
	profiles         map[string]Profile
	axes             map[string]Axis
	contentFlags     map[string]string
	ambiguous        map[string]struct{}
	tabletopHints    map[string]struct{}
	mounts           map[string]struct{}
	genericNouns     map[string]struct{}
	months           map[string]struct{}
	packaging        map[string]struct{}
	nameAllow        map[string]struct{}
	words            map[string]struct{}
}

// FranchiseRef resolves a surface alias to a franchise key.
type FranchiseRef struct {
	Key       string
	Alias     string // normalized spaced form of the matched alias
	MultiWord bool
}

// NormalizeAlias lowercases an alias and collapses separators to single
// spaces, producing the canonical spaced form.
func NormalizeAlias(alias string) string {
	lowered := strings.ToLower(strings.TrimSpace(alias))
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '\t'
	})
	return strings.Join(fields, " ")
}

// aliasForms returns every lookup form under which an alias is registered.
// Multi-word aliases are reachable spaced, underscored, and concatenated so
// bigram-reconstructed tokens resolve too.
func aliasForms(normalized string) []string {
	if !strings.Contains(normalized, " ") {
		return []string{normalized}
	}
	return []string{
		normalized,
		strings.ReplaceAll(normalized, " ", "_"),
		strings.ReplaceAll(normalized, " ", ""),
	}
}

// IsStopword reports whether the token is vocabulary-declared noise.
func (s *Snapshot) IsStopword(token string) bool { return setHas(s.stopwords, token) }

// IsTabletopHint reports whether the token belongs to the fixed
// miniature/terrain hint vocabulary.
func (s *Snapshot) IsTabletopHint(token string) bool { return setHas(s.tabletopHints, token) }

// IsAmbiguous reports whether the alias is on the overly-generic list and
// needs corroboration before it may contribute evidence.
func (s *Snapshot) IsAmbiguous(alias string) bool { return setHas(s.ambiguous, alias) }

// IsMount reports whether the token names a known mount creature.
func (s *Snapshot) IsMount(token string) bool { return setHas(s.mounts, token) }

// IsGenericNoun reports whether the token is a generic single-noun term.
func (s *Snapshot) IsGenericNoun(token string) bool { return setHas(s.genericNouns, token) }

// IsMonth reports whether the token is a month name or abbreviation.
func (s *Snapshot) IsMonth(token string) bool { return setHas(s.months, token) }

// IsPackaging reports whether the token is packaging or provider noise.
func (s *Snapshot) IsPackaging(token string) bool { return setHas(s.packaging, token) }

// IsAllowedName reports whether the token is on the original-name
// allow-list, overriding the fantasy-name heuristic.
func (s *Snapshot) IsAllowedName(token string) bool { return setHas(s.nameAllow, token) }

// HasWord reports whether the word occurs anywhere in the combined
// vocabulary; used by glued-token segmentation.
func (s *Snapshot) HasWord(word string) bool { return setHas(s.words, word) }

// Designer resolves a designer/artist alias.
func (s *Snapshot) Designer(token string) (string, bool) {
	v, ok := s.designers[token]
	return v, ok
}

// Lineage resolves a lineage/species-family alias.
func (s *Snapshot) Lineage(token string) (string, bool) {
	v, ok := s.lineages[token]
	return v, ok
}

// Faction resolves a tabletop faction/unit alias.
func (s *Snapshot) Faction(token string) (Faction, bool) {
	v, ok := s.factions[token]
	return v, ok
}

// Axis resolves a variant-axis token.
func (s *Snapshot) Axis(token string) (Axis, bool) {
	v, ok := s.axes[token]
	return v, ok
}

// ContentFlag resolves a content-rating token to its canonical flag.
func (s *Snapshot) ContentFlag(token string) (string, bool) {
	v, ok := s.contentFlags[token]
	return v, ok
}

// Character resolves a character alias. Alias-to-canonical is many-to-one;
// the most recently loaded mapping wins at build time.
func (s *Snapshot) Character(alias string) (Character, bool) {
	v, ok := s.characters[alias]
	return v, ok
}

// FranchiseAlias resolves a franchise alias to its key. Like character
// aliases, the most recently loaded mapping wins.
func (s *Snapshot) FranchiseAlias(alias string) (FranchiseRef, bool) {
	v, ok := s.franchiseAliases[alias]
	return v, ok
}

// Profile returns the token-strength profile for a franchise key.
func (s *Snapshot) Profile(franchise string) (Profile, bool) {
	v, ok := s.profiles[franchise]
	return v, ok
}

// StrengthFor reports the declared tier of a token for a franchise.
func (s *Snapshot) StrengthFor(franchise, token string) Strength {
	profile, ok := s.profiles[franchise]
	if !ok {
		return StrengthNone
	}
	if _, ok := profile.Stop[token]; ok {
		return StrengthStop
	}
	if _, ok := profile.Strong[token]; ok {
		return StrengthStrong
	}
	if _, ok := profile.Weak[token]; ok {
		return StrengthWeak
	}
	return StrengthNone
}

// FranchiseSystem returns the game-system label of a franchise, if any.
func (s *Snapshot) FranchiseSystem(franchise string) string {
	if profile, ok := s.profiles[franchise]; ok {
		return profile.System
	}
	return ""
}

// Counts summarizes the snapshot for diagnostics.
type Counts struct {
	Franchises       int
	CharacterAliases int
	FranchiseAliases int
	Designers        int
	Lineages         int
	Factions         int
	Stopwords        int
	Words            int
}

// Counts returns per-domain sizes.
func (s *Snapshot) Counts() Counts {
	return Counts{
		Franchises:       len(s.profiles),
		CharacterAliases: len(s.characters),
		FranchiseAliases: len(s.franchiseAliases),
		Designers:        len(s.designers),
		Lineages:         len(s.lineages),
		Factions:         len(s.factions),
		Stopwords:        len(s.stopwords),
		Words:            len(s.words),
	}
}

func setHas(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
