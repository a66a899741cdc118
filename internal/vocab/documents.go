package vocab

// FranchiseDoc is the YAML shape of a curated franchise manifest.
type FranchiseDoc struct {
	Key        string         `yaml:"key"`
	System     string         `yaml:"system"`
	Aliases    []string       `yaml:"aliases"`
	Characters []CharacterDoc `yaml:"characters"`
	Signals    SignalsDoc     `yaml:"signals"`
}

// CharacterDoc declares one character: a canonical name plus surface aliases.
type CharacterDoc struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// SignalsDoc is the token-strength block of a franchise manifest.
type SignalsDoc struct {
	Strong []string `yaml:"strong"`
	Weak   []string `yaml:"weak"`
	Stop   []string `yaml:"stop"`
}

// DomainListDoc is the YAML shape of a generic alias-list document keyed by
// domain group. Flat domains (stopwords, mounts, ambiguous, generic_nouns,
// name_allow) use Words; keyed domains (designers, lineages, factions) use
// Entries.
type DomainListDoc struct {
	Domain  string           `yaml:"domain"`
	Words   []string         `yaml:"words"`
	Entries []DomainEntryDoc `yaml:"entries"`
}

// DomainEntryDoc declares one canonical key and its aliases. System and
// Lineage are meaningful for faction entries only.
type DomainEntryDoc struct {
	Key     string   `yaml:"key"`
	System  string   `yaml:"system"`
	Lineage string   `yaml:"lineage"`
	Aliases []string `yaml:"aliases"`
}
