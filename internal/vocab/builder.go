package vocab

import (
	"errors"
	"fmt"
	"strings"
)

// Builder accumulates vocabulary documents and produces an immutable
// Snapshot. Later additions win on duplicate aliases.
type Builder struct {
	snap *Snapshot
}

// NewBuilder returns a builder pre-seeded with the fixed built-in
// vocabularies (tabletop hints, variant axes, content flags, stopwords,
// blocklists). Curated documents layer on top.
func NewBuilder() *Builder {
	b := &Builder{snap: emptySnapshot()}
	seedDefaults(b.snap)
	return b
}

// errSkipEntry marks an individually malformed entry; callers log and move on.
var errSkipEntry = errors.New("vocabulary entry skipped")

// AddFranchise registers a franchise manifest.
func (b *Builder) AddFranchise(doc FranchiseDoc) error {
	key := NormalizeAlias(doc.Key)
	if key == "" {
		return fmt.Errorf("%w: franchise manifest missing key", errSkipEntry)
	}
	key = strings.ReplaceAll(key, " ", "_")

	profile := Profile{
		Key:    key,
		System: NormalizeAlias(doc.System),
		Strong: make(map[string]struct{}, len(doc.Signals.Strong)),
		Weak:   make(map[string]struct{}, len(doc.Signals.Weak)),
		Stop:   make(map[string]struct{}, len(doc.Signals.Stop)),
	}
	for _, signal := range doc.Signals.Strong {
		addNormalized(profile.Strong, signal)
	}
	for _, signal := range doc.Signals.Weak {
		addNormalized(profile.Weak, signal)
	}
	for _, signal := range doc.Signals.Stop {
		addNormalized(profile.Stop, signal)
	}
	b.snap.profiles[key] = profile

	b.registerFranchiseAlias(key, doc.Key)
	for _, alias := range doc.Aliases {
		b.registerFranchiseAlias(key, alias)
	}
	for _, signal := range doc.Signals.Strong {
		b.addWords(signal)
	}

	var firstErr error
	for _, character := range doc.Characters {
		if err := b.addCharacter(key, character); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (b *Builder) addCharacter(franchise string, doc CharacterDoc) error {
	name := NormalizeAlias(doc.Name)
	if name == "" {
		return fmt.Errorf("%w: character in %q missing name", errSkipEntry, franchise)
	}
	name = strings.ReplaceAll(name, " ", "_")

	b.registerCharacterAlias(franchise, name, doc.Name)
	for _, alias := range doc.Aliases {
		b.registerCharacterAlias(franchise, name, alias)
	}
	return nil
}

func (b *Builder) registerCharacterAlias(franchise, name, alias string) {
	normalized := NormalizeAlias(alias)
	if normalized == "" {
		return
	}
	ref := Character{
		Name:      name,
		Franchise: franchise,
		Alias:     normalized,
		MultiWord: strings.Contains(normalized, " "),
	}
	for _, form := range aliasForms(normalized) {
		b.snap.characters[form] = ref
	}
	b.addWords(normalized)
}

func (b *Builder) registerFranchiseAlias(key, alias string) {
	normalized := NormalizeAlias(alias)
	if normalized == "" {
		return
	}
	ref := FranchiseRef{
		Key:       key,
		Alias:     normalized,
		MultiWord: strings.Contains(normalized, " "),
	}
	for _, form := range aliasForms(normalized) {
		b.snap.franchiseAliases[form] = ref
	}
	b.addWords(normalized)
}

// AddDomainList registers a generic alias-list document.
func (b *Builder) AddDomainList(doc DomainListDoc) error {
	domain := strings.ToLower(strings.TrimSpace(doc.Domain))
	switch domain {
	case "stopwords":
		b.addFlat(b.snap.stopwords, doc.Words)
	case "mounts":
		b.addFlat(b.snap.mounts, doc.Words)
	case "ambiguous":
		b.addFlat(b.snap.ambiguous, doc.Words)
	case "generic_nouns":
		b.addFlat(b.snap.genericNouns, doc.Words)
	case "packaging":
		b.addFlat(b.snap.packaging, doc.Words)
	case "name_allow":
		b.addFlat(b.snap.nameAllow, doc.Words)
	case "designers":
		return b.addKeyed(doc, func(key string, entry DomainEntryDoc, form string) {
			b.snap.designers[form] = key
		})
	case "lineages":
		return b.addKeyed(doc, func(key string, entry DomainEntryDoc, form string) {
			b.snap.lineages[form] = key
		})
	case "factions":
		return b.addKeyed(doc, func(key string, entry DomainEntryDoc, form string) {
			b.snap.factions[form] = Faction{
				Key:     key,
				System:  NormalizeAlias(entry.System),
				Lineage: NormalizeAlias(entry.Lineage),
			}
		})
	case "":
		return fmt.Errorf("%w: alias list missing domain", errSkipEntry)
	default:
		return fmt.Errorf("%w: unknown domain group %q", errSkipEntry, doc.Domain)
	}
	return nil
}

func (b *Builder) addKeyed(doc DomainListDoc, register func(key string, entry DomainEntryDoc, form string)) error {
	var firstErr error
	for _, entry := range doc.Entries {
		key := NormalizeAlias(entry.Key)
		if key == "" {
			if firstErr == nil {
				firstErr = fmt.Errorf("%w: %s entry missing key", errSkipEntry, doc.Domain)
			}
			continue
		}
		key = strings.ReplaceAll(key, " ", "_")
		aliases := append([]string{entry.Key}, entry.Aliases...)
		for _, alias := range aliases {
			normalized := NormalizeAlias(alias)
			if normalized == "" {
				continue
			}
			for _, form := range aliasForms(normalized) {
				register(key, entry, form)
			}
			b.addWords(normalized)
		}
	}
	return firstErr
}

func (b *Builder) addFlat(set map[string]struct{}, words []string) {
	for _, word := range words {
		addNormalized(set, word)
	}
}

// addWords indexes the individual words of an alias for glued-token
// segmentation.
func (b *Builder) addWords(normalized string) {
	for _, word := range strings.Fields(NormalizeAlias(normalized)) {
		if len(word) >= 2 {
			b.snap.words[word] = struct{}{}
		}
	}
}

func addNormalized(set map[string]struct{}, value string) {
	normalized := NormalizeAlias(value)
	if normalized == "" {
		return
	}
	set[normalized] = struct{}{}
}

// Build finalizes and returns the snapshot. The builder must not be reused.
func (b *Builder) Build() *Snapshot {
	snap := b.snap
	b.snap = nil
	return snap
}

// SkippedEntry reports whether an error marks a skippable entry rather
// than a fatal condition.
func SkippedEntry(err error) bool {
	return errors.Is(err, errSkipEntry)
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		stopwords:        make(map[string]struct{}),
		designers:        make(map[string]string),
		lineages:         make(map[string]string),
		factions:         make(map[string]Faction),
		franchiseAliases: make(map[string]FranchiseRef),
		characters:       make(map[string]Character),
		profiles:         make(map[string]Profile),
		axes:             make(map[string]Axis),
		contentFlags:     make(map[string]string),
		ambiguous:        make(map[string]struct{}),
		tabletopHints:    make(map[string]struct{}),
		mounts:           make(map[string]struct{}),
		genericNouns:     make(map[string]struct{}),
		months:           make(map[string]struct{}),
		packaging:        make(map[string]struct{}),
		nameAllow:        make(map[string]struct{}),
		words:            make(map[string]struct{}),
	}
}

// Empty returns a snapshot with the built-in defaults only. Scoring must
// tolerate it without failing.
func Empty() *Snapshot {
	return NewBuilder().Build()
}
