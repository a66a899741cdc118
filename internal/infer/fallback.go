package infer

import (
	"strings"

	"plinth/internal/vocab"
)

// fallbackCharacterScan is the first fallback: a direct character-alias
// scan with the full strength/ambiguity/weak-form gating. Multi-word
// bigram forms are tried before single tokens because they are more
// specific. Returns the home franchise of an accepted character, for the
// conflict policy in the franchise scan.
func (e *Engine) fallbackCharacterScan(ctx *pathContext, a *Assignment) string {
	try := func(form string) (vocab.Character, bool) {
		ch, ok := e.snap.Character(form)
		if !ok {
			return vocab.Character{}, false
		}
		if e.snap.StrengthFor(ch.Franchise, ch.Alias) == vocab.StrengthStop {
			return vocab.Character{}, false
		}
		if isWeakForm(form) || isWeakForm(ch.Alias) {
			if ctx.tabletop {
				return vocab.Character{}, false
			}
			if !e.corroborated(ctx, ch.Franchise, ch.Alias) {
				return vocab.Character{}, false
			}
		}
		if e.snap.IsAmbiguous(ch.Alias) && !e.corroborated(ctx, ch.Franchise, ch.Alias) {
			return vocab.Character{}, false
		}
		return ch, true
	}

	for _, component := range ctx.components {
		phrase := vocab.NormalizeAlias(component)
		if !strings.Contains(phrase, " ") {
			continue
		}
		if ch, ok := try(phrase); ok && ch.MultiWord {
			return e.acceptCharacter(ctx, a, ch)
		}
	}
	for _, bigram := range ctx.bigrams {
		for _, form := range bigram.Forms() {
			if ch, ok := try(form); ok && ch.MultiWord {
				return e.acceptCharacter(ctx, a, ch)
			}
		}
	}
	for _, token := range ctx.tokens {
		if ch, ok := try(token.Text); ok {
			return e.acceptCharacter(ctx, a, ch)
		}
	}
	return ""
}

// acceptCharacter records a character hit. Only a strong alias may carry
// the franchise along; weak hits set the character alone with a warning.
func (e *Engine) acceptCharacter(ctx *pathContext, a *Assignment, ch vocab.Character) string {
	a.CharacterName = ch.Name

	strong := ch.MultiWord ||
		e.snap.StrengthFor(ch.Franchise, ch.Alias) == vocab.StrengthStrong ||
		ctx.isSegment(ch.Alias)
	if ctx.tabletop {
		a.addWarning(WarnTabletopNoFranchise)
		return ch.Franchise
	}
	if strong {
		a.Franchise = ch.Franchise
	} else {
		a.addWarning(WarnCharacterAliasWeak)
	}
	return ch.Franchise
}

// fallbackFranchiseScan is the second fallback: a direct franchise-alias
// scan requiring independent support. Strong matches set the franchise;
// weak matches are downgraded to a hint plus a warning, never a silent
// assignment. In tabletop context, the franchise field stays null and the
// alias is recorded as a hint only.
func (e *Engine) fallbackFranchiseScan(ctx *pathContext, a *Assignment, charFranchise string) {
	if a.Franchise != "" {
		return
	}

	for _, token := range ctx.tokens {
		ref, ok := e.snap.FranchiseAlias(token.Text)
		if !ok {
			continue
		}
		strength := e.snap.StrengthFor(ref.Key, ref.Alias)
		if strength == vocab.StrengthStop {
			continue
		}

		if ctx.tabletop {
			a.addFactionHint(ref.Key)
			a.addWarning(WarnTabletopNoFranchise)
			return
		}

		if !e.corroborated(ctx, ref.Key, ref.Alias) {
			continue
		}

		strong := strength == vocab.StrengthStrong || ref.MultiWord || ctx.isSegment(ref.Alias)
		if !strong {
			a.addFactionHint(ref.Key)
			a.addWarning(WarnFactionWithoutSystem)
			return
		}

		// Precedence policy: a strong character alias carries its own
		// franchise; when only a weak character hit exists, the strong
		// franchise alias wins and the disagreement is recorded.
		if charFranchise != "" && charFranchise != ref.Key {
			a.addWarning(WarnFranchiseConflict)
		}
		a.Franchise = ref.Key
		return
	}
}

// fallbackOriginalName is the strict last resort: infer an original
// character name from the deepest path component alone. It only runs when
// enabled, nothing else matched, and the path is not tabletop context.
func (e *Engine) fallbackOriginalName(ctx *pathContext, a *Assignment) {
	if !e.inferOriginalNames {
		return
	}
	if a.Franchise != "" || a.CharacterName != "" || ctx.tabletop {
		return
	}

	var words []string
	for _, token := range ctx.tokens {
		if token.Depth != ctx.maxDepth {
			continue
		}
		text := token.Text
		if e.snap.IsStopword(text) {
			continue
		}
		if _, ok := e.snap.Axis(text); ok {
			continue
		}
		if _, ok := e.snap.ContentFlag(text); ok {
			continue
		}
		if !isAlphaWord(text) {
			return
		}
		if len(text) < 3 || len(text) > 20 {
			return
		}
		if e.blockedAsName(text) {
			return
		}
		words = append(words, text)
		if len(words) > 2 {
			return
		}
	}
	if len(words) == 0 {
		return
	}

	for _, word := range words {
		if !e.nameLikely(word) {
			return
		}
	}

	a.CharacterName = strings.Join(words, "_")
	a.addWarning(WarnOriginalCharacterInferred)
}

// blockedAsName filters packaging, provider, generic-noun, and month
// terms, plus anything the vocabulary already claims for a known domain.
func (e *Engine) blockedAsName(word string) bool {
	if e.snap.IsPackaging(word) || e.snap.IsGenericNoun(word) || e.snap.IsMonth(word) {
		return true
	}
	if e.snap.IsTabletopHint(word) || e.snap.IsMount(word) {
		return true
	}
	if _, ok := e.snap.Designer(word); ok {
		return true
	}
	if _, ok := e.snap.Lineage(word); ok {
		return true
	}
	if _, ok := e.snap.Faction(word); ok {
		return true
	}
	if _, ok := e.snap.Character(word); ok {
		return true
	}
	if _, ok := e.snap.FranchiseAlias(word); ok {
		return true
	}
	return false
}

func isAlphaWord(value string) bool {
	for _, r := range value {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return value != ""
}
