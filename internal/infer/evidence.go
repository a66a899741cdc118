package infer

import (
	"math"
	"regexp"
	"strings"

	"plinth/internal/vocab"
)

// weakFormPattern matches a single letter glued to one or two digits,
// e.g. "2b" or "9s".
var weakFormPattern = regexp.MustCompile(`^(?:[a-z]\d{1,2}|\d{1,2}[a-z])$`)

// isWeakForm reports whether a token is too slight to stand alone as
// character evidence: purely numeric, two characters or fewer, or a
// letter-digit compound.
func isWeakForm(token string) bool {
	if len(token) <= 2 {
		return true
	}
	if weakFormPattern.MatchString(token) {
		return true
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// scoreCandidates runs the holistic evidence pass: whole-segment phrase
// matches first, then bigrams, so the most specific phrase subsumes its
// constituents, then single tokens, then the bias rules.
func (e *Engine) scoreCandidates(ctx *pathContext) *Scorer {
	scorer := NewScorer()
	covered := make(map[string]struct{})
	cover := func(phrase string) {
		for _, word := range strings.Fields(phrase) {
			covered[word] = struct{}{}
		}
	}

	for _, component := range ctx.components {
		phrase := vocab.NormalizeAlias(component)
		if !strings.Contains(phrase, " ") {
			continue
		}
		if ch, ok := e.snap.Character(phrase); ok && ch.MultiWord {
			if points, accept := e.characterPoints(ctx, ch, phrase); accept {
				scorer.AddCharacterEvidence(ch.Franchise, ch.Name, ch.Alias, points)
				cover(phrase)
			}
			continue
		}
		if ref, ok := e.snap.FranchiseAlias(phrase); ok && ref.MultiWord {
			if points, accept := e.franchisePoints(ctx, ref); accept {
				scorer.AddFranchiseEvidence(ref.Key, ref.Alias, points)
				cover(phrase)
			}
		}
	}

	for _, bigram := range ctx.bigrams {
		if _, first := covered[bigram.First.Text]; first {
			if _, second := covered[bigram.Second.Text]; second {
				continue
			}
		}
		matched := false
		for _, form := range bigram.Forms() {
			if ch, ok := e.snap.Character(form); ok && ch.MultiWord {
				if points, accept := e.characterPoints(ctx, ch, form); accept {
					scorer.AddCharacterEvidence(ch.Franchise, ch.Name, ch.Alias, points)
					matched = true
				}
				break
			}
			if ref, ok := e.snap.FranchiseAlias(form); ok && ref.MultiWord {
				if points, accept := e.franchisePoints(ctx, ref); accept {
					scorer.AddFranchiseEvidence(ref.Key, ref.Alias, points)
					matched = true
				}
				break
			}
		}
		if matched {
			covered[bigram.First.Text] = struct{}{}
			covered[bigram.Second.Text] = struct{}{}
		}
	}

	for _, token := range ctx.tokens {
		if _, subsumed := covered[token.Text]; subsumed {
			continue
		}
		text := token.Text
		if ch, ok := e.snap.Character(text); ok {
			if points, accept := e.characterPoints(ctx, ch, text); accept {
				scorer.AddCharacterEvidence(ch.Franchise, ch.Name, ch.Alias, points)
			}
		}
		if ref, ok := e.snap.FranchiseAlias(text); ok {
			if points, accept := e.franchisePoints(ctx, ref); accept {
				scorer.AddFranchiseEvidence(ref.Key, ref.Alias, points)
			}
		}
	}

	e.applyBiases(ctx, scorer)
	return scorer
}

// characterPoints computes the evidence contribution of one character
// alias hit, or rejects it under the gating rules.
func (e *Engine) characterPoints(ctx *pathContext, ch vocab.Character, form string) (float64, bool) {
	strength := e.snap.StrengthFor(ch.Franchise, ch.Alias)
	if strength == vocab.StrengthStop {
		return 0, false
	}

	if isWeakForm(form) || isWeakForm(ch.Alias) {
		if ctx.tabletop {
			return 0, false
		}
		if !e.corroborated(ctx, ch.Franchise, ch.Alias) {
			return 0, false
		}
	}

	points := 4.0
	if ch.MultiWord {
		points += 3.0
	}
	points += math.Min(float64(len(ch.Alias)), 30) / 12.0
	if strength == vocab.StrengthStrong {
		points += 2.0
	}
	if e.snap.IsAmbiguous(ch.Alias) {
		if !e.corroborated(ctx, ch.Franchise, ch.Alias) {
			return 0, false
		}
		points -= 1.0
	}
	if e.snap.IsGenericNoun(ch.Alias) {
		points -= 1.0
	}
	if ctx.isSegment(ch.Alias) || ctx.isSegment(form) {
		points += 1.0
	}
	return points, true
}

// franchisePoints computes the contribution of one franchise alias hit.
// Stop/conflict aliases are skipped entirely.
func (e *Engine) franchisePoints(ctx *pathContext, ref vocab.FranchiseRef) (float64, bool) {
	strength := e.snap.StrengthFor(ref.Key, ref.Alias)
	if strength == vocab.StrengthStop {
		return 0, false
	}
	if e.snap.IsAmbiguous(ref.Alias) && !e.corroborated(ctx, ref.Key, ref.Alias) {
		return 0, false
	}

	points := 1.0
	switch strength {
	case vocab.StrengthStrong:
		points += 2.0
	case vocab.StrengthWeak:
		points += 0.5
	}
	if ref.MultiWord {
		points += 0.5
	}
	if e.snap.IsGenericNoun(ref.Alias) {
		points -= 1.0
	}
	if ctx.isSegment(ref.Alias) {
		points += 1.0
	}
	return points, true
}

// corroborated reports whether any token other than the alias itself (or
// its constituent words) is franchise-specific: a declared strong or weak
// signal, another alias of the franchise, or one of its characters.
func (e *Engine) corroborated(ctx *pathContext, franchise, selfAlias string) bool {
	selfWords := map[string]struct{}{selfAlias: {}}
	for _, word := range strings.Fields(selfAlias) {
		selfWords[word] = struct{}{}
	}

	for _, token := range ctx.tokens {
		text := token.Text
		if _, self := selfWords[text]; self {
			continue
		}
		switch e.snap.StrengthFor(franchise, text) {
		case vocab.StrengthStrong, vocab.StrengthWeak:
			return true
		}
		if ref, ok := e.snap.FranchiseAlias(text); ok && ref.Key == franchise && ref.Alias != selfAlias {
			return true
		}
		if ch, ok := e.snap.Character(text); ok && ch.Franchise == franchise && ch.Alias != selfAlias {
			return true
		}
	}
	return false
}

// applyBiases adjusts candidate scores for mount context and system
// consistency after all token evidence has accumulated.
func (e *Engine) applyBiases(ctx *pathContext, scorer *Scorer) {
	if ctx.mountContext {
		characters := scorer.Characters()
		scorer.BoostCharacter(func(character string) float64 {
			if strings.Contains(character, "_on_") {
				return 2.5
			}
			for _, other := range characters {
				if other != character && strings.HasPrefix(other, character+"_on_") {
					return -1.5
				}
			}
			return 0
		})
	}

	if ctx.systemHint != "" {
		scorer.BoostFranchise(func(franchise string) float64 {
			system := e.snap.FranchiseSystem(franchise)
			if system == "" {
				return 0
			}
			if system == ctx.systemHint {
				return 1.5
			}
			return -1.5
		})
	}
}
