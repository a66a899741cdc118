package infer

import (
	"log/slog"

	"plinth/internal/classify"
	"plinth/internal/logging"
	"plinth/internal/tokenize"
	"plinth/internal/vocab"
)

// Engine performs vocabulary-driven inference over path strings. It holds
// no mutable state between calls; a single Engine is safe for concurrent
// use as long as the snapshot is, which it always is.
type Engine struct {
	snap               *vocab.Snapshot
	logger             *slog.Logger
	freq               *WordFreq
	inferOriginalNames bool
}

// Option customizes an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for scoring diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithWordFreq supplies an optional word-frequency corpus strengthening
// the original-name heuristic.
func WithWordFreq(freq *WordFreq) Option {
	return func(e *Engine) { e.freq = freq }
}

// WithOriginalNameInference enables the strict original-character fallback.
func WithOriginalNameInference(enabled bool) Option {
	return func(e *Engine) { e.inferOriginalNames = enabled }
}

// New builds an engine over an immutable vocabulary snapshot.
func New(snap *vocab.Snapshot, opts ...Option) *Engine {
	if snap == nil {
		snap = vocab.Empty()
	}
	e := &Engine{
		snap:   snap,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// pathContext is the per-call working state derived from one path.
type pathContext struct {
	components []string // normalized hierarchy components, root first
	segments   map[string]struct{}
	tokens     []tokenize.Token
	tagged     []classify.Tagged
	bigrams    []tokenize.Bigram
	tokenSet   map[string]struct{}
	maxDepth   int

	tabletopHint  bool
	aliasEvidence bool
	tabletop      bool
	mountContext  bool
	systemHint    string
}

// Infer computes an assignment for the path. Empty input yields an empty
// assignment, never an error.
func (e *Engine) Infer(path string) Assignment {
	var a Assignment

	components := tokenize.SplitPath(path)
	if len(components) == 0 {
		return a
	}

	ctx := e.newContext(components)
	if len(ctx.tokens) == 0 {
		return a
	}

	e.collectScale(ctx, &a)
	e.collectAxesAndFlags(ctx, &a)
	e.collectFactionHints(ctx, &a)

	e.resolveIdentity(ctx, &a)
	e.resolveLineage(ctx, &a)
	e.collectResiduals(ctx, &a)

	e.logger.Debug("inference complete",
		logging.String("path", path),
		logging.String("franchise", a.Franchise),
		logging.String("character", a.CharacterName),
		logging.Int("warnings", len(a.Warnings)),
		logging.Bool("tabletop", ctx.tabletop))

	return a
}

// resolveIdentity runs the holistic scorer and, when it yields no
// confident result, the fallback chain.
func (e *Engine) resolveIdentity(ctx *pathContext, a *Assignment) {
	scorer := e.scoreCandidates(ctx)

	if best, ok := scorer.Best(scoreThreshold); ok {
		if ctx.tabletop {
			// Generic hobby context: a franchise claim here is almost
			// always vocabulary noise.
			a.addWarning(WarnTabletopNoFranchise)
			return
		}
		a.Franchise = best.Franchise
		a.CharacterName = best.Character
		e.logger.Debug("holistic scorer accepted candidate",
			logging.String("franchise", best.Franchise),
			logging.String("character", best.Character),
			logging.Float64("score", best.Score))
		return
	}

	charFranchise := e.fallbackCharacterScan(ctx, a)
	e.fallbackFranchiseScan(ctx, a, charFranchise)
	e.fallbackOriginalName(ctx, a)
}

// newContext tokenizes, expands, classifies, and derives the gate state.
func (e *Engine) newContext(components []string) *pathContext {
	ctx := &pathContext{
		segments: make(map[string]struct{}, len(components)),
		tokenSet: make(map[string]struct{}),
		maxDepth: len(components) - 1,
	}

	for depth, component := range components {
		normalized := tokenize.NormalizeComponent(component)
		ctx.components = append(ctx.components, normalized)
		ctx.segments[vocab.NormalizeAlias(normalized)] = struct{}{}

		seen := make(map[string]struct{})
		var componentTokens []tokenize.Token
		appendToken := func(text string) {
			if _, dup := seen[text]; dup {
				return
			}
			seen[text] = struct{}{}
			componentTokens = append(componentTokens, tokenize.Token{Text: text, Depth: depth})
		}

		for _, token := range tokenize.ComponentTokens(component, depth) {
			appendToken(token.Text)
			for _, piece := range tokenize.SplitCaseDigit(token.Text) {
				if piece != token.Text {
					appendToken(piece)
				}
			}
			if parts, ok := tokenize.SegmentGlued(token.Text, e.snap.HasWord); ok {
				for _, part := range parts {
					appendToken(part)
				}
			}
		}
		// camel-case boundaries only exist before normalization
		for _, raw := range tokenize.RawFields(component) {
			for _, piece := range tokenize.SplitCaseDigit(raw) {
				if len(piece) >= 2 {
					appendToken(piece)
				}
			}
		}

		ctx.tokens = append(ctx.tokens, componentTokens...)
	}

	for _, token := range ctx.tokens {
		ctx.tokenSet[token.Text] = struct{}{}
	}
	ctx.tagged = classify.Tag(ctx.tokens, e.snap)
	ctx.bigrams = tokenize.Bigrams(ctx.tokens, e.snap.IsStopword)

	e.deriveGates(ctx)
	return ctx
}

// deriveGates computes the tabletop gate, mount context, and system hint.
func (e *Engine) deriveGates(ctx *pathContext) {
	for _, token := range ctx.tokens {
		if e.snap.IsTabletopHint(token.Text) {
			ctx.tabletopHint = true
			break
		}
	}
	ctx.aliasEvidence = e.hasAliasEvidence(ctx)
	ctx.tabletop = ctx.tabletopHint && !ctx.aliasEvidence

	ctx.mountContext = e.detectMountContext(ctx)

	for _, token := range ctx.tokens {
		if faction, ok := e.snap.Faction(token.Text); ok && faction.System != "" {
			ctx.systemHint = faction.System
			break
		}
	}
}

// hasAliasEvidence reports whether any token or bigram resolves to a
// franchise or character alias confident enough to defeat the tabletop
// gate. Ambiguous aliases, weak-form tokens, and aliases declared merely
// weak for their franchise do not count.
func (e *Engine) hasAliasEvidence(ctx *pathContext) bool {
	check := func(text string) bool {
		if isWeakForm(text) {
			return false
		}
		if ch, ok := e.snap.Character(text); ok {
			if !e.snap.IsAmbiguous(ch.Alias) {
				return true
			}
		}
		if ref, ok := e.snap.FranchiseAlias(text); ok {
			strength := e.snap.StrengthFor(ref.Key, ref.Alias)
			if strength != vocab.StrengthWeak && strength != vocab.StrengthStop &&
				!e.snap.IsAmbiguous(ref.Alias) && !e.snap.IsGenericNoun(ref.Alias) {
				return true
			}
		}
		return false
	}

	for _, token := range ctx.tokens {
		if check(token.Text) {
			return true
		}
	}
	for _, bigram := range ctx.bigrams {
		for _, form := range bigram.Forms() {
			if check(form) {
				return true
			}
		}
	}
	return false
}

// detectMountContext looks for a "<subject> on <mount>" phrase: an
// "on"/"mounted" keyword followed by a known mount creature in the same
// component.
func (e *Engine) detectMountContext(ctx *pathContext) bool {
	keywordDepth := -1
	keywordIndex := -1
	for i, token := range ctx.tokens {
		if token.Text == "on" || token.Text == "mounted" || token.Text == "riding" {
			keywordDepth = token.Depth
			keywordIndex = i
			continue
		}
		if keywordIndex >= 0 && token.Depth == keywordDepth && e.snap.IsMount(token.Text) {
			return true
		}
	}
	return false
}

// isSegment reports whether text exactly matches a whole path segment.
func (ctx *pathContext) isSegment(text string) bool {
	_, ok := ctx.segments[vocab.NormalizeAlias(text)]
	return ok
}
