package infer

import (
	"plinth/internal/classify"
	"plinth/internal/tokenize"
	"plinth/internal/vocab"
)

// collectScale scans components root to leaf; the deepest match wins,
// since leaf-level names are the most specific.
func (e *Engine) collectScale(ctx *pathContext, a *Assignment) {
	for _, component := range ctx.components {
		if denom, ok := tokenize.FindScaleRatio(component); ok {
			a.ScaleRatioDenominator = denom
		}
		if mm, ok := tokenize.FindScaleMM(component); ok {
			a.HeightMM = mm
		}
	}
}

// collectAxesAndFlags resolves variant-axis tokens and the content flag.
// The first token per axis wins; "nsfw" outranks "sfw" when both occur.
func (e *Engine) collectAxesAndFlags(ctx *pathContext, a *Assignment) {
	for _, token := range ctx.tokens {
		if axis, ok := e.snap.Axis(token.Text); ok {
			switch axis.Kind {
			case vocab.AxisSegmentation:
				if a.Segmentation == "" {
					a.Segmentation = axis.Value
				}
			case vocab.AxisInternalVolume:
				if a.InternalVolume == "" {
					a.InternalVolume = axis.Value
				}
			case vocab.AxisSupportState:
				if a.SupportState == "" {
					a.SupportState = axis.Value
				}
			case vocab.AxisPartPackType:
				if a.PartPackType == "" {
					a.PartPackType = axis.Value
				}
			}
		}
		if flag, ok := e.snap.ContentFlag(token.Text); ok {
			if a.ContentFlag == "" || flag == "nsfw" {
				a.ContentFlag = flag
			}
		}
	}
}

func (e *Engine) collectFactionHints(ctx *pathContext, a *Assignment) {
	for _, token := range ctx.tokens {
		if faction, ok := e.snap.Faction(token.Text); ok {
			a.addFactionHint(faction.Key)
		}
	}
}

// resolveLineage applies the depth bias: when lineage tokens occur at
// several depths, the one nearest the leaf wins. A generic species word
// contradicted by an unrelated faction in the same component is suppressed
// instead of guessed.
func (e *Engine) resolveLineage(ctx *pathContext, a *Assignment) {
	type lineageHit struct {
		token  string
		family string
		depth  int
	}
	var best *lineageHit
	for _, tagged := range ctx.tagged {
		if tagged.Domain != classify.DomainLineage {
			continue
		}
		family, ok := e.snap.Lineage(tagged.Text)
		if !ok {
			continue
		}
		if best == nil || tagged.Depth >= best.depth {
			best = &lineageHit{token: tagged.Text, family: family, depth: tagged.Depth}
		}
	}
	if best == nil {
		return
	}

	if e.snap.IsAmbiguous(best.token) || e.snap.IsGenericNoun(best.token) {
		for _, token := range ctx.tokens {
			if token.Depth != best.depth {
				continue
			}
			faction, ok := e.snap.Faction(token.Text)
			if !ok || faction.Lineage == "" {
				continue
			}
			if faction.Lineage != best.family {
				a.addWarning(WarnLineageAmbiguous)
				return
			}
		}
	}

	a.LineageFamily = best.family
}

// collectResiduals retains unclassifiable tokens for later human review.
func (e *Engine) collectResiduals(ctx *pathContext, a *Assignment) {
	for _, tagged := range ctx.tagged {
		if tagged.Domain != classify.DomainUnclassified {
			continue
		}
		text := tagged.Text
		if _, ok := e.snap.Character(text); ok {
			continue
		}
		if _, ok := e.snap.FranchiseAlias(text); ok {
			continue
		}
		if _, ok := e.snap.ContentFlag(text); ok {
			continue
		}
		if e.snap.IsTabletopHint(text) || e.snap.IsMount(text) || e.snap.IsPackaging(text) {
			continue
		}
		if text == "on" || text == "mounted" || text == "riding" {
			continue
		}
		a.addResidual(text)
	}
}
