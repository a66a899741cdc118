package infer

// scoreThreshold is the fixed aggregate a candidate must reach before the
// holistic stage assigns anything.
const scoreThreshold = 4.0

type candidateKey struct {
	franchise string
	character string
}

type candidate struct {
	key       candidateKey
	score     float64
	consulted map[string]struct{}
}

// Scorer accumulates per-candidate evidence. Character evidence keys on
// (franchise, character); franchise-only evidence keys on the franchise
// alone. Insertion order is tracked so selection stays deterministic.
type Scorer struct {
	candidates map[candidateKey]*candidate
	order      []candidateKey
}

func NewScorer() *Scorer {
	return &Scorer{candidates: make(map[candidateKey]*candidate)}
}

func (s *Scorer) candidateFor(key candidateKey) *candidate {
	if existing, ok := s.candidates[key]; ok {
		return existing
	}
	created := &candidate{key: key, consulted: make(map[string]struct{})}
	s.candidates[key] = created
	s.order = append(s.order, key)
	return created
}

// AddCharacterEvidence credits a character hit. Each alias is consulted at
// most once per candidate; a repeat contributes nothing and returns false.
func (s *Scorer) AddCharacterEvidence(franchise, character, alias string, points float64) bool {
	return s.add(candidateKey{franchise: franchise, character: character}, alias, points)
}

// AddFranchiseEvidence credits a franchise-level hit.
func (s *Scorer) AddFranchiseEvidence(franchise, alias string, points float64) bool {
	return s.add(candidateKey{franchise: franchise}, alias, points)
}

func (s *Scorer) add(key candidateKey, alias string, points float64) bool {
	c := s.candidateFor(key)
	if _, seen := c.consulted[alias]; seen {
		return false
	}
	c.consulted[alias] = struct{}{}
	c.score += points
	return true
}

// BoostCharacter applies a bias delta to every character-bearing candidate,
// as computed by the provided function.
func (s *Scorer) BoostCharacter(delta func(character string) float64) {
	for _, key := range s.order {
		if key.character == "" {
			continue
		}
		s.candidates[key].score += delta(key.character)
	}
}

// BoostFranchise applies a bias delta per candidate franchise, computed
// once per distinct franchise and applied to its franchise-level entry.
func (s *Scorer) BoostFranchise(delta func(franchise string) float64) {
	seen := make(map[string]struct{}, len(s.order))
	for _, key := range s.order {
		if _, done := seen[key.franchise]; done {
			continue
		}
		seen[key.franchise] = struct{}{}
		d := delta(key.franchise)
		if d != 0 {
			s.candidateFor(candidateKey{franchise: key.franchise}).score += d
		}
	}
}

// Characters returns the distinct character names seen, in insertion order.
func (s *Scorer) Characters() []string {
	var out []string
	for _, key := range s.order {
		if key.character != "" {
			out = append(out, key.character)
		}
	}
	return out
}

// Best holds the winning candidate of a scoring pass.
type Best struct {
	Franchise string
	Character string
	Score     float64
}

// Best returns the candidate franchise with the strictly highest aggregate
// score, provided it clears the threshold. A tie for first place means no
// winner. The franchise's character is its highest-scoring character
// candidate, remembering the first one found on an exact tie.
func (s *Scorer) Best(threshold float64) (Best, bool) {
	totals := make(map[string]float64)
	var franchises []string
	for _, key := range s.order {
		if _, ok := totals[key.franchise]; !ok {
			franchises = append(franchises, key.franchise)
		}
		totals[key.franchise] += s.candidates[key].score
	}

	var winner string
	bestScore := 0.0
	tied := false
	for _, franchise := range franchises {
		total := totals[franchise]
		switch {
		case winner == "" || total > bestScore:
			winner, bestScore, tied = franchise, total, false
		case total == bestScore:
			tied = true
		}
	}
	if winner == "" || tied || bestScore < threshold {
		return Best{}, false
	}

	character := ""
	characterScore := 0.0
	for _, key := range s.order {
		if key.franchise != winner || key.character == "" {
			continue
		}
		score := s.candidates[key].score
		if character == "" || score > characterScore {
			character, characterScore = key.character, score
		}
	}

	return Best{Franchise: winner, Character: character, Score: bestScore}, true
}
