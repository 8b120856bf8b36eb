package quiz

import (
	"sort"

	"github.com/google/uuid"
)

// Answer is one answered question: the question plus every option the
// respondent selected (exactly one unless the question is multi-select).
type Answer struct {
	QuestionID uuid.UUID
	Selected   []uuid.UUID
}

// ScoreTable maps a procedure key to its accumulated weight across all
// selected options.
type ScoreTable map[string]int

// Recommendation is one entry of the ranked output.
type Recommendation struct {
	Key   string `json:"key"`
	Score int    `json:"score"`
}

// Score sums per-procedure weights over every selected option. The points
// lookup returns the option's weight map, or false for option IDs that no
// longer resolve; those are skipped so scoring never fails on stale data.
// Pure function: no I/O, no side effects.
func Score(answers []Answer, points func(optionID uuid.UUID) (map[string]int, bool)) ScoreTable {
	table := ScoreTable{}
	for _, answer := range answers {
		for _, optionID := range answer.Selected {
			weights, ok := points(optionID)
			if !ok {
				continue
			}
			for key, weight := range weights {
				table[key] += weight
			}
		}
	}
	return table
}

// Rank orders the score table by descending score, keeping only entries with
// a positive score. Ties are broken by catalog display order; keys missing
// from the catalog sort after it, alphabetically, so the output is repeatable
// for identical input.
func Rank(table ScoreTable, catalogOrder []string) []Recommendation {
	orderIndex := make(map[string]int, len(catalogOrder))
	for i, key := range catalogOrder {
		orderIndex[key] = i
	}
	indexOf := func(key string) int {
		if i, ok := orderIndex[key]; ok {
			return i
		}
		return len(catalogOrder)
	}

	ranked := make([]Recommendation, 0, len(table))
	for key, score := range table {
		if score <= 0 {
			continue
		}
		ranked = append(ranked, Recommendation{Key: key, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		oi, oj := indexOf(ranked[i].Key), indexOf(ranked[j].Key)
		if oi != oj {
			return oi < oj
		}
		return ranked[i].Key < ranked[j].Key
	})
	return ranked
}
