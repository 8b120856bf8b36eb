package quiz_test

import (
	"reflect"
	"testing"

	"github.com/dentalogix/dentalogix-api/internal/quiz"
	"github.com/google/uuid"
)

func pointsLookup(table map[uuid.UUID]map[string]int) func(uuid.UUID) (map[string]int, bool) {
	return func(id uuid.UUID) (map[string]int, bool) {
		pm, ok := table[id]
		return pm, ok
	}
}

func TestScore(t *testing.T) {
	optA := uuid.New()
	optB := uuid.New()
	optC := uuid.New()

	t.Run("AccumulatesAcrossAnswers", func(t *testing.T) {
		lookup := pointsLookup(map[uuid.UUID]map[string]int{
			optA: {"whitening": 3, "veneers": 1},
			optB: {"whitening": 2},
			optC: {"invisalign": 4},
		})
		answers := []quiz.Answer{
			{QuestionID: uuid.New(), Selected: []uuid.UUID{optA}},
			{QuestionID: uuid.New(), Selected: []uuid.UUID{optB, optC}},
		}

		got := quiz.Score(answers, lookup)
		want := quiz.ScoreTable{"whitening": 5, "veneers": 1, "invisalign": 4}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Score() = %v, want %v", got, want)
		}
	})

	t.Run("SkipsUnresolvableOptions", func(t *testing.T) {
		lookup := pointsLookup(map[uuid.UUID]map[string]int{
			optA: {"whitening": 3},
		})
		answers := []quiz.Answer{
			{QuestionID: uuid.New(), Selected: []uuid.UUID{optA, uuid.New()}},
		}

		got := quiz.Score(answers, lookup)
		want := quiz.ScoreTable{"whitening": 3}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Score() = %v, want %v", got, want)
		}
	})

	t.Run("NoAnswers", func(t *testing.T) {
		got := quiz.Score(nil, pointsLookup(nil))
		if len(got) != 0 {
			t.Errorf("Score(nil) should be empty, got %v", got)
		}
	})
}

func TestRank(t *testing.T) {
	catalog := []string{"whitening", "invisalign", "veneers", "preventive"}

	t.Run("DescendingByScore", func(t *testing.T) {
		table := quiz.ScoreTable{"preventive": 2, "whitening": 7, "veneers": 5}
		got := quiz.Rank(table, catalog)
		want := []quiz.Recommendation{
			{Key: "whitening", Score: 7},
			{Key: "veneers", Score: 5},
			{Key: "preventive", Score: 2},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Rank() = %v, want %v", got, want)
		}
	})

	t.Run("DropsNonPositiveScores", func(t *testing.T) {
		table := quiz.ScoreTable{"whitening": 3, "veneers": 0, "invisalign": -2}
		got := quiz.Rank(table, catalog)
		want := []quiz.Recommendation{{Key: "whitening", Score: 3}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Rank() = %v, want %v", got, want)
		}
	})

	t.Run("TiesFollowCatalogOrder", func(t *testing.T) {
		table := quiz.ScoreTable{"veneers": 4, "invisalign": 4, "whitening": 4}
		got := quiz.Rank(table, catalog)
		want := []quiz.Recommendation{
			{Key: "whitening", Score: 4},
			{Key: "invisalign", Score: 4},
			{Key: "veneers", Score: 4},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Rank() = %v, want %v", got, want)
		}
	})

	t.Run("UnknownKeysSortAfterCatalog", func(t *testing.T) {
		table := quiz.ScoreTable{"zirconia": 4, "preventive": 4, "bridges": 4}
		got := quiz.Rank(table, catalog)
		want := []quiz.Recommendation{
			{Key: "preventive", Score: 4},
			{Key: "bridges", Score: 4},
			{Key: "zirconia", Score: 4},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Rank() = %v, want %v", got, want)
		}
	})

	t.Run("Repeatable", func(t *testing.T) {
		table := quiz.ScoreTable{"whitening": 2, "veneers": 2, "invisalign": 2, "preventive": 1}
		first := quiz.Rank(table, catalog)
		for i := 0; i < 20; i++ {
			if got := quiz.Rank(table, catalog); !reflect.DeepEqual(got, first) {
				t.Fatalf("Rank() not deterministic: %v vs %v", got, first)
			}
		}
	})

	t.Run("AllFilteredIsEmpty", func(t *testing.T) {
		got := quiz.Rank(quiz.ScoreTable{"whitening": 0}, catalog)
		if len(got) != 0 {
			t.Errorf("Rank() = %v, want empty", got)
		}
	})
}
