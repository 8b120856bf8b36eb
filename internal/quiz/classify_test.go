package quiz_test

import (
	"testing"

	"github.com/dentalogix/dentalogix-api/internal/quiz"
)

func categoryLookup(categories map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		c, ok := categories[key]
		return c, ok
	}
}

func TestClassify(t *testing.T) {
	categories := map[string]string{
		"whitening":  "cosmetic",
		"invisalign": "orthodontic",
		"implants":   "restorative",
		"preventive": "preventive",
		"sedation":   "comfort",
	}

	cases := []struct {
		name     string
		topKey   string
		wantCode string
		wantName string
	}{
		{"Cosmetic", "whitening", "glow_seeker", "The Glow Seeker"},
		{"Orthodontic", "invisalign", "alignment_achiever", "The Alignment Achiever"},
		{"Restorative", "implants", "comeback_smile", "The Comeback Smile"},
		{"Preventive", "preventive", "healthy_maintainer", "The Healthy Maintainer"},
		{"Comfort", "sedation", "comfort_first", "The Comfort-First Smile"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := []quiz.Recommendation{{Key: tc.topKey, Score: 5}}
			got := quiz.Classify(ranked, categoryLookup(categories))
			if got.Code != tc.wantCode || got.Name != tc.wantName {
				t.Errorf("Classify() = %+v, want {%s %s}", got, tc.wantCode, tc.wantName)
			}
		})
	}

	t.Run("EmptyRankingDefaults", func(t *testing.T) {
		got := quiz.Classify(nil, categoryLookup(categories))
		if got.Code != "healthy_maintainer" {
			t.Errorf("Classify(empty) = %+v, want healthy_maintainer", got)
		}
	})

	t.Run("UnknownKeyDefaults", func(t *testing.T) {
		ranked := []quiz.Recommendation{{Key: "retired-procedure", Score: 9}}
		got := quiz.Classify(ranked, categoryLookup(categories))
		if got.Code != "healthy_maintainer" {
			t.Errorf("Classify(unknown key) = %+v, want healthy_maintainer", got)
		}
	})

	t.Run("UnknownCategoryDefaults", func(t *testing.T) {
		ranked := []quiz.Recommendation{{Key: "whitening", Score: 9}}
		got := quiz.Classify(ranked, categoryLookup(map[string]string{"whitening": "experimental"}))
		if got.Code != "healthy_maintainer" {
			t.Errorf("Classify(unknown category) = %+v, want healthy_maintainer", got)
		}
	})

	t.Run("UsesTopEntryOnly", func(t *testing.T) {
		ranked := []quiz.Recommendation{
			{Key: "invisalign", Score: 6},
			{Key: "whitening", Score: 5},
		}
		got := quiz.Classify(ranked, categoryLookup(categories))
		if got.Code != "alignment_achiever" {
			t.Errorf("Classify() = %+v, want alignment_achiever", got)
		}
	})
}
