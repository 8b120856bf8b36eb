package quiz

import (
	"math"
	"sort"
	"time"

	util "github.com/dentalogix/dentalogix-api/internal/utils"
)

type CountEntry struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalSubmissions     int          `json:"total_submissions"`
	SubmissionsWithEmail int          `json:"submissions_with_email"`
	SubmissionsToday     int          `json:"submissions_today"`
	SubmissionsThisWeek  int          `json:"submissions_this_week"`
	ConversionRate       int          `json:"conversion_rate"`
	TopInterests         []CountEntry `json:"top_interests"`
	TimelineBreakdown    []CountEntry `json:"timeline_breakdown"`
	SmileTypes           []CountEntry `json:"smile_types"`
}

const topInterestLimit = 5

// Aggregate computes summary statistics over the full submission set. Pure
// read-side computation; an empty set yields all zeros and empty
// distributions. Conversion rate is emailed/total rounded to the nearest
// integer percent, 0 when total is 0.
func Aggregate(subs []Submission, now time.Time) Stats {
	stats := Stats{
		TopInterests:      []CountEntry{},
		TimelineBreakdown: []CountEntry{},
		SmileTypes:        []CountEntry{},
	}

	dayStart := util.StartOfDay(now)
	weekStart := now.AddDate(0, 0, -7)

	interests := map[string]int{}
	timelines := map[string]int{}
	smiles := map[string]int{}

	for _, sub := range subs {
		stats.TotalSubmissions++
		if sub.Email != "" {
			stats.SubmissionsWithEmail++
		}
		if !sub.CompletedAt.Before(dayStart) {
			stats.SubmissionsToday++
		}
		if !sub.CompletedAt.Before(weekStart) {
			stats.SubmissionsThisWeek++
		}

		// Grouping is on the literal stored string; multi-values stay joined.
		if sub.PrimaryInterest != "" {
			interests[sub.PrimaryInterest]++
		}
		if sub.Timeline != "" {
			timelines[sub.Timeline]++
		}
		if sub.SmileTypeName != "" {
			smiles[sub.SmileTypeName]++
		}
	}

	if stats.TotalSubmissions > 0 {
		rate := float64(stats.SubmissionsWithEmail) / float64(stats.TotalSubmissions) * 100
		stats.ConversionRate = int(math.Round(rate))
	}

	stats.TopInterests = topEntries(interests, topInterestLimit)
	stats.TimelineBreakdown = topEntries(timelines, 0)
	stats.SmileTypes = topEntries(smiles, 0)
	return stats
}

// topEntries sorts a frequency map by count descending, value ascending for
// determinism, truncated to limit when limit > 0.
func topEntries(freq map[string]int, limit int) []CountEntry {
	entries := make([]CountEntry, 0, len(freq))
	for value, count := range freq {
		entries = append(entries, CountEntry{Value: value, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
