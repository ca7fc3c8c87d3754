package candidate

import (
	"sort"
	"strings"
)

const topSkillsLimit = 5

// Stats is the derived summary over one loaded candidate collection. It is
// recomputed from scratch on every fetch and never patched incrementally.
type Stats struct {
	Total        int
	AvgYearsExp  int
	TopSkills    []SkillCount
	TotalBackend int
}

type SkillCount struct {
	Skill string
	Count int
}

// Aggregate computes summary statistics over the given collection. Skill
// counting is case-insensitive with the lower-cased token as the grouping
// key; ties keep first-seen order. The average is an integer-rounded mean,
// 0 for an empty collection.
func Aggregate(candidates *Candidates) *Stats {
	stats := &Stats{TopSkills: []SkillCount{}}
	if candidates == nil || candidates.Len() == 0 {
		return stats
	}

	stats.Total = candidates.Len()

	totalYears := 0
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, c := range candidates.Items {
		totalYears += c.YearsExp

		for _, skill := range c.Skills {
			key := strings.ToLower(strings.TrimSpace(skill))
			if key == "" {
				continue
			}

			if _, seen := counts[key]; !seen {
				order = append(order, key)
			}
			counts[key]++
		}
	}

	stats.AvgYearsExp = int(float64(totalYears)/float64(stats.Total) + 0.5)
	stats.TopSkills = topSkills(counts, order)

	return stats
}

// topSkills sorts descending by count and truncates to the display limit.
// The input order is first-seen order, so a stable sort keeps it for ties.
func topSkills(counts map[string]int, order []string) []SkillCount {
	ranked := make([]SkillCount, 0, len(order))
	for _, skill := range order {
		ranked = append(ranked, SkillCount{Skill: skill, Count: counts[skill]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topSkillsLimit {
		ranked = ranked[:topSkillsLimit]
	}

	return ranked
}
