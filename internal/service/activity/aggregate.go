package activity

import (
	"sort"

	"github.com/securify-app/securify-backend/internal/entity"
)

// aggregateActivities groups a time-descending activity stream by domain name
// and counts occurrences. The reported category is the most recent one, i.e.
// the first record seen for the domain while walking the descending input.
// Ranking is by count descending with domain name ascending as tie-break, so
// identical input always yields identical output.
func aggregateActivities(activities []entity.Activity, limit *int) []entity.DomainRequestCount {
	counts := make(map[string]*entity.DomainRequestCount)

	for _, a := range activities {
		if existing, ok := counts[a.DomainName]; ok {
			existing.Count++
			continue
		}
		counts[a.DomainName] = &entity.DomainRequestCount{
			DomainName: a.DomainName,
			Count:      1,
			Category:   a.Category,
		}
	}

	ranked := make([]entity.DomainRequestCount, 0, len(counts))
	for _, c := range counts {
		ranked = append(ranked, *c)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].DomainName < ranked[j].DomainName
	})

	if limit != nil && *limit < len(ranked) {
		ranked = ranked[:*limit]
	}

	return ranked
}
