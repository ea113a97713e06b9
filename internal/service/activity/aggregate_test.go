package activity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/securify-app/securify-backend/internal/entity"
)

func TestAggregateCountsAndRanks(t *testing.T) {
	activities := []entity.Activity{
		{DomainName: "a.com", Category: entity.CategoryMalicious},
		{DomainName: "b.com", Category: entity.CategorySafe},
		{DomainName: "a.com", Category: entity.CategorySafe},
		{DomainName: "a.com", Category: entity.CategorySafe},
	}

	ranked := aggregateActivities(activities, nil)
	require.Len(t, ranked, 2)
	require.Equal(t, entity.DomainRequestCount{DomainName: "a.com", Count: 3, Category: entity.CategoryMalicious}, ranked[0])
	require.Equal(t, entity.DomainRequestCount{DomainName: "b.com", Count: 1, Category: entity.CategorySafe}, ranked[1])
}

func TestAggregateTieBreaksByDomainName(t *testing.T) {
	activities := []entity.Activity{
		{DomainName: "zulu.com", Category: entity.CategorySafe},
		{DomainName: "alpha.com", Category: entity.CategorySafe},
		{DomainName: "mike.com", Category: entity.CategorySafe},
	}

	ranked := aggregateActivities(activities, nil)
	require.Equal(t, "alpha.com", ranked[0].DomainName)
	require.Equal(t, "mike.com", ranked[1].DomainName)
	require.Equal(t, "zulu.com", ranked[2].DomainName)
}

func TestAggregateTruncatesToLimit(t *testing.T) {
	activities := []entity.Activity{
		{DomainName: "a.com", Category: entity.CategorySafe},
		{DomainName: "a.com", Category: entity.CategorySafe},
		{DomainName: "b.com", Category: entity.CategorySafe},
		{DomainName: "c.com", Category: entity.CategorySafe},
	}

	limit := 2
	ranked := aggregateActivities(activities, &limit)
	require.Len(t, ranked, 2)
	require.Equal(t, "a.com", ranked[0].DomainName)
}

func TestAggregateEmptyInput(t *testing.T) {
	ranked := aggregateActivities(nil, nil)
	require.Empty(t, ranked)
}

func TestAggregateIsDeterministic(t *testing.T) {
	activities := []entity.Activity{
		{DomainName: "b.com", Category: entity.CategorySafe},
		{DomainName: "a.com", Category: entity.CategorySafe},
		{DomainName: "c.com", Category: entity.CategorySafe},
		{DomainName: "a.com", Category: entity.CategorySafe},
	}

	first := aggregateActivities(activities, nil)
	for i := 0; i < 20; i++ {
		require.Equal(t, first, aggregateActivities(activities, nil))
	}
}
