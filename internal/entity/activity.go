package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

// Activity is an immutable row per log event. Category is the category at
// logging time and may differ from the Domain's current one.
type Activity struct {
	ID         uuid.UUID `json:"id" db:"id"`
	DomainID   uuid.UUID `json:"domainId" db:"domain_id"`
	DomainName string    `json:"domainName" db:"domain_name"`
	ProxyID    uuid.UUID `json:"proxyId" db:"proxy_id"`
	Timestamp  time.Time `json:"timestamp" db:"timestamp"`
	Category   string    `json:"category" db:"category"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type LogActivityRequest struct {
	DomainName string `json:"domainName" binding:"required"`
	Category   string `json:"category" binding:"required"`
}

// TimeWindow is a closed time interval for activity queries. Queries look
// backwards from Start, so Start is the newer bound and End the older one.
type TimeWindow struct {
	Start time.Time
	End   *time.Time
}

// NewTimeWindow builds the window predicate. With End absent the predicate is
// timestamp <= Start; with End present it is End <= timestamp <= Start.
func NewTimeWindow(start time.Time, end *time.Time) (TimeWindow, error) {
	if end != nil && end.After(start) {
		return TimeWindow{}, fmt.Errorf("%w: endDate %s is after startDate %s",
			ErrInvalidRange, end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	return TimeWindow{Start: start, End: end}, nil
}

type ActivityFilter struct {
	ProxyID    uuid.UUID
	Window     TimeWindow
	Categories []string
	Limit      *int
}

type RecentFilter struct {
	StartDate  time.Time
	EndDate    *time.Time
	Limit      *int
	Categories []string
}

type MostRequestedFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	Limit      *int
	Categories []string
}

type RecentActivitiesResponse struct {
	Activities  []Activity `json:"activities"`
	LastEndDate time.Time  `json:"lastEndDate"`
	Count       int        `json:"count"`
}
