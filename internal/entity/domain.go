package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// Domain is one row per distinct (proxy, domain name) pair. The category
// always reflects the most recent logged event and access_count never
// decreases.
type Domain struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProxyID     uuid.UUID `json:"proxyId" db:"proxy_id"`
	DomainName  string    `json:"domainName" db:"domain_name"`
	Category    string    `json:"category" db:"category"`
	AccessCount int64     `json:"accessCount" db:"access_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type TopDomainsFilter struct {
	ProxyID    uuid.UUID
	Limit      int
	Categories []string
}

// DomainRequestCount is one entry of the ranked mostRequested result.
type DomainRequestCount struct {
	DomainName string `json:"domainName"`
	Count      int    `json:"count"`
	Category   string `json:"category"`
}
