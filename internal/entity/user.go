package entity

import (
	"time"

	"github.com/gofrs/uuid"
)

// User is an admin account tied to the proxy it administers. Activity
// queries resolve the proxy scope through this mapping.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	ProxyID   uuid.UUID `json:"proxyId" db:"proxy_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
