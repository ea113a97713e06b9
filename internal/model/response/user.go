package response

import (
	"github.com/gofrs/uuid"
	"time"
)

type User struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	ProxyID   uuid.UUID  `json:"proxyID"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}
