package ports

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
)

// TokenPair is the result of a successful sign-in or refresh.
type TokenPair struct {
	Access           string
	Refresh          string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	// Issue signs an access and a refresh token for actor.
	Issue(actor kernel.Actor) (TokenPair, error)

	// ParseAccess verifies an access token and returns the actor it was
	// issued to.
	ParseAccess(token string) (kernel.Actor, error)

	// ParseRefresh verifies a refresh token and returns the customer ID it
	// was issued to.
	ParseRefresh(token string) (kernel.UUID, error)
}
