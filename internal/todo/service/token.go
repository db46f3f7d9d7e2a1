package service

import (
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/jwtx"
)

// TokenIssuer mints access tokens. Tokens cannot be revoked; they simply
// expire after TTL.
type TokenIssuer struct {
	Signer   jwtx.Signer
	Issuer   string
	Audience []string
	TTL      time.Duration

	// Now defaults to time.Now.
	Now func() time.Time
}

// Issue signs a token for user carrying one role claim per role.
func (t *TokenIssuer) Issue(user domain.User, roles []string) (string, error) {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	ttl := t.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(
		user.ID, user.Email, user.DisplayName(),
		roles, ttl, t.Issuer, t.Audience, now().UTC(),
	)
	return t.Signer.Sign(claims)
}
