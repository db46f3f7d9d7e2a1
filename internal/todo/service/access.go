package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/internal/todo/store"
)

// AccessPolicy decides which todos a caller may touch. Role membership is
// read from the store on every call, so a grant or revoke takes effect on
// the caller's next request regardless of the roles in their token.
type AccessPolicy struct {
	Store store.Store
}

// IsAdmin reports whether userID currently holds the Admin role.
func (p *AccessPolicy) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	ok, err := p.Store.Roles().UserHasRole(ctx, userID, domain.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("check admin role: %w", err)
	}
	return ok, nil
}

// ScopeFor resolves the scope for callerID.
func (p *AccessPolicy) ScopeFor(ctx context.Context, callerID string) (domain.Scope, error) {
	admin, err := p.IsAdmin(ctx, callerID)
	if err != nil {
		return domain.Scope{}, err
	}
	return domain.ScopeFor(callerID, admin), nil
}
