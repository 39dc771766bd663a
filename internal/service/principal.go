package service

import (
	"context"
	"strings"

	"adboard-service/internal/errs"
	"adboard-service/internal/model"
)

// Principal is the authenticated caller identity, passed explicitly
// into every service call. There is no ambient request-scoped user.
type Principal struct {
	Email string
	Role  model.Role
}

// IsAdmin reports whether the caller holds the ADMIN authority.
func (p Principal) IsAdmin() bool {
	return p.Role == model.RoleAdmin
}

// checkPermit verifies that the caller may mutate a resource owned by
// author: the caller must be the author or an admin. A resource with
// no author fails closed instead of being treated as editable by
// anyone.
func checkPermit(author *model.User, caller Principal) error {
	if author == nil {
		return errs.ErrNoAuthor
	}
	if strings.EqualFold(author.Email, caller.Email) || caller.IsAdmin() {
		return nil
	}
	return errs.ErrForbidden
}

// resolveCaller loads the full user record behind a principal.
func resolveCaller(ctx context.Context, users UserRepository, caller Principal) (*model.User, error) {
	return users.ByEmail(ctx, caller.Email)
}
