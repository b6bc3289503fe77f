package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
)

// UserLookup finds credential records by primary key.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Resolver resolves presented tokens into principals. The principal is read
// from the store on every call, so admin rights follow the current record
// rather than anything baked into the token.
type Resolver struct {
	tokens TokenValidator
	users  UserLookup
}

func NewResolver(tokens TokenValidator, users UserLookup) *Resolver {
	return &Resolver{tokens: tokens, users: users}
}

// Resolve returns the principal behind token or one of common.ErrMissingToken,
// common.ErrInvalidToken, common.ErrUserNotFound. Store failures are returned
// as they are and must not be mistaken for authentication failures.
func (r *Resolver) Resolve(ctx context.Context, token string) (*models.Principal, error) {
	if token == "" {
		return nil, common.ErrMissingToken
	}

	subject, err := r.tokens.Validate(token)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := r.users.GetByID(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup principal: %w", err)
	}

	return user.Principal(), nil
}

// ResolveOptional is Resolve for endpoints that also serve anonymous
// callers: authentication failures collapse to a nil principal.
func (r *Resolver) ResolveOptional(ctx context.Context, token string) (*models.Principal, error) {
	p, err := r.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// RequireAdmin reports common.ErrNotAdmin unless p is an administrator.
func RequireAdmin(p *models.Principal) error {
	if p == nil || !p.IsAdmin {
		return common.ErrNotAdmin
	}
	return nil
}
