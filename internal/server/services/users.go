// Package services holds the application operations behind the REST API:
// account registration and login, the admin bootstrap gate, incident intake
// and triage, directory management and per-user documents.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mdrrmo4516/mobile2026/internal/common"
	"github.com/mdrrmo4516/mobile2026/internal/logging"
	"github.com/mdrrmo4516/mobile2026/internal/server/auth"
	"github.com/mdrrmo4516/mobile2026/internal/server/models"
	"github.com/mdrrmo4516/mobile2026/internal/server/repositories/users"
)

// AuthResult is what a successful register, login or bootstrap hands back.
type AuthResult struct {
	Token string
	User  *models.Principal
}

// AccountInput carries the fields for a new account.
type AccountInput struct {
	Email    string
	Password string
	FullName string
	Phone    *string
}

type UserService struct {
	repo   users.Repository
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
	clock  clockwork.Clock
	logger logging.Logger
	newID  func() string
}

func NewUserService(repo users.Repository, hasher auth.PasswordHasher, tokens auth.TokenIssuer, clock clockwork.Clock, logger logging.Logger) *UserService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		clock:  clock,
		logger: logger.With("module", "users"),
		newID:  uuid.NewString,
	}
}

// Register creates a regular account and signs the caller in.
func (s *UserService) Register(ctx context.Context, in AccountInput) (*AuthResult, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	res, err := s.createAccount(ctx, in, email, false)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "user registered", "user_id", res.User.ID)
	return res, nil
}

// Login checks the credentials. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &AuthResult{Token: token, User: user.Principal()}, nil
}

// Bootstrap creates the first administrator. It requires no prior
// authentication and closes for good once any admin exists.
//
// The admin check runs before the email check, so once the door is shut the
// response reveals nothing about which emails are registered. A concurrent
// caller that slips past both checks is stopped by the store's single-admin
// constraint and sees common.ErrAlreadyBootstrapped as well.
func (s *UserService) Bootstrap(ctx context.Context, in AccountInput) (*AuthResult, error) {
	exists, err := s.repo.AdminExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("error checking admin: %w", err)
	}
	if exists {
		return nil, common.ErrAlreadyBootstrapped
	}

	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}

	if err := s.ensureEmailFree(ctx, email); err != nil {
		return nil, err
	}

	res, err := s.createAccount(ctx, in, email, true)
	if err != nil {
		return nil, err
	}
	s.logger.Warn(ctx, "admin bootstrapped", "user_id", res.User.ID)
	return res, nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string) error {
	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return common.ErrEmailTaken
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return fmt.Errorf("error searching user: %w", err)
	}
}

func (s *UserService) createAccount(ctx context.Context, in AccountInput, email string, admin bool) (*AuthResult, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &models.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		IsAdmin:      admin,
		CreatedAt:    s.clock.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) || errors.Is(err, common.ErrAlreadyBootstrapped) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &AuthResult{Token: token, User: user.Principal()}, nil
}

// normalizeEmail accepts a bare address (no display name) and lower-cases
// the domain part.
func normalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", common.NewValidationError("email", common.ErrInvalidInput)
	}
	at := strings.LastIndexByte(raw, '@')
	return raw[:at] + strings.ToLower(raw[at:]), nil
}
