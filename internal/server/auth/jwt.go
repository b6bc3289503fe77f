// Package auth implements credential hashing, signed access tokens and the
// resolution of a presented token into a Principal.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/mdrrmo4516/mobile2026/internal/common"
)

// TokenValidator turns a presented token back into its subject.
type TokenValidator interface {
	Validate(token string) (string, error)
}

// TokenIssuer mints tokens for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenService issues and validates HS256 tokens carrying only the subject,
// issue time and expiry. Tokens are stateless: nothing is recorded server-side.
type TokenService struct {
	secret   []byte
	validity time.Duration
	clock    clockwork.Clock
}

// NewTokenService builds a TokenService. A nil clock means the real clock.
func NewTokenService(secret []byte, validity time.Duration, clock clockwork.Clock) *TokenService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TokenService{secret: secret, validity: validity, clock: clock}
}

// Issue signs a token for subject, valid from now until now+validity.
func (s *TokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("empty subject")
	}
	now := s.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(s.validity))),
	})
	return token.SignedString(s.secret)
}

// Validate returns the subject of a well-signed, unexpired token. Every
// failure (bad signature, undecodable payload, expiry, no subject) is
// reported as common.ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}

// ceilSecond rounds t up to a whole second. NumericDate keeps whole seconds
// only, and exp must never fall before issued-at plus validity.
func ceilSecond(t time.Time) time.Time {
	if r := t.Truncate(time.Second); !r.Equal(t) {
		return r.Add(time.Second)
	}
	return t
}
