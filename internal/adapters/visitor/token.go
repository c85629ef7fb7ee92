package visitor

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const issuer = "plazasales-storefront"

// ErrInvalidToken is returned for tokens that are malformed, expired, or
// signed with another key.
var ErrInvalidToken = errors.New("invalid visitor token")

// Identity is the visitor a token names.
type Identity struct {
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Tokens issues and verifies HS256 visitor tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens creates a token issuer. secret must be non-empty.
func NewTokens(secret string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("visitor token secret is required")
	}

	if ttl <= 0 {
		return nil, errors.New("visitor token ttl must be positive")
	}

	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the token lifetime.
func (t *Tokens) TTL() time.Duration { return t.ttl }

// NewIdentity mints a random visitor id.
func (t *Tokens) NewIdentity() Identity {
	return t.identity(uuid.NewString())
}

func (t *Tokens) identity(id string) Identity {
	now := t.now().Truncate(time.Second)

	return Identity{ID: id, IssuedAt: now, ExpiresAt: now.Add(t.ttl)}
}

// Renew reissues the same visitor id with a fresh lifetime.
func (t *Tokens) Renew(id Identity) Identity {
	return t.identity(id.ID)
}

// Sign returns the compact JWT for id.
func (t *Tokens) Sign(id Identity) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   id.ID,
		IssuedAt:  jwt.NewNumericDate(id.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(id.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign visitor token: %w", err)
	}

	return signed, nil
}

// Parse verifies raw and returns the identity it names.
func (t *Tokens) Parse(raw string) (Identity, error) {
	var claims jwt.RegisteredClaims

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	// Expiry is checked against the injected clock below, not the wall clock.
	parser.SkipClaimsValidation = true

	if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject == "" || claims.Issuer != issuer {
		return Identity{}, fmt.Errorf("%w: unexpected claims", ErrInvalidToken)
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return Identity{}, fmt.Errorf("%w: subject is not a uuid", ErrInvalidToken)
	}

	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return Identity{}, fmt.Errorf("%w: missing timestamps", ErrInvalidToken)
	}

	id := Identity{ID: claims.Subject, IssuedAt: claims.IssuedAt.Time, ExpiresAt: claims.ExpiresAt.Time}

	if !t.now().Before(id.ExpiresAt) {
		return Identity{}, fmt.Errorf("%w: expired", ErrInvalidToken)
	}

	return id, nil
}

// NeedsRefresh reports whether id is past half its lifetime.
func (t *Tokens) NeedsRefresh(id Identity) bool {
	return t.now().Sub(id.IssuedAt) > t.ttl/2
}
