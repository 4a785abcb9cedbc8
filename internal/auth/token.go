package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/carson-networks/budgettime-server/internal/access"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidAuthHeader = errors.New("invalid auth header format")
	ErrMissingAuthHeader = errors.New("missing auth header")
	ErrUnknownActorKind  = errors.New("unknown actor kind")
	errUnexpectedSigning = errors.New("unexpected signing method")
)

// Claims identifies the actor behind a token.
type Claims struct {
	jwt.RegisteredClaims
	Kind access.ActorKind `json:"kind"`
}

// Tokens signs and verifies actor tokens with an HMAC secret.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Generate returns a signed token for actor.
func (t *Tokens) Generate(actor access.Actor) (string, error) {
	now := t.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Kind: actor.Kind,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifies tokenString and returns the actor it names.
func (t *Tokens) Parse(tokenString string) (access.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigning
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		return access.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return access.Actor{}, ErrInvalidToken
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return access.Actor{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	switch claims.Kind {
	case access.ActorUser, "":
		return access.User(id), nil
	case access.ActorIngestion:
		return access.Ingestion(id), nil
	}
	return access.Actor{}, fmt.Errorf("%w: %q", ErrUnknownActorKind, claims.Kind)
}
