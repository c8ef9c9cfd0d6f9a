// Package token issues and verifies the signed bearer tokens that gate the
// search proxy. Tokens are HS256 JWTs carrying a username claim; nothing is
// stored server-side and expiry is the only way a token dies.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptyIdentity is returned by Issue when no username is supplied.
	ErrEmptyIdentity = errors.New("username required")
	// ErrInvalidToken covers malformed tokens and signature mismatches.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token parsed but its expiry has
	// passed. Callers surface it identically to ErrInvalidToken.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the JWT payload: the username plus the registered iat/exp set.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Identity is the decoded payload attached to a request after successful
// verification. It lives only for the request that carried the token.
type Identity struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service signs and verifies tokens with a single process-wide secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a new token for the given username, valid for the service
// TTL. Every call produces a fresh, independent token.
func (s *Service) Issue(username string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrEmptyIdentity
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// decoded identity. The signing method is pinned to HMAC so a crafted
// "alg":"none" token cannot pass.
func (s *Service) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrExpiredToken
		}
		return Identity{}, ErrInvalidToken
	}
	if !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	ident := Identity{Username: claims.Username}
	if claims.IssuedAt != nil {
		ident.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		ident.ExpiresAt = claims.ExpiresAt.Time
	}

	return ident, nil
}
