// Package token issues and verifies the stateless bearer tokens used for
// session auth. Tokens are HS256-signed JWTs carrying the account id and
// username; nothing is persisted server-side, so a token stays valid until
// its expiry (revocation is an accepted limitation).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the fixed session lifetime.
const DefaultTTL = time.Hour

// ErrInvalidToken is the single failure outcome of Verify. Bad signatures,
// expired tokens, and malformed input all collapse into it so callers cannot
// tell which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified identity extracted from a token.
type Claims struct {
	AccountID string
	Username  string
}

// Issuer signs and verifies session tokens with a shared secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given account, expiring after the
// issuer's TTL.
func (i *Issuer) Issue(accountID, username string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      accountID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates raw, returning the embedded identity.
func (i *Issuer) Verify(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if sub == "" || username == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{AccountID: sub, Username: username}, nil
}
