// Package auth implements bearer-token authentication for the optional
// HTTP surface. Unlike the teacher's end-user login flow, this API has a
// single consumer class — internal scheduling callers — so there are no
// user accounts. The package provides bcrypt helpers for service API keys
// and an Issuer that mints and validates HS256 JWTs. The router only
// validates bearer tokens on the API group (RequireToken); no route
// verifies API keys or issues tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/eduplan/timetable-engine/pkg/errors"
)

// Claims identifies the calling service inside an issued token.
type Claims struct {
	Subject string `json:"sub"`
	jwt.RegisteredClaims
}

// Issuer mints and validates service-to-service JWTs.
type Issuer struct {
	secret   []byte
	expiry   time.Duration
	issuer   string
	audience string
}

// NewIssuer constructs an Issuer with the given signing secret and token
// lifetime.
func NewIssuer(secret string, expiry time.Duration) *Issuer {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), expiry: expiry, issuer: "timetable-engine", audience: "timetable-engine-clients"}
}

// IssueToken mints a signed JWT for the named subject (caller identity).
func (i *Issuer) IssueToken(subject string) (string, error) {
	now := time.Now()
	claims := Claims{
		Subject: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateToken parses and verifies a bearer token, returning its claims.
func (i *Issuer) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}

// HashAPIKey bcrypt-hashes a raw service API key for storage.
func HashAPIKey(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyAPIKey checks a raw service API key against its stored hash.
func VerifyAPIKey(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
