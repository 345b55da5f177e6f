package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long an issued token stays valid.
const DefaultTokenTTL = time.Hour

var (
	// ErrTokenInvalid is returned for malformed tokens, bad
	// signatures, or unexpected signing methods.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired is returned for tokens with a valid signature
	// whose expiration has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the payload carried by every issued token.
type Claims struct {
	ID         int    `json:"id"`
	UserHandle string `json:"userHandle"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256-signed tokens. Validity is purely
// cryptographic plus expiry; there is no server-side token state.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    DefaultTokenTTL,
	}
}

// Issue signs a token carrying the user's id and handle.
func (t *Tokens) Issue(id int, userHandle string) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:         id,
		UserHandle: userHandle,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse verifies the signature and expiration of a token and returns
// its claims. Expired tokens are reported as ErrTokenExpired; every
// other failure is ErrTokenInvalid.
func (t *Tokens) Parse(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !token.Valid {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}
