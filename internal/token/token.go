// Package token abstracts session-credential issuance so the HTTP layer and
// clients never depend on the concrete token mechanism.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	appErr "github.com/agroassist/engine/pkg/errors"
)

// Issuer mints and verifies opaque session credentials for a user id.
type Issuer interface {
	Issue(userID string) (string, error)
	Verify(token string) (userID string, err error)
}

// JWTIssuer signs HS256 JWTs with an HMAC secret.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret []byte, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTIssuer{secret: secret, ttl: ttl}
}

func (i *JWTIssuer) Issue(userID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(i.ttl).Unix(),
	})
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign token failed")
	}
	return signed, nil
}

func (i *JWTIssuer) Verify(tokenStr string) (string, error) {
	t, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !t.Valid {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid token")
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid token")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", appErr.New(appErr.CodeUnauthorized, "invalid token")
	}
	return sub, nil
}
