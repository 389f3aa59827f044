// Package token mints and verifies the access tokens carried as bearer
// credentials. Verification is pure: identity lookup against the store
// belongs to the service layer.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/aeroops/lostfound/internal/entity"
)

type UserClaims struct {
	UserID         uuid.UUID   `json:"userId"`
	EmployeeNumber string      `json:"employeeNumber"`
	Role           entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Mint signs an HS256 token for the user, valid for a fixed ttl from
// issuance.
func Mint(user entity.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		UserClaims{
			UserID:         user.ID,
			EmployeeNumber: user.EmployeeNumber,
			Role:           user.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.Must(uuid.NewV4()).String(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			},
		}).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a raw token. Tokens signed with a different
// secret, expired tokens, and tokens using any non-HMAC algorithm
// ("none" included) are rejected.
func Verify(raw string, secret []byte) (UserClaims, error) {
	var claims UserClaims

	parsed, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return UserClaims{}, fmt.Errorf("%w: %w", entity.ErrTokenExpired, err)
		}

		return UserClaims{}, fmt.Errorf("%w: parse access token: %w", entity.ErrInvalidToken, err)
	}

	if !parsed.Valid {
		return UserClaims{}, entity.ErrInvalidToken
	}

	return claims, nil
}
