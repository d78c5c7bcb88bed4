package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"pettime_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrWrongPurpose = errors.New("token issued for a different purpose")
)

const (
	purposeAccess        = "access"
	purposePasswordReset = "recuperacao"
)

// Claims carried by every PetTime token. Role travels under "tipo", the name
// the mobile client has always read.
type Claims struct {
	Role    string `json:"tipo"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// UserID returns the numeric subject.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject: %w", err)
	}
	return uint(id), nil
}

// GenerateToken issues an access token for the user.
func GenerateToken(userID uint, role string) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.TTL) * time.Minute
	return sign(userID, role, purposeAccess, ttl)
}

// GeneratePasswordResetToken issues a short-lived token accepted only by the
// password-reset endpoint.
func GeneratePasswordResetToken(userID uint) (string, error) {
	cfg := config.GetConfig()
	ttl := time.Duration(cfg.JWT.ResetTTL) * time.Minute
	return sign(userID, "", purposePasswordReset, ttl)
}

func sign(userID uint, role, purpose string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:    role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetConfig().JWT.Secret))
}

// ParseToken validates an access token and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims, err := parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purposeAccess {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}

// ParsePasswordResetToken validates a password-reset token.
func ParsePasswordResetToken(tokenStr string) (*Claims, error) {
	claims, err := parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != purposePasswordReset {
		return nil, ErrWrongPurpose
	}
	return claims, nil
}

func parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.GetConfig().JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
