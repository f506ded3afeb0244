package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/marketops/backoffice/internal/httperr"
	"github.com/marketops/backoffice/internal/models"
)

// Claims is the signed token payload. It reflects the staff row as it was at
// issuance time; role and is_active are not re-read from storage on verify.
type Claims struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenAuthority signs and verifies staff tokens. Access and refresh tokens
// use independent secrets and lifetimes.
type TokenAuthority struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenAuthority(accessKey, refreshKey string, accessTTL, refreshTTL time.Duration) *TokenAuthority {
	return &TokenAuthority{
		accessKey:  []byte(accessKey),
		refreshKey: []byte(refreshKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (ta *TokenAuthority) Issue(staff *models.Staff) (TokenPair, error) {
	access, err := ta.sign(staff, ta.accessKey, ta.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := ta.sign(staff, ta.refreshKey, ta.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (ta *TokenAuthority) sign(staff *models.Staff, key []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:       staff.ID,
		Role:     staff.Role,
		IsActive: staff.IsActive,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// Verify parses the Authorization header and returns the access-token claims.
func (ta *TokenAuthority) Verify(authHeader string) (*Claims, error) {
	if authHeader == "" {
		return nil, httperr.MissingToken()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, httperr.MissingToken()
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return ta.accessKey, nil
	})
	if err != nil || !token.Valid {
		return nil, httperr.InvalidToken()
	}

	return claims, nil
}
