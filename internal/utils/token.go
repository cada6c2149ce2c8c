package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Dittner/DerTutor/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// Cookie names of the token pair.
const (
	AccessTokenName  = "access_token"
	RefreshTokenName = "refresh_token"
)

var (
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the signed payload of both tokens; Subject carries the
// user id.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject %q", ErrTokenInvalid, c.Subject)
	}
	return uint(id), nil
}

// TokenManager issues and decodes the HS256-signed access/refresh token
// pair. The refresh lifetime strictly exceeds the access lifetime,
// enforced by config validation at startup.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(cfg config.TokenConfig) *TokenManager {
	return &TokenManager{
		secret:     []byte(cfg.SecretKey),
		accessTTL:  time.Duration(cfg.AccessExpireDays) * 24 * time.Hour,
		refreshTTL: time.Duration(cfg.RefreshExpireDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// IssuePair signs an access and a refresh token for the given user id.
func (m *TokenManager) IssuePair(userID uint) (access string, refresh string, err error) {
	now := m.now()
	sub := strconv.FormatUint(uint64(userID), 10)

	access, err = m.sign(sub, now, m.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = m.sign(sub, now, m.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (m *TokenManager) sign(sub string, now time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry of a token. It returns
// ErrTokenExpired when the exp claim has passed and ErrTokenInvalid for
// any structural or signature problem.
func (m *TokenManager) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))

	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
}
