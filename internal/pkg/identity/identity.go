package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrUnauthenticated is the single failure mode exposed to callers. Expired
// tokens, malformed tokens and unknown signing methods all collapse into it so
// resolver internals never leak through the API surface.
var ErrUnauthenticated = errors.New("unauthenticated")

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// Service resolves a bearer token to the authenticated user id.
type Service struct {
	secretKey []byte
	issuer    string
}

func NewService(secretKey, issuer string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

func (s *Service) Resolve(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthenticated
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}

	return claims.UserID, nil
}

// GenerateToken issues a signed token for userID. Used by seeding tools and tests;
// production tokens normally come from the external identity provider.
func (s *Service) GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
