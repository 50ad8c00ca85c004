package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nurselink/booking-api/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// TokenService issues and validates bearer tokens. Every token carries the
// principal type alongside the subject id, so a nurse token can never resolve
// against the patients table and vice versa.
type TokenService interface {
	Generate(principalID uuid.UUID, principalType model.PrincipalType) (string, error)
	Validate(token string) (*model.TokenClaims, error)
}

type tokenClaims struct {
	PrincipalType string `json:"typ"`
	jwt.RegisteredClaims
}

type jwtService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

func NewJWTService(secret string, expiry time.Duration, issuer string) TokenService {
	return &jwtService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
	}
}

func (s *jwtService) Generate(principalID uuid.UUID, principalType model.PrincipalType) (string, error) {
	if !principalType.Valid() {
		return "", fmt.Errorf("unknown principal type %q", principalType)
	}

	now := time.Now()
	claims := tokenClaims{
		PrincipalType: string(principalType),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   principalID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtService) Validate(raw string) (*model.TokenClaims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	principalType := model.PrincipalType(claims.PrincipalType)
	if !principalType.Valid() {
		return nil, ErrInvalidToken
	}

	principalID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tc := &model.TokenClaims{
		PrincipalID:   principalID,
		PrincipalType: principalType,
		TokenID:       claims.ID,
	}
	if claims.ExpiresAt != nil {
		tc.ExpiresAt = claims.ExpiresAt.Time
	}
	return tc, nil
}
