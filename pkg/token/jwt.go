package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleAdmin  Role = "admin"
	RoleVerify Role = "verify"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Payload is what a verified token tells the caller.
type Payload struct {
	ID        string
	Subject   string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Maker interface {
	CreateToken(subject string, role Role, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}

// JWTMaker signs HS256 tokens.
type JWTMaker struct {
	secret []byte
	issuer string
	now    func() time.Time
}

const minSecretSize = 16

func NewJWTMaker(secret, issuer string) (*JWTMaker, error) {
	if len(secret) < minSecretSize {
		return nil, fmt.Errorf("invalid secret: must be at least %d characters", minSecretSize)
	}
	return &JWTMaker{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

func (m *JWTMaker) CreateToken(subject string, role Role, duration time.Duration) (string, *Payload, error) {
	now := m.now()
	payload := &Payload{
		ID:        uuid.New().String(),
		Subject:   subject,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(duration),
	}

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        payload.ID,
			Subject:   subject,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(payload.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(payload.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, payload, nil
}

func (m *JWTMaker) VerifyToken(tokenString string) (*Payload, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	payload := &Payload{
		ID:        claims.ID,
		Subject:   claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		payload.IssuedAt = claims.IssuedAt.Time
	}
	return payload, nil
}
