package processor

import (
	"agenda-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer and Audience identify tokens meant for the internal API
	Issuer   = "agenda-server"
	Audience = "agenda-server-internal"

	defaultTokenTTL = time.Hour
)

var (
	ErrMissingSecret   = errors.New("jwt secret is not configured")
	ErrExpiredToken    = errors.New("token has expired")
	ErrParseJWTToken   = errors.New("failed to parse token")
	ErrInvalidJWTToken = errors.New("invalid token")
)

// ServiceClaims are the claims of a service-to-service token
type ServiceClaims struct {
	jwt.RegisteredClaims
}

// TokenProcessor issues and validates HS256 service tokens
type TokenProcessor struct {
	secret []byte
	logger *observability.Logger
	now    func() time.Time
}

// New creates a new TokenProcessor
func New(secret string, logger *observability.Logger) *TokenProcessor {
	return &TokenProcessor{
		secret: []byte(secret),
		logger: logger,
		now:    time.Now,
	}
}

// IssueToken signs a token for the named calling service
func (p *TokenProcessor) IssueToken(ctx context.Context, service string, ttl time.Duration) (string, error) {
	if len(p.secret) == 0 {
		return "", ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := p.now()
	claims := ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   service,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ValidateJWTToken parses token and checks its signature, audience and expiry
func (p *TokenProcessor) ValidateJWTToken(ctx context.Context, token string) (ServiceClaims, error) {
	if len(p.secret) == 0 {
		return ServiceClaims{}, ErrMissingSecret
	}

	var claims ServiceClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Warn(ctx, "token expired")
			return ServiceClaims{}, ErrExpiredToken
		}

		p.logger.Warn(ctx, fmt.Sprintf("failed to parse token: %v", err))
		return ServiceClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return ServiceClaims{}, ErrInvalidJWTToken
	}

	return claims, nil
}
