package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"gameonbaby/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

type jwtVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewJWTVerifier returns a TokenVerifier for HS256 session tokens minted by
// the identity provider. Issuer and audience are checked when non-empty.
func NewJWTVerifier(secret, issuer, audience string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret), issuer: issuer, audience: audience}
}

func (v *jwtVerifier) Verify(tokenString string) (*domain.Identity, error) {
	var opts []jwt.ParserOption
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &jwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	return &domain.Identity{ExternalID: claims.Subject, Email: claims.Email}, nil
}
