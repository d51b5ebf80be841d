// Package jwt verifies identity provider session tokens.
package jwt

import (
	"clipshare/internal/config"
	"clipshare/internal/core/domain"
	"context"
	"errors"
	"fmt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Verifier implements port.SessionVerifier
type Verifier struct {
	key     any
	methods []string
	parser  *jwtlib.Parser
}

// NewVerifier picks RSA when a public key is configured, HMAC when a shared secret is,
// and otherwise returns a verifier that rejects every token.
func NewVerifier(cfg config.AuthConfig) (*Verifier, error) {
	v := &Verifier{}
	switch {
	case cfg.PublicKeyPEM != "":
		key, err := jwtlib.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("failed to parse session public key: %w", err)
		}
		v.key = key
		v.methods = []string{jwtlib.SigningMethodRS256.Alg()}
	case cfg.SessionSecret != "":
		v.key = []byte(cfg.SessionSecret)
		v.methods = []string{jwtlib.SigningMethodHS256.Alg()}
	}

	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods(v.methods),
		jwtlib.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(cfg.Issuer))
	}
	v.parser = jwtlib.NewParser(opts...)
	return v, nil
}

// Enabled reports whether any key is configured
func (v *Verifier) Enabled() bool {
	return v.key != nil
}

// Verify validates token and returns the session it carries. Every failure wraps domain.ErrUnauthorized.
func (v *Verifier) Verify(_ context.Context, token string) (*domain.Session, error) {
	if !v.Enabled() {
		return nil, fmt.Errorf("%w: no session key configured", domain.ErrUnauthorized)
	}
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	claims := &jwtlib.RegisteredClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwtlib.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, errors.New("token has no subject"))
	}
	return &domain.Session{UserID: claims.Subject}, nil
}
