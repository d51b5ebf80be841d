package port

import (
	"clipshare/internal/core/domain"
	"context"
)

// SessionVerifier resolves a session token issued by the identity provider
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Session, error)
}
