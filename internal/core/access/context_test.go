package access_test

import (
	"clipshare/internal/core/access"
	"clipshare/internal/core/domain"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFromContext(t *testing.T) {
	// Arrange
	ctx := access.WithSession(context.Background(), &domain.Session{UserID: "user_1"})

	// Act
	session, ok := access.SessionFromContext(ctx)
	_, emptyOK := access.SessionFromContext(context.Background())
	_, nilOK := access.SessionFromContext(access.WithSession(context.Background(), nil))

	// Assert
	require.True(t, ok)
	assert.Equal(t, "user_1", session.UserID)
	assert.False(t, emptyOK)
	assert.False(t, nilOK)
}
