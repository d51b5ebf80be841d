package auth

import (
	"clipshare/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockSessionVerifier struct {
	mock.Mock
}

func NewMockSessionVerifier() *MockSessionVerifier {
	return &MockSessionVerifier{}
}

func (m *MockSessionVerifier) Verify(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
