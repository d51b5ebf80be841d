package eventbroker

import (
	"clipshare/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishOrphanedAsset(ctx context.Context, event domain.OrphanedAsset) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
