package media

import (
	"clipshare/internal/core/domain"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

func (m *MockGateway) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGateway) Upload(ctx context.Context, r io.Reader, fileName string, opts domain.UploadOptions) (*domain.UploadedAsset, error) {
	args := m.Called(ctx, r, fileName, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadedAsset), args.Error(1)
}

func (m *MockGateway) Destroy(ctx context.Context, publicID string, assetType domain.AssetType) error {
	args := m.Called(ctx, publicID, assetType)
	return args.Error(0)
}

func (m *MockGateway) RenditionURL(publicID string, transform domain.Transform) string {
	args := m.Called(publicID, transform)
	return args.String(0)
}
