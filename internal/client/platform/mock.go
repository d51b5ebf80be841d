package platform

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSaver is a mock implementation of Saver
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) SaveURL(ctx context.Context, url, fileName string) error {
	args := m.Called(ctx, url, fileName)
	return args.Error(0)
}

func (m *MockSaver) SaveBytes(ctx context.Context, data []byte, fileName string) error {
	args := m.Called(ctx, data, fileName)
	return args.Error(0)
}
