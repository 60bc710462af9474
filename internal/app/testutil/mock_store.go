package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"speech-studio/internal/app/model"
	"speech-studio/internal/app/storage"
)

// MockStore is a mock implementation of storage.Store, used where a test
// needs a store failure that a real directory cannot produce.
type MockStore struct {
	mock.Mock
}

var _ storage.Store = (*MockStore)(nil)

func NewMockStore(t *testing.T) *MockStore {
	m := &MockStore{}
	m.Test(t)
	return m
}

func (m *MockStore) List(ctx context.Context, c model.Collection) ([]string, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, c model.Collection, name string, data []byte) error {
	args := m.Called(ctx, c, name, data)
	return args.Error(0)
}

func (m *MockStore) Fetch(ctx context.Context, c model.Collection, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, c, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStore) Stat(ctx context.Context, c model.Collection, name string) (model.FileInfo, error) {
	args := m.Called(ctx, c, name)
	return args.Get(0).(model.FileInfo), args.Error(1)
}
