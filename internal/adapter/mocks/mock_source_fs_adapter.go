package mocks

import (
	"context"
	"os"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/hardlit/internal/adapter"
	m "gooze.dev/pkg/hardlit/internal/model"
)

// MockSourceFSAdapter is a mock implementation of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

var _ adapter.SourceFSAdapter = (*MockSourceFSAdapter)(nil)

// Get records the call; exclude patterns are passed as one slice argument.
func (a *MockSourceFSAdapter) Get(ctx context.Context, paths []m.Path, exclude ...string) ([]m.Source, error) {
	args := a.Called(ctx, paths, exclude)

	sources, _ := args.Get(0).([]m.Source)

	return sources, args.Error(1)
}

// ReadFile records the call.
func (a *MockSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	args := a.Called(ctx, path)

	content, _ := args.Get(0).([]byte)

	return content, args.Error(1)
}

// HashFile records the call.
func (a *MockSourceFSAdapter) HashFile(ctx context.Context, path m.Path) (string, error) {
	args := a.Called(ctx, path)
	return args.String(0), args.Error(1)
}

// FileInfo records the call.
func (a *MockSourceFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	args := a.Called(ctx, path)

	info, _ := args.Get(0).(os.FileInfo)

	return info, args.Error(1)
}
