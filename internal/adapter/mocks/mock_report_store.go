// Package mocks provides testify mocks of the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/hardlit/internal/adapter"
	m "gooze.dev/pkg/hardlit/internal/model"
)

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

var _ adapter.ReportStore = (*MockReportStore)(nil)

// SaveReports records the call.
func (s *MockReportStore) SaveReports(ctx context.Context, dir m.Path, reports []m.Report) error {
	args := s.Called(ctx, dir, reports)
	return args.Error(0)
}

// LoadReports records the call.
func (s *MockReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.Report, error) {
	args := s.Called(ctx, dir)

	reports, _ := args.Get(0).([]m.Report)

	return reports, args.Error(1)
}

// CleanReports records the call.
func (s *MockReportStore) CleanReports(ctx context.Context, dir m.Path, paths []m.Path) error {
	args := s.Called(ctx, dir, paths)
	return args.Error(0)
}

// ShardDirs records the call.
func (s *MockReportStore) ShardDirs(ctx context.Context, dir m.Path) ([]m.Path, error) {
	args := s.Called(ctx, dir)

	dirs, _ := args.Get(0).([]m.Path)

	return dirs, args.Error(1)
}
