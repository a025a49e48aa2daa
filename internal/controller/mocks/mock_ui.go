// Package mocks provides testify mocks of the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/hardlit/internal/controller"
	m "gooze.dev/pkg/hardlit/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// Start records the call; options are not matched.
func (u *MockUI) Start(ctx context.Context, _ ...controller.StartOption) error {
	args := u.Called(ctx)
	return args.Error(0)
}

// Close records the call.
func (u *MockUI) Close(ctx context.Context) {
	u.Called(ctx)
}

// Wait records the call.
func (u *MockUI) Wait(ctx context.Context) {
	u.Called(ctx)
}

// DisplayEstimation records the call.
func (u *MockUI) DisplayEstimation(ctx context.Context, estimates []m.Estimate, err error) error {
	args := u.Called(ctx, estimates, err)
	return args.Error(0)
}

// DisplayConcurrencyInfo records the call.
func (u *MockUI) DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int) {
	u.Called(ctx, threads, shardIndex, shardCount)
}

// DisplayFileResult records the call.
func (u *MockUI) DisplayFileResult(ctx context.Context, result m.FileResult) {
	u.Called(ctx, result)
}

// DisplayViolations records the call.
func (u *MockUI) DisplayViolations(ctx context.Context, violations []m.Violation) error {
	args := u.Called(ctx, violations)
	return args.Error(0)
}

// DisplayExplanation records the call.
func (u *MockUI) DisplayExplanation(ctx context.Context, path m.Path, explanations []m.Explanation) error {
	args := u.Called(ctx, path, explanations)
	return args.Error(0)
}

// DisplaySummary records the call.
func (u *MockUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	u.Called(ctx, summary)
}
