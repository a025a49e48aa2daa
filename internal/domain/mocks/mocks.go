// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gooze.dev/pkg/hardlit/internal/domain"
	m "gooze.dev/pkg/hardlit/internal/model"
)

// MockLinter is a mock implementation of domain.Linter.
type MockLinter struct {
	mock.Mock
}

var _ domain.Linter = (*MockLinter)(nil)

// Lint records the call.
func (l *MockLinter) Lint(ctx context.Context, source m.Source) (m.FileResult, error) {
	args := l.Called(ctx, source)

	result, _ := args.Get(0).(m.FileResult)

	return result, args.Error(1)
}

// Estimate records the call.
func (l *MockLinter) Estimate(ctx context.Context, source m.Source) (m.Estimate, error) {
	args := l.Called(ctx, source)

	estimate, _ := args.Get(0).(m.Estimate)

	return estimate, args.Error(1)
}

// Explain records the call.
func (l *MockLinter) Explain(ctx context.Context, path m.Path) ([]m.Explanation, error) {
	args := l.Called(ctx, path)

	explanations, _ := args.Get(0).([]m.Explanation)

	return explanations, args.Error(1)
}

// Fingerprint records the call.
func (l *MockLinter) Fingerprint() string {
	return l.Called().String(0)
}

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	w := &MockWorkflow{}
	w.Mock.Test(t)

	t.Cleanup(func() { w.AssertExpectations(t) })

	return w
}

// Estimate records the call.
func (w *MockWorkflow) Estimate(ctx context.Context, args domain.EstimateArgs) error {
	return w.Called(ctx, args).Error(0)
}

// Lint records the call.
func (w *MockWorkflow) Lint(ctx context.Context, args domain.LintArgs) error {
	return w.Called(ctx, args).Error(0)
}

// View records the call.
func (w *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	return w.Called(ctx, args).Error(0)
}

// Merge records the call.
func (w *MockWorkflow) Merge(ctx context.Context, args domain.MergeArgs) error {
	return w.Called(ctx, args).Error(0)
}

// Explain records the call.
func (w *MockWorkflow) Explain(ctx context.Context, args domain.ExplainArgs) error {
	return w.Called(ctx, args).Error(0)
}
