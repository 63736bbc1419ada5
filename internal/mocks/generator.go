package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/control-validator/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Completion string
	Err        error

	// ModelName is reported by Model
	ModelName string

	// mu protects the call tracking state for concurrent test cases
	mu      sync.Mutex
	prompts []string
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate implements the generation.Generator interface
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Completion, m.Err
}

// Model returns ModelName, or "mock" when unset.
func (m *MockGenerator) Model() string {
	if m.ModelName == "" {
		return "mock"
	}
	return m.ModelName
}

// CallCount returns how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// LastPrompt returns the prompt of the most recent call, or "" if none.
func (m *MockGenerator) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}

// Reset clears the call tracking state
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = nil
}

// NewMockGeneratorWithCompletion creates a MockGenerator that returns completion
func NewMockGeneratorWithCompletion(completion string) *MockGenerator {
	return &MockGenerator{Completion: completion}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorWithContentBlocked creates a MockGenerator that simulates content being blocked
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{
		Err: generation.NewProviderError("mock", generation.ErrContentBlocked),
	}
}
