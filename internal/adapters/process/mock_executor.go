package process

import (
	"context"
	"slices"
	"sync"

	"github.com/renato0307/gitwatch/internal/ports"
)

// MockResponse is the canned result of a matched command
type MockResponse struct {
	Err    error
	Stdout []byte
}

// MockCall records one invocation
type MockCall struct {
	Args []string
	Dir  string
	Name string
}

type mockRule struct {
	match    func(name string, args []string) bool
	response MockResponse
}

// MockExecutor answers commands from registered rules in order.
// Unmatched commands go to the fallback executor, or succeed with no output.
type MockExecutor struct {
	calls    []MockCall
	fallback ports.CommandExecutor
	mu       sync.Mutex
	rules    []mockRule
}

var _ ports.CommandExecutor = (*MockExecutor)(nil)

// NewMockExecutor creates a MockExecutor. fallback may be nil.
func NewMockExecutor(fallback ports.CommandExecutor) *MockExecutor {
	return &MockExecutor{fallback: fallback}
}

// AddExactMatch answers name with exactly args
func (m *MockExecutor) AddExactMatch(name string, args []string, response MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, mockRule{
		match: func(n string, a []string) bool {
			return n == name && slices.Equal(a, args)
		},
		response: response,
	})
}

// AddPrefixMatch answers name whose args start with prefix
func (m *MockExecutor) AddPrefixMatch(name string, prefix []string, response MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = append(m.rules, mockRule{
		match: func(n string, a []string) bool {
			return n == name && len(a) >= len(prefix) && slices.Equal(a[:len(prefix)], prefix)
		},
		response: response,
	})
}

// Calls returns a copy of the recorded invocations
func (m *MockExecutor) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.calls)
}

func (m *MockExecutor) CombinedOutput(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if resp, ok := m.find(dir, name, args); ok {
		return resp.Stdout, resp.Err
	}
	if m.fallback != nil {
		return m.fallback.CombinedOutput(ctx, dir, name, args...)
	}
	return nil, nil
}

func (m *MockExecutor) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	if resp, ok := m.find(dir, name, args); ok {
		return resp.Stdout, resp.Err
	}
	if m.fallback != nil {
		return m.fallback.Output(ctx, dir, name, args...)
	}
	return nil, nil
}

func (m *MockExecutor) find(dir, name string, args []string) (MockResponse, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{Dir: dir, Name: name, Args: slices.Clone(args)})
	for _, rule := range m.rules {
		if rule.match(name, args) {
			return rule.response, true
		}
	}
	return MockResponse{}, false
}
