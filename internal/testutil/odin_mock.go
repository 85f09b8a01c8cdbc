package testutil

import (
	"context"
	"sync"

	"github.com/astrabot/odin-insight/internal/model"
)

// MockActivityClient is a mock implementation of odin.Client for testing.
// It returns predefined activities instead of making actual API calls.
type MockActivityClient struct {
	mu sync.Mutex

	// Activities maps account ID to the activities to return.
	Activities map[string][]model.Activity
	// Err is the error to return from FetchAllActivities.
	Err error
	// FetchCount tracks how many times FetchAllActivities was called, per account.
	FetchCount map[string]int
}

// NewMockActivityClient creates a mock activity client with no data.
func NewMockActivityClient() *MockActivityClient {
	return &MockActivityClient{
		Activities: make(map[string][]model.Activity),
		FetchCount: make(map[string]int),
	}
}

// WithActivities sets the activities returned for an account.
func (m *MockActivityClient) WithActivities(accountID string, activities []model.Activity) *MockActivityClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Activities[accountID] = activities
	return m
}

// WithError configures the mock to fail every fetch.
func (m *MockActivityClient) WithError(err error) *MockActivityClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Err = err
	return m
}

// FetchAllActivities returns the configured activities or error.
func (m *MockActivityClient) FetchAllActivities(_ context.Context, accountID string) ([]model.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCount[accountID]++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Activities[accountID], nil
}

// Calls returns how many times FetchAllActivities was invoked for an account.
func (m *MockActivityClient) Calls(accountID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.FetchCount[accountID]
}
