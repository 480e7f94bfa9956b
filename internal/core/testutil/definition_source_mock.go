package testutil

import (
	"errors"

	"github.com/AntonioJCosta/sitealias/internal/core/domain/alias"
	"github.com/AntonioJCosta/sitealias/internal/core/ports"
)

// MockDefinitionSource is a mock implementation of ports.DefinitionSource for testing.
type MockDefinitionSource struct {
	LoadRecordsFunc func() ([]alias.Record, error)
	DescribeFunc    func() string

	// LoadCalls counts LoadRecords invocations.
	LoadCalls int
}

// LoadRecords mocks the LoadRecords method.
func (m *MockDefinitionSource) LoadRecords() ([]alias.Record, error) {
	m.LoadCalls++
	if m.LoadRecordsFunc != nil {
		return m.LoadRecordsFunc()
	}
	return nil, errors.New("MockDefinitionSource: LoadRecordsFunc not implemented")
}

// Describe mocks the Describe method.
func (m *MockDefinitionSource) Describe() string {
	if m.DescribeFunc != nil {
		return m.DescribeFunc()
	}
	return "mock"
}

var _ ports.DefinitionSource = (*MockDefinitionSource)(nil)
