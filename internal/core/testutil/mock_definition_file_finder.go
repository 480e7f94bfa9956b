package testutil

// MockDefinitionFileFinder is a mock implementation of ports.DefinitionFileFinder.
type MockDefinitionFileFinder struct {
	FindFunc func() (string, error)
}

// Find calls the mock FindFunc.
func (m *MockDefinitionFileFinder) Find() (string, error) {
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", nil
}
