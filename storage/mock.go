package storage

import (
	"github.com/stretchr/testify/mock"

	"github.com/secretdrop/secretdrop/interfaces"
)

// MockSecretStore implements interfaces.SecretStore for testing.
type MockSecretStore struct {
	mock.Mock
}

// Put implements the SecretStore interface for testing.
func (m *MockSecretStore) Put(payload string) (interfaces.StoredSecret, error) {
	args := m.Called(payload)
	return args.Get(0).(interfaces.StoredSecret), args.Error(1)
}

// Take implements the SecretStore interface for testing.
func (m *MockSecretStore) Take(id interfaces.SecretID) (string, bool) {
	args := m.Called(id)
	return args.String(0), args.Bool(1)
}

// Len implements the SecretStore interface for testing.
func (m *MockSecretStore) Len() int {
	args := m.Called()
	return args.Int(0)
}

// Close implements the SecretStore interface for testing.
func (m *MockSecretStore) Close() {
	m.Called()
}
