// Package testutil provides testing utilities and helpers for shell tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/fileshell/internal/domain/session"
	"github.com/GriffinCanCode/fileshell/internal/providers/system"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// MockFacts is a mock implementation of system.Facts for testing.
type MockFacts struct {
	mock.Mock
}

// EOL mocks the EOL method.
func (m *MockFacts) EOL() string {
	return m.Called().String(0)
}

// CPUs mocks the CPUs method.
func (m *MockFacts) CPUs() ([]system.CPU, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]system.CPU), args.Error(1)
}

// HomeDir mocks the HomeDir method.
func (m *MockFacts) HomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// Username mocks the Username method.
func (m *MockFacts) Username() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// Architecture mocks the Architecture method.
func (m *MockFacts) Architecture() string {
	return m.Called().String(0)
}

// NewMockFacts creates mock facts describing a small linux/amd64 host.
func NewMockFacts(t *testing.T) *MockFacts {
	t.Helper()
	m := new(MockFacts)

	m.On("EOL").Return("\n").Maybe()
	m.On("CPUs").Return([]system.CPU{
		{Model: "Test CPU", Hz: 2_400_000_000},
		{Model: "Test CPU", Hz: 2_400_000_000},
	}, nil).Maybe()
	m.On("HomeDir").Return("/home/tester", nil).Maybe()
	m.On("Username").Return("tester", nil).Maybe()
	m.On("Architecture").Return("amd64").Maybe()

	return m
}

// MockServiceProvider is a mock implementation of service.Provider for testing.
type MockServiceProvider struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockServiceProvider) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockServiceProvider) Execute(ctx context.Context, cmd types.Command, sess *session.Session) error {
	args := m.Called(ctx, cmd, sess)
	return args.Error(0)
}

// NewMockServiceProvider creates a mock provider serving the given verbs.
func NewMockServiceProvider(t *testing.T, serviceID string, verbs ...string) *MockServiceProvider {
	t.Helper()
	m := new(MockServiceProvider)

	tools := make([]types.Tool, 0, len(verbs))
	for _, verb := range verbs {
		tools = append(tools, types.Tool{Verb: verb, Description: "Mock " + verb})
	}
	m.On("Definition").Return(types.Service{
		ID:          serviceID,
		Name:        "Mock Service",
		Description: "Mock service for testing",
		Category:    types.CategoryFilesystem,
		Tools:       tools,
	}).Maybe()

	return m
}

// NewSession creates a session rooted at a fresh temp directory. The
// returned buffer collects everything handlers print.
func NewSession(t *testing.T) (*session.Session, *bytes.Buffer) {
	t.Helper()
	return NewSessionAt(t, t.TempDir())
}

// NewSessionAt creates a session whose cwd is dir.
func NewSessionAt(t *testing.T, dir string) (*session.Session, *bytes.Buffer) {
	t.Helper()
	d, err := session.NewDirectory(dir)
	require.NoError(t, err)
	out := new(bytes.Buffer)
	return session.New("tester", d, out), out
}

// WriteFile creates dir/name (and any parents) with content.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ReadFile returns the content of path, failing the test if it cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Mkdir creates dir/name and returns its path.
func Mkdir(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(path, 0o755))
	return path
}
