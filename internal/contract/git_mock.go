package contract

import (
	"context"

	"github.com/huangsam/gitintel/schema"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a testify mock for the GitClient type.
type MockGitClient struct {
	mock.Mock
}

var _ GitClient = &MockGitClient{} // Compile-time check

// Run implements the GitClient interface.
func (m *MockGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	var mockArgs []interface{}
	mockArgs = append(mockArgs, ctx, repoPath)
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// GetHeadCommit implements the GitClient interface.
func (m *MockGitClient) GetHeadCommit(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	head, _ := ret.Get(0).(string)
	return head, ret.Error(1)
}

// GetRepoRoot implements the GitClient interface.
func (m *MockGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	ret := m.Called(ctx, contextPath)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// GetGitDir implements the GitClient interface.
func (m *MockGitClient) GetGitDir(ctx context.Context, repoPath string) (string, error) {
	ret := m.Called(ctx, repoPath)
	dir, _ := ret.Get(0).(string)
	return dir, ret.Error(1)
}

// GetHistoryLog implements the GitClient interface.
func (m *MockGitClient) GetHistoryLog(ctx context.Context, repoPath string) ([]byte, error) {
	ret := m.Called(ctx, repoPath)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// ListFileSizes implements the GitClient interface.
func (m *MockGitClient) ListFileSizes(ctx context.Context, repoPath string, ref string) ([]schema.FileSize, error) {
	ret := m.Called(ctx, repoPath, ref)
	sizes, _ := ret.Get(0).([]schema.FileSize)
	return sizes, ret.Error(1)
}

// ReadBlob implements the GitClient interface.
func (m *MockGitClient) ReadBlob(ctx context.Context, repoPath string, ref string, path string) ([]byte, error) {
	ret := m.Called(ctx, repoPath, ref, path)
	content, _ := ret.Get(0).([]byte)
	return content, ret.Error(1)
}
