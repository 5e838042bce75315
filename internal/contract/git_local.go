package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/huangsam/gitintel/schema"
)

// HistoryLogFormat is the pretty format for history parsing. Each commit
// header line starts with "--" so it can be told apart from numstat lines.
const HistoryLogFormat = "--%H|%P|%at|%an|%ae|%s"

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// GetHeadCommit implements the GitClient interface.
func (c *LocalGitClient) GetHeadCommit(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--verify", "HEAD")
	if err != nil {
		return "", fmt.Errorf("cannot read HEAD: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetGitDir implements the GitClient interface.
func (c *LocalGitClient) GetGitDir(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetHistoryLog implements the GitClient interface.
func (c *LocalGitClient) GetHistoryLog(ctx context.Context, repoPath string) ([]byte, error) {
	args := []string{
		"log",
		"--numstat",
		"--pretty=format:" + HistoryLogFormat,
	}
	return c.Run(ctx, repoPath, args...)
}

// ListFileSizes implements the GitClient interface.
func (c *LocalGitClient) ListFileSizes(ctx context.Context, repoPath string, ref string) ([]schema.FileSize, error) {
	out, err := c.Run(ctx, repoPath, "ls-tree", "-r", "-l", ref)
	if err != nil {
		return nil, err
	}

	var sizes []schema.FileSize
	for line := range strings.Lines(string(out)) {
		line = strings.TrimRight(line, "\n")
		if line == "" {
			continue
		}
		// <mode> <type> <hash> <size>\t<path>
		meta, path, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		fields := strings.Fields(meta)
		if len(fields) != 4 || fields[1] != "blob" {
			continue
		}
		size, err := strconv.ParseInt(fields[3], 10, 64)
		if err != nil {
			continue
		}
		sizes = append(sizes, schema.FileSize{Path: path, Bytes: size})
	}
	return sizes, nil
}

// ReadBlob implements the GitClient interface.
func (c *LocalGitClient) ReadBlob(ctx context.Context, repoPath string, ref string, path string) ([]byte, error) {
	return c.Run(ctx, repoPath, "show", ref+":"+path)
}
