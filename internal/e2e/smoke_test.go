package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runKiroku(t, binaryPath, home, "", "journal", "add", "upsolved", "1850D")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "added ")

	stdout, stderr, err = runKiroku(t, binaryPath, home, "", "journal", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "upsolved 1850D")

	stdout, stderr, err = runKiroku(t, binaryPath, home, "n\n", "journal", "delete", "--index", "0")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "kept")

	stdout, stderr, err = runKiroku(t, binaryPath, home, "", "journal", "delete", "--index", "0", "--yes")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "deleted")

	stdout, stderr, err = runKiroku(t, binaryPath, home, "", "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, strings.TrimSpace(stdout))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "kiroku-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/kiroku")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build kiroku binary: %s", string(output))
	return binaryPath
}

func runKiroku(t *testing.T, binaryPath, home, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
