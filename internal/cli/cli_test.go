package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonlens/internal/cli"
	"github.com/rshade/carbonlens/internal/config"
)

// isolateConfig points the config at an empty home and resets the
// singleton around the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	for _, env := range []string{
		config.EnvOutputFormat, config.EnvOutputDir, config.EnvServerAddr,
		config.EnvBatchConcurrency, config.EnvLogLevel, config.EnvLogFormat,
	} {
		t.Setenv(env, "")
	}
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
}

// runCLI executes the root command with args and returns stdout, stderr
// and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	isolateConfig(t)

	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmd("1.2.3")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
