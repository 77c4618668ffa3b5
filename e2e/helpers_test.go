package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// manifestFile mirrors the manifest document written by the binary
type manifestFile struct {
	Generator string                       `yaml:"generator"`
	Alphabet  string                       `yaml:"alphabet"`
	Prefix    string                       `yaml:"prefix"`
	Suffix    string                       `yaml:"suffix"`
	LastID    string                       `yaml:"last_id"`
	Scopes    map[string]map[string]string `yaml:"scopes"`
}

// runShortClass executes the binary with stdin and the given arguments.
// Returns combined output and exit code.
func runShortClass(t *testing.T, stdin string, args ...string) (output string, exitCode int) {
	t.Helper()

	cmd := exec.Command(env.binaryPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	outputBytes, err := cmd.CombinedOutput()
	output = string(outputBytes)

	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			return output, exitError.ExitCode()
		}
		t.Fatalf("Failed to run shortclass: %v\nOutput: %s", err, output)
	}

	return output, 0
}

// writeFile creates a file in dir with the given content and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readManifest parses the manifest at path
func readManifest(t *testing.T, path string) *manifestFile {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read manifest")

	var m manifestFile
	require.NoError(t, yaml.Unmarshal(data, &m), "Failed to parse manifest")
	return &m
}

// allTokens returns every token in the manifest
func allTokens(m *manifestFile) []string {
	var tokens []string
	for _, names := range m.Scopes {
		for _, token := range names {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
