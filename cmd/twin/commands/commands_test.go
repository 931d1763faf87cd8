package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/twin/tw"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

// writeProject creates a project directory with twin.toml and the given
// extra files, returning the config path.
func writeProject(t *testing.T, config ProjectConfig, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	path := filepath.Join(dir, ConfigFile)
	require.NoError(t, SaveConfig(path, config))
	return path
}

const brandTheme = `
[theme.extend.colors]
brand = "#123456"

[plugins.components.".btn"]
padding = "1rem"
`

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2026-10-18"

	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3")
	assert.Contains(t, stdout, "abcdef1")
	assert.Contains(t, stdout, "2026-10-18")
}

func TestResolveCommand(t *testing.T) {
	config := writeProject(t, DefaultConfig(), nil)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"indented json", []string{"resolve", "p-4"}, "{\n  \"padding\": \"1rem\"\n}\n"},
		{"compact json", []string{"resolve", "--indent", "0", "p-4"}, "{\"padding\":\"1rem\"}\n"},
		{"several class strings", []string{"resolve", "--indent", "0", "p-4", "flex"}, "{\"p-4\":{\"padding\":\"1rem\"},\"flex\":{\"display\":\"flex\"}}\n"},
		{"yaml", []string{"resolve", "-f", "yaml", "p-4"}, "padding: 1rem\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", append([]string{"--config", config}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestResolveCommandReportsEveryFailure(t *testing.T) {
	config := writeProject(t, DefaultConfig(), nil)

	stdout, stderr, err := execute(t, "", "--config", config, "resolve", "fle", "p-4", "hovr:flex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 3")
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Did you mean flex?")
	assert.Contains(t, stderr, `"hovr:flex"`)
}

func TestResolveCommandUsesProjectTheme(t *testing.T) {
	config := writeProject(t, DefaultConfig(), map[string]string{"theme.toml": brandTheme})

	stdout, _, err := execute(t, "", "--config", config, "resolve", "--indent", "0", "bg-brand btn")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"backgroundColor":"rgba(18, 52, 86, var(--tw-bg-opacity))"`)
	assert.Contains(t, stdout, `"padding":"1rem"`)
}

func TestThemeFlag(t *testing.T) {
	config := writeProject(t, DefaultConfig(), nil)

	_, _, err := execute(t, "", "--config", config, "--theme", filepath.Join(t.TempDir(), "missing.toml"), "resolve", "p-4")
	require.Error(t, err, "a theme named on the command line must exist")

	themePath := filepath.Join(t.TempDir(), "brand.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("theme:\n  extend:\n    colors:\n      brand: \"#123456\"\n"), 0o644))
	stdout, _, err := execute(t, "", "--config", config, "--theme", themePath, "resolve", "--indent", "0", "text-brand")
	require.NoError(t, err)
	assert.Contains(t, stdout, "rgba(18, 52, 86, var(--tw-text-opacity))")
}

func TestMissingConfig(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "twin.toml"), "resolve", "p-4")
	require.Error(t, err, "an explicitly named config must exist")
}

func TestCheckCommand(t *testing.T) {
	config := writeProject(t, DefaultConfig(), nil)

	t.Run("reports every failure with its line", func(t *testing.T) {
		classes := filepath.Join(t.TempDir(), "classes.txt")
		require.NoError(t, os.WriteFile(classes, []byte("p-4\n\n# header\nfle\nhovr:flex\nmd:(flex items-center)\n"), 0o644))

		_, stderr, err := execute(t, "", "--config", config, "check", classes)
		require.ErrorIs(t, err, ErrCheckFailed)
		assert.Contains(t, err.Error(), "2 of 4")
		assert.Contains(t, stderr, classes+":4:")
		assert.Contains(t, stderr, classes+":5:")
		assert.NotContains(t, stderr, classes+":1:")
	})

	t.Run("stdin", func(t *testing.T) {
		stdout, _, err := execute(t, "p-4\nflex hover:underline\n", "--config", config, "check")
		require.NoError(t, err)
		assert.Equal(t, "2 class strings ok\n", stdout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "", "--config", config, "check", filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCheckFailed)
	})
}

func TestExplainCommand(t *testing.T) {
	config := writeProject(t, DefaultConfig(), map[string]string{"theme.toml": brandTheme})

	tests := []struct {
		class  string
		kind   string
		source string
	}{
		{"flex", "static", "flex"},
		{"hover:p-4", "dynamic", "p"},
		{"bg-red-500", "core-plugin", "background"},
		{"btn", "user-plugin", "components .btn"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			stdout, _, err := execute(t, "", "--config", config, "explain", tt.class)
			require.NoError(t, err)
			assert.Contains(t, stdout, "generator: "+tt.kind+"\n")
			assert.Contains(t, stdout, "source:    "+tt.source+"\n")
		})
	}

	_, _, err := execute(t, "", "--config", config, "explain", "nope-nope")
	assert.ErrorIs(t, err, tw.ErrClassNotFound)
}

func TestKeysCommand(t *testing.T) {
	config := writeProject(t, DefaultConfig(), nil)

	stdout, _, err := execute(t, "", "--config", config, "keys")
	require.NoError(t, err)
	scales := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Contains(t, scales, "colors")
	assert.Contains(t, scales, "spacing")

	stdout, _, err = execute(t, "", "--config", config, "keys", "spacing")
	require.NoError(t, err)
	keys := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Less(t, slices.Index(keys, "0.5"), slices.Index(keys, "1"))
	assert.Less(t, slices.Index(keys, "2"), slices.Index(keys, "10"))
	assert.Less(t, slices.Index(keys, "10"), slices.Index(keys, "96"))

	stdout, _, err = execute(t, "", "--config", config, "keys", "colors")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(stdout, "\n"), "red-500")

	_, _, err = execute(t, "", "--config", config, "keys", "nope")
	require.Error(t, err)
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")

	stdout, _, err := execute(t, "", "init", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	config, err := LoadConfig(filepath.Join(dir, ConfigFile), true)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Compiler, config.Compiler)
	assert.Equal(t, "theme.toml", config.Theme.File)

	// the generated theme must leave the defaults intact
	stdout, _, err = execute(t, "", "--config", filepath.Join(dir, ConfigFile), "resolve", "--indent", "0", "md:p-4")
	require.NoError(t, err)
	assert.Equal(t, "{\"@media (min-width: 768px)\":{\"padding\":\"1rem\"}}\n", stdout)

	_, _, err = execute(t, "", "init", "--dir", dir)
	require.Error(t, err, "init refuses to overwrite")

	_, _, err = execute(t, "", "init", "--dir", dir, "--force")
	require.NoError(t, err)
}

func TestLogLevel(t *testing.T) {
	config := writeProject(t, DefaultConfig(), nil)

	_, stderr, err := execute(t, "", "--config", config, "--log-level", "debug", "resolve", "p-4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Loaded configuration")

	_, _, err = execute(t, "", "--config", config, "--log-level", "loud", "resolve", "p-4")
	require.Error(t, err)
}
