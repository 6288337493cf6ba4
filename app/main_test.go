package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containers/arraylist"
	"containers/hashset"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "HashSet: [first, third, second], Size: 3", lines[0])
	assert.Equal(t, "After addAll: [99, 2, 3, 1, 2, 3, 4, 5], Size: 8", lines[6])
}

func TestDemoCommandRussian(t *testing.T) {
	out, err := execute(t, "demo", "--lang", "ru")
	require.NoError(t, err)
	assert.Contains(t, out, "После вставки по индексу: [1, 99, 2, 3], Size: 4")
}

func TestDemoCommandEnvironment(t *testing.T) {
	t.Setenv("CONTAINERS_DEMO_LANG", "ru")
	out, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "После addAll")
}

func TestDemoCommandConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("set:\n  hasher: xxhash\n  capacity: 2\n"), 0o644))

	out, err := execute(t, "demo", "--config", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Size: 3")
}

func TestCapacityFlagDefaults(t *testing.T) {
	flags := newRootCommand().PersistentFlags()

	setCap, err := flags.GetInt("capacity")
	require.NoError(t, err)
	assert.Equal(t, hashset.DefaultCapacity, setCap)

	listCap, err := flags.GetInt("list-capacity")
	require.NoError(t, err)
	assert.Equal(t, arraylist.DefaultCapacity, listCap)
}

func TestInvalidConfigurationIsRejected(t *testing.T) {
	tests := [][]string{
		{"demo", "--capacity", "0"},
		{"demo", "--hasher", "md5"},
		{"demo", "--lang", "fr"},
		{"demo", "--list-capacity", "-3"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to load config")
		})
	}
}

// chdir changes the working directory to dir and restores it when the test
// ends (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
